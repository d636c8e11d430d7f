package http

import "testing"

func TestEditSessionLastCallWins(t *testing.T) {
	var e editSession

	if _, ok := e.Current(); ok {
		t.Fatal("fresh session should be inactive")
	}

	e.Begin(1)
	e.Begin(2)
	if id, ok := e.Current(); !ok || id != 2 {
		t.Fatalf("Current() = %d, %v", id, ok)
	}
}

func TestEditSessionClearIf(t *testing.T) {
	var e editSession
	e.Begin(7)

	// Clearing a different id must not end the session.
	e.ClearIf(3)
	if _, ok := e.Current(); !ok {
		t.Fatal("ClearIf cleared an unrelated session")
	}

	e.ClearIf(7)
	if _, ok := e.Current(); ok {
		t.Fatal("ClearIf left the session active")
	}

	// Idempotent on an inactive session.
	e.ClearIf(7)
	e.Clear()
}
