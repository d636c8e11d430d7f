package http

import "sync"

// editSession tracks which transaction is mid-edit. It holds only the
// id, never the record: the store keeps exclusive ownership. Beginning
// a new edit while one is active retargets it (last call wins).
type editSession struct {
	mu     sync.Mutex
	id     int64
	active bool
}

func (e *editSession) Begin(id int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.id = id
	e.active = true
}

func (e *editSession) Current() (int64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id, e.active
}

func (e *editSession) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.id = 0
	e.active = false
}

// ClearIf clears the session only if it still points at id. Deleting or
// saving a transaction must not cancel an edit that was retargeted in
// the meantime.
func (e *editSession) ClearIf(id int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active && e.id == id {
		e.id = 0
		e.active = false
	}
}
