package http

import (
	"testing"

	"tally/internal/core"
)

func TestBalanceClass(t *testing.T) {
	if got := balanceClass(core.Money{Cents: -1}); got != "negative-balance" {
		t.Fatalf("negative: %q", got)
	}
	// Zero counts as positive.
	if got := balanceClass(core.Money{Cents: 0}); got != "positive-balance" {
		t.Fatalf("zero: %q", got)
	}
	if got := balanceClass(core.Money{Cents: 1}); got != "positive-balance" {
		t.Fatalf("positive: %q", got)
	}
}

func TestFormFromTransaction(t *testing.T) {
	tx := core.Transaction{
		ID:          3,
		Date:        core.NewDate(2024, 1, 2),
		Description: "Rent",
		Amount:      core.Money{Cents: 30050},
		Type:        core.Expense,
	}
	form := formFromTransaction(tx)
	want := formInput{Description: "Rent", Amount: "300.5", Type: "expense", Date: "2024-01-02"}
	if form != want {
		t.Fatalf("form = %+v, want %+v", form, want)
	}
}

func TestBuildPageDeterministic(t *testing.T) {
	srv, store := newTestServer(t, Options{DefaultCurrency: "USD", ScrollThreshold: 10})
	store.Add(core.Transaction{
		Date:        core.NewDate(2024, 1, 1),
		Description: "Salary",
		Amount:      core.Money{Cents: 100000},
		Type:        core.Income,
	})

	a := srv.buildPage(formInput{}, "")
	b := srv.buildPage(formInput{}, "")

	if len(a.Rows) != 1 || a.Rows[0].Amount != "$1000.00" {
		t.Fatalf("rows: %+v", a.Rows)
	}
	if a.Balance != b.Balance || a.BalanceClass != b.BalanceClass || len(a.Rows) != len(b.Rows) {
		t.Fatal("identical inputs rendered differently")
	}
	if a.Scrollable {
		t.Fatal("scrollable with one row")
	}
}

func TestBuildPageDropsStaleEdit(t *testing.T) {
	srv, store := newTestServer(t, Options{})
	tx, _ := store.Add(core.Transaction{
		Date:        core.NewDate(2024, 1, 1),
		Description: "Salary",
		Amount:      core.Money{Cents: 100000},
		Type:        core.Income,
	})

	srv.edit.Begin(tx.ID)
	store.Remove(tx.ID)

	page := srv.buildPage(formInput{}, "")
	if page.Editing {
		t.Fatal("page still in edit mode for deleted transaction")
	}
	if _, ok := srv.edit.Current(); ok {
		t.Fatal("stale back-reference not cleared")
	}
}
