package ledger

import (
	"errors"
	"strings"
	"testing"

	"tally/internal/core"
)

func TestExportCSV(t *testing.T) {
	s := New()
	s.Add(tx("Salary", 100000, core.Income, core.NewDate(2024, 1, 1)))
	s.Add(tx("Rent", 30000, core.Expense, core.NewDate(2024, 1, 2)))

	var sb strings.Builder
	if err := ExportCSV(&sb, s.List()); err != nil {
		t.Fatalf("export: %v", err)
	}

	want := "Date,Description,Amount,Type\n" +
		"2024-01-01,Salary,1000,income\n" +
		"2024-01-02,Rent,300,expense\n"
	if sb.String() != want {
		t.Fatalf("csv mismatch:\ngot:  %q\nwant: %q", sb.String(), want)
	}
}

func TestExportCSVEmpty(t *testing.T) {
	var sb strings.Builder
	err := ExportCSV(&sb, nil)
	if !errors.Is(err, ErrEmptyExport) {
		t.Fatalf("err = %v, want ErrEmptyExport", err)
	}
	if sb.Len() != 0 {
		t.Fatalf("document produced for empty store: %q", sb.String())
	}
}

func TestExportCSVQuotesCommas(t *testing.T) {
	s := New()
	s.Add(tx("Rent, January", 30000, core.Expense, core.NewDate(2024, 1, 2)))

	var sb strings.Builder
	if err := ExportCSV(&sb, s.List()); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(sb.String(), `"Rent, January"`) {
		t.Fatalf("description not quoted: %q", sb.String())
	}
}
