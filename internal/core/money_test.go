package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"1000", 100000, true},
		{"12.345", 1235, true}, // half-up on the third decimal
		{"12.344", 1234, true},
		{"-3", -300, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12.3.4", 0, false},
	}
	for i, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("case %d (%q): unexpected error %v", i, tc.in, err)
			}
			if got.Cents != tc.cents {
				t.Fatalf("case %d (%q): cents = %d, want %d", i, tc.in, got.Cents, tc.cents)
			}
			continue
		}
		if err == nil {
			t.Fatalf("case %d (%q): expected error", i, tc.in)
		}
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		cents int64
		code  string
		want  string
	}{
		{70000, "USD", "$700.00"},
		{70000, "EUR", "€700.00"},
		{70000, "INR", "₹700.00"},
		{70000, "GBP", "£700.00"},
		{500, "XYZ", "5.00"}, // unrecognized code: no symbol
		{500, "", "5.00"},
		{-30000, "USD", "$-300.00"},
	}
	for i, tc := range cases {
		if got := (Money{Cents: tc.cents}).Display(tc.code); got != tc.want {
			t.Fatalf("case %d: Display(%q) = %q, want %q", i, tc.code, got, tc.want)
		}
	}
}

func TestStringTrimsTrailingZeros(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{100000, "1000"},
		{30000, "300"},
		{1250, "12.5"},
		{1234, "12.34"},
		{0, "0"},
		{-30000, "-300"},
	}
	for i, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("case %d: String() = %q, want %q", i, got, tc.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 100000}
	b := Money{Cents: 30000}
	if got := a.Sub(b).Cents; got != 70000 {
		t.Fatalf("Sub = %d", got)
	}
	if got := a.Add(b).Cents; got != 130000 {
		t.Fatalf("Add = %d", got)
	}
	if !b.Sub(a).IsNegative() {
		t.Fatal("expected negative")
	}
	if (Money{}).IsNegative() {
		t.Fatal("zero is non-negative")
	}
}
