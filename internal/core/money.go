// Package core holds the transaction domain types.
//
// Money keeps amounts in minor units (cents). Arithmetic stays on int64;
// decimal conversion happens only at the string boundaries (parsing user
// input, CSV rows, display text).
package core

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary amount in minor units. The sign is not constrained:
// income vs expense is carried by the transaction Type, not by the sign.
type Money struct {
	Cents int64
}

// DisplayCurrencies are the codes offered in the currency selector.
// Any other code still formats, just without a symbol prefix.
var DisplayCurrencies = []string{money.USD, money.EUR, money.INR, money.GBP}

// ParseAmount converts a decimal string into Money, rounding half-up on
// the third decimal place. Both dot and comma separators are accepted.
//
// Examples:
//
//	ParseAmount("12.34") -> 1234 cents
//	ParseAmount("12,345") -> 1235 cents (rounds up)
//	ParseAmount("-3") -> -300 cents
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	cents := d.Shift(2).Round(0)
	if !cents.BigInt().IsInt64() {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents.IntPart()}, nil
}

// Symbol returns the display prefix for a currency code. Unrecognized
// codes render without a symbol rather than failing.
func Symbol(code string) string {
	for _, c := range DisplayCurrencies {
		if c == code {
			return money.GetCurrency(c).Grapheme
		}
	}
	return ""
}

// Decimal returns the major-unit value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// String renders the plain value with trailing zeros trimmed, the form
// used for CSV rows ("1000", "12.5").
func (m Money) String() string {
	return m.Decimal().String()
}

// Display renders with exactly two decimals prefixed by the currency
// symbol, if the code has one ("$700.00", "5.00").
func (m Money) Display(code string) string {
	return Symbol(code) + m.Decimal().StringFixed(2)
}

func (m Money) Add(n Money) Money { return Money{Cents: m.Cents + n.Cents} }
func (m Money) Sub(n Money) Money { return Money{Cents: m.Cents - n.Cents} }
func (m Money) IsNegative() bool  { return m.Cents < 0 }
