package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  Type = "income"
	Expense Type = "expense"
)

type (
	// Type tells whether a transaction adds to or subtracts from the balance.
	Type string

	// Date is the day a transaction happened, always handled in UTC.
	Date struct {
		time.Time
	}

	// Transaction is one recorded financial event. The ID is assigned by
	// the store at creation and never changes afterwards; the date is an
	// ordinary editable field.
	Transaction struct {
		ID          int64
		Date        Date
		Description string
		Amount      Money
		Type        Type
	}
)

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidType      = errors.New("invalid transaction type")
)

// DateLayout is the wire and display format for dates.
const DateLayout = "2006-01-02"

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String renders the date as YYYY-MM-DD in UTC.
func (d Date) String() string {
	return d.UTC().Format(DateLayout)
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (ty Type) Validate() error {
	switch ty {
	case Income, Expense:
		return nil
	}
	return ErrInvalidType
}

// ParseType parses a transaction type string.
func ParseType(s string) (Type, error) {
	ty := Type(strings.ToLower(strings.TrimSpace(s)))
	if err := ty.Validate(); err != nil {
		return "", err
	}
	return ty, nil
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return t.Type.Validate()
}
