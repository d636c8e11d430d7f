package http

import (
	"tally/internal/core"
)

// formInput carries the raw field values of the entry form, echoed back
// on validation failure so the user never loses typed input.
type formInput struct {
	Description string
	Amount      string
	Type        string
	Date        string
}

func (f formInput) isEmpty() bool {
	return f == formInput{}
}

func formFromTransaction(t core.Transaction) formInput {
	return formInput{
		Description: t.Description,
		Amount:      t.Amount.String(),
		Type:        string(t.Type),
		Date:        t.Date.String(),
	}
}

// rowView is one rendered table row.
type rowView struct {
	ID          int64
	Date        string
	Description string
	Amount      string
	Type        string
}

// pageView is everything the index template needs. It is a pure
// function of store contents, selected currency and edit state.
type pageView struct {
	Rows         []rowView
	Balance      string
	BalanceClass string
	Currency     string
	Currencies   []string
	Scrollable   bool
	Editing      bool
	Form         formInput
	Error        string
}

// balanceClass mirrors the two-state styling: strictly negative gets
// its own class, zero counts as positive.
func balanceClass(b core.Money) string {
	if b.IsNegative() {
		return "negative-balance"
	}
	return "positive-balance"
}

// buildPage assembles the full view model from current store state.
// form and errMsg are non-zero only when re-rendering after a rejected
// submission.
func (s *Server) buildPage(form formInput, errMsg string) pageView {
	currency := s.Currency()
	txs := s.store.List()

	rows := make([]rowView, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, rowView{
			ID:          t.ID,
			Date:        t.Date.String(),
			Description: t.Description,
			Amount:      t.Amount.Display(currency),
			Type:        string(t.Type),
		})
	}

	balance := s.store.Balance()

	page := pageView{
		Rows:         rows,
		Balance:      balance.Display(currency),
		BalanceClass: balanceClass(balance),
		Currency:     currency,
		Currencies:   core.DisplayCurrencies,
		Scrollable:   len(rows) > s.scrollThreshold,
		Form:         form,
		Error:        errMsg,
	}

	if id, ok := s.edit.Current(); ok {
		if tx, found := s.store.Get(id); found {
			page.Editing = true
			if page.Form.isEmpty() {
				page.Form = formFromTransaction(tx)
			}
		} else {
			// The edited transaction was deleted under us; drop the
			// stale back-reference and fall back to add mode.
			s.edit.ClearIf(id)
		}
	}

	return page
}
