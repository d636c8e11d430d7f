package ledger

import (
	"encoding/csv"
	"errors"
	"io"

	"tally/internal/core"
)

// ExportFilename is the download name offered for the CSV document.
const ExportFilename = "transactions.csv"

// ErrEmptyExport reports an export request against an empty store.
var ErrEmptyExport = errors.New("no transactions to export")

// ExportCSV writes the transactions as a CSV document: the fixed header
// followed by one row per transaction in the given order. Amounts are
// raw decimal values, never currency-formatted. Descriptions containing
// commas or quotes are quoted per RFC 4180.
func ExportCSV(w io.Writer, txs []core.Transaction) error {
	if len(txs) == 0 {
		return ErrEmptyExport
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Description", "Amount", "Type"}); err != nil {
		return err
	}
	for _, t := range txs {
		row := []string{t.Date.String(), t.Description, t.Amount.String(), string(t.Type)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
