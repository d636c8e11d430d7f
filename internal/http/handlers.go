package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"tally/internal/core"
	"tally/internal/ledger"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.renderPage(w, r, s.buildPage(formInput{}, ""), http.StatusOK)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !requirePOST(w, r) {
		return
	}
	form, ok := s.readForm(w, r)
	if !ok {
		return
	}

	tx, err := parseTransaction(form)
	if err != nil {
		s.rejectInput(w, r, form, err)
		return
	}

	created, err := s.store.Add(tx)
	if err != nil {
		s.rejectInput(w, r, form, err)
		return
	}

	slog.InfoContext(r.Context(), "Transaction created",
		"transaction_id", created.ID,
		"transaction_description", created.Description,
		"amount_cents", created.Amount.Cents,
		"transaction_type", created.Type,
		"component", "http",
		"operation", "create")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if _, found := s.store.Get(id); !found {
		// Unknown id: silently stay in the current mode.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.edit.Begin(id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if !requirePOST(w, r) {
		return
	}

	id, editing := s.edit.Current()
	if !editing {
		// Nothing is being edited; saving is a no-op.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form, ok := s.readForm(w, r)
	if !ok {
		return
	}

	tx, err := parseTransaction(form)
	if err != nil {
		// Validation failure keeps the edit session alive.
		s.rejectInput(w, r, form, err)
		return
	}

	updated, err := s.store.Update(id, tx)
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		// Deleted while the form was open: silent no-op, drop the
		// stale back-reference.
		s.edit.ClearIf(id)
		slog.WarnContext(r.Context(), "Edited transaction no longer exists",
			"transaction_id", id, "component", "http", "operation", "save")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case err != nil:
		s.rejectInput(w, r, form, err)
		return
	}

	s.edit.ClearIf(id)

	slog.InfoContext(r.Context(), "Transaction updated",
		"transaction_id", updated.ID,
		"transaction_description", updated.Description,
		"amount_cents", updated.Amount.Cents,
		"transaction_type", updated.Type,
		"component", "http",
		"operation", "save")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	s.edit.Clear()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePOST(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id, err := parseID(r.Form.Get("id"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	removed := s.store.Remove(id)
	// Deleting the transaction under edit ends that edit session.
	s.edit.ClearIf(id)

	slog.InfoContext(r.Context(), "Transaction deleted",
		"transaction_id", id,
		"removed", removed,
		"component", "http",
		"operation", "delete")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleCurrency(w http.ResponseWriter, r *http.Request) {
	if !requirePOST(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	code := strings.ToUpper(strings.TrimSpace(r.Form.Get("currency")))
	if code != "" {
		// Unrecognized codes are allowed; they just render without a
		// symbol.
		s.SetCurrency(code)
		slog.InfoContext(r.Context(), "Display currency changed",
			"currency", code, "component", "http", "operation", "currency")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	txs := s.store.List()

	var buf bytes.Buffer
	if err := ledger.ExportCSV(&buf, txs); err != nil {
		if errors.Is(err, ledger.ErrEmptyExport) {
			slog.WarnContext(r.Context(), "Export requested with no transactions",
				"component", "http", "operation", "export")
			s.renderPage(w, r, s.buildPage(formInput{}, "No transactions to export."), http.StatusUnprocessableEntity)
			return
		}
		slog.ErrorContext(r.Context(), "Failed to build CSV export",
			"error", err, "component", "http", "operation", "export")
		http.Error(w, "Export failed", http.StatusInternalServerError)
		return
	}

	slog.InfoContext(r.Context(), "Transactions exported",
		"rows", len(txs), "component", "http", "operation", "export")

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ledger.ExportFilename+`"`)
	_, _ = w.Write(buf.Bytes())
}

// parseTransaction turns raw form values into a validated-enough
// transaction; the store performs final validation on mutation.
func parseTransaction(form formInput) (core.Transaction, error) {
	amount, err := core.ParseAmount(form.Amount)
	if err != nil {
		return core.Transaction{}, err
	}
	date, err := core.ParseDate(form.Date)
	if err != nil {
		return core.Transaction{}, err
	}
	ty, err := core.ParseType(form.Type)
	if err != nil {
		return core.Transaction{}, err
	}
	return core.Transaction{
		Date:        date,
		Description: form.Description,
		Amount:      amount,
		Type:        ty,
	}, nil
}

// readForm parses the request form into formInput, answering 400 on a
// malformed body.
func (s *Server) readForm(w http.ResponseWriter, r *http.Request) (formInput, bool) {
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error",
			"error", err, "method", r.Method, "path", r.URL.Path)
		s.renderPage(w, r, s.buildPage(formInput{}, "Malformed request."), http.StatusBadRequest)
		return formInput{}, false
	}
	return formInput{
		Description: sanitizeInput(r.Form.Get("description")),
		Amount:      strings.TrimSpace(r.Form.Get("amount")),
		Type:        r.Form.Get("type"),
		Date:        strings.TrimSpace(r.Form.Get("date")),
	}, true
}

// rejectInput re-renders the page with the submitted values preserved
// and a blocking notification. No store state was mutated.
func (s *Server) rejectInput(w http.ResponseWriter, r *http.Request, form formInput, err error) {
	slog.WarnContext(r.Context(), "Rejected transaction input",
		"error", err, "component", "http", "path", r.URL.Path)
	s.renderPage(w, r, s.buildPage(form, validationMessage(err)), http.StatusUnprocessableEntity)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyDescription):
		return "Please provide a description."
	case errors.Is(err, core.ErrInvalidAmount):
		return "Please provide a valid amount."
	case errors.Is(err, core.ErrInvalidDate):
		return "Please provide a valid date."
	case errors.Is(err, core.ErrInvalidType):
		return "Please choose income or expense."
	default:
		return "Please provide valid input."
	}
}

// renderPage executes the index template into a buffer first so a
// template failure never emits a half-written page.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, page pageView, status int) {
	var buf bytes.Buffer
	if s.templates == nil {
		http.Error(w, "templates unavailable", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(&buf, "index.html", page); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed",
			"error", err, "component", "http")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
