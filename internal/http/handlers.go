package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/export"
	"fintrack/internal/ledger"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "path", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	data := struct {
		Year       int
		Month      int
		Day        int
		Categories []string
	}{
		Year:       now.Year(),
		Month:      int(now.Month()),
		Day:        now.Day(),
		Categories: s.categories,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleCreateTransaction validates the submitted form and, only if every
// check passes, hands the draft to the ledger. The engine itself never
// re-validates; rejection happens here, before it is reached.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	desc := sanitizeInput(r.Form.Get("description"))
	amountStr := sanitizeInput(r.Form.Get("amount"))
	category := sanitizeInput(r.Form.Get("category"))
	txType := core.TxType(sanitizeInput(r.Form.Get("type")))
	dateParams := ParseDateParams(r.Form)

	if desc == "" || amountStr == "" {
		UnprocessableEntityError("Please fill in all fields").Write(w)
		return
	}

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		UnprocessableEntityError("Please enter a valid amount").Write(w)
		return
	}

	draft := ledger.Draft{
		Date:        core.NewDate(dateParams.Year, dateParams.Month, dateParams.Day),
		Description: desc,
		Amount:      core.Money{Cents: cents},
		Type:        txType,
		Category:    category,
	}
	candidate := core.Transaction{
		Date:        draft.Date,
		Description: draft.Description,
		Amount:      draft.Amount,
		Type:        draft.Type,
		Category:    draft.Category,
	}
	if err := candidate.Validate(); err != nil {
		UnprocessableEntityError(validationMessage(err)).Write(w)
		return
	}

	tx, err := s.store.Add(r.Context(), draft)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction add error",
			"error", err, "description", desc, "amount_cents", cents)
		InternalServerError("Could not save transaction").Write(w)
		return
	}

	NewHTMXResponse().
		TriggerTransactionCreated().
		TriggerFormReset().
		Notification(NotificationSuccess, fmt.Sprintf("Added %s: %s (%s)",
			tx.Type, tx.Description, formatEuros(tx.Amount.Cents))).
		Write(w)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyDescription):
		return "Please fill in all fields"
	case errors.Is(err, core.ErrInvalidAmount):
		return "Please enter a valid amount"
	default:
		return "Invalid transaction data"
	}
}

// handleSummary renders the derived-totals partial. Totals are recomputed
// from the ledger on every render, never cached.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	totals, err := s.store.Totals(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Totals error", "error", err)
		_, _ = w.Write([]byte(`<section id="summary" class="summary"><div class="placeholder">Could not load summary</div></section>`))
		return
	}

	data := struct {
		Balance string
		Income  string
		Expense string
	}{
		Balance: formatEuros(totals.Balance.Cents),
		Income:  formatEuros(totals.Income.Cents),
		Expense: formatEuros(totals.Expense.Cents),
	}
	if err := s.templates.ExecuteTemplate(w, "summary.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Summary template execution failed", "error", err)
	}
}

// handleTransactions renders the history partial in ledger order.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	items, err := s.store.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction list error", "error", err)
		_, _ = w.Write([]byte(`<section id="history" class="history"><div class="placeholder">Could not load transactions</div></section>`))
		return
	}

	type row struct {
		Date        string
		Description string
		Amount      string
		Sign        string
		Type        string
		Category    string
	}
	data := struct {
		Count int
		Items []row
	}{Count: len(items)}
	for _, tx := range items {
		sign := "-"
		if tx.Type == core.Income {
			sign = "+"
		}
		data.Items = append(data.Items, row{
			Date:        tx.Date.Format("Jan 2, 2006"),
			Description: tx.Description,
			Amount:      formatEuros(tx.Amount.Cents),
			Sign:        sign,
			Type:        string(tx.Type),
			Category:    tx.Category,
		})
	}

	if err := s.templates.ExecuteTemplate(w, "transactions.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Transactions template execution failed", "error", err)
	}
}

// handleExportDownload streams the ledger as a CSV attachment. With zero
// records the engine is not invoked at all; the user gets an informational
// message instead.
func (s *Server) handleExportDownload(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	n, err := s.store.Count(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Count error before export", "error", err)
		InternalServerError("Export failed. Please try again.").Write(w)
		return
	}
	if n == 0 {
		NewHTMXResponse().Notification(NotificationInfo, "No transactions to export yet").Write(w)
		return
	}

	csv, err := s.exporter.CSV(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "CSV export error", "error", err)
		InternalServerError("Export failed. Please try again.").Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+s.exporter.Filename()+`"`)
	_, _ = w.Write([]byte(csv))
}

// handleShareExport writes the CSV file and invokes the share facility.
// "Sharing unavailable" is reported as information, not as a failure.
func (s *Server) handleShareExport(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}

	n, err := s.store.Count(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Count error before export", "error", err)
		InternalServerError("Export failed. Please try again.").Write(w)
		return
	}
	if n == 0 {
		NewHTMXResponse().Notification(NotificationInfo, "No transactions to export yet").Write(w)
		return
	}

	if err := s.exporter.Share(r.Context()); err != nil {
		if errors.Is(err, export.ErrShareUnavailable) {
			NewHTMXResponse().Notification(NotificationInfo, "Sharing is not available on this host").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Export share error", "error", err)
		InternalServerError("Export failed. Please try again.").Write(w)
		return
	}

	NewHTMXResponse().
		Notification(NotificationSuccess, fmt.Sprintf("Exported %d transactions to %s", n, s.exporter.Filename())).
		Write(w)
}

func formatEuros(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	out := fmt.Sprintf("€%d.%02d", cents/100, cents%100)
	if neg {
		return "-" + out
	}
	return out
}
