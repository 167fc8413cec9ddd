package http

import (
	"net/http"
	"strings"
	"time"

	"budgetly/internal/budget"
	"budgetly/internal/charts"
	"budgetly/internal/core"
	"budgetly/internal/export"
	applog "budgetly/internal/log"
	"budgetly/internal/store"
)

// dailyWindowDays is the trailing window shown by the daily trend chart.
const dailyWindowDays = 30

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	data := s.baseDashboard(r)
	data.FilterType = strings.TrimSpace(r.URL.Query().Get("type"))
	data.FilterCategory = strings.TrimSpace(r.URL.Query().Get("category"))
	data.Query = strings.TrimSpace(r.URL.Query().Get("q"))
	data.Transactions = filterTransactions(data.Transactions, data.FilterType, data.FilterCategory, data.Query)

	s.render(w, r, "index.html", data)
}

// baseDashboard loads the unfiltered transaction list and its aggregates,
// memoized per user until the next write.
func (s *Server) baseDashboard(r *http.Request) dashboardData {
	if cached, ok := s.summaryCache.Get(s.cacheKey()); ok {
		return cached
	}

	transactions := s.loadTransactions(r.Context())
	summary := budget.Compute(transactions)
	data := dashboardData{
		Transactions:  transactions,
		Summary:       summary,
		Monthly:       budget.MonthlySeries(transactions),
		TopCategories: budget.TopCategoriesByAmount(summary, 8),
		Categories:    core.DefaultCategories,
		PaymentModes:  core.PaymentModes,
	}
	s.summaryCache.Set(s.cacheKey(), data)
	return data
}

// filterTransactions applies the list filters in memory: type, category and
// a case-insensitive description search.
func filterTransactions(in []core.Transaction, typ, category, query string) []core.Transaction {
	if typ == "" && category == "" && query == "" {
		return in
	}
	q := strings.ToLower(query)
	out := make([]core.Transaction, 0, len(in))
	for _, t := range in {
		if typ != "" && string(t.Type) != typ {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	case http.MethodGet:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error", "error", err, "path", r.URL.Path)
		s.renderFormError(w, r, "Invalid request format")
		return
	}

	cents, err := core.ParseDecimalToCents(r.Form.Get("amount"))
	if err != nil {
		s.renderFormError(w, r, "Amount must be a positive number")
		return
	}

	date := core.DateOf(time.Now())
	if v := strings.TrimSpace(r.Form.Get("date")); v != "" {
		d, err := core.ParseISO(v)
		if err != nil {
			s.renderFormError(w, r, "Date must be YYYY-MM-DD")
			return
		}
		date = d
	}

	t := core.Transaction{
		Type:        core.TransactionType(strings.TrimSpace(r.Form.Get("type"))),
		Amount:      core.Money{Cents: cents},
		Category:    strings.TrimSpace(r.Form.Get("category")),
		Description: strings.TrimSpace(r.Form.Get("description")),
		Date:        date,
		PaymentMode: strings.TrimSpace(r.Form.Get("payment_mode")),
	}
	if err := t.Validate(); err != nil {
		s.renderFormError(w, r, "Invalid transaction: "+err.Error())
		return
	}

	created, err := s.store.Create(r.Context(), s.session, t)
	if err != nil {
		// A failed create leaves prior state unchanged; it is surfaced as a
		// notification, never retried automatically.
		s.logger.ErrorContext(r.Context(), "Failed to create transaction",
			applog.FieldError, err,
			applog.FieldTxType, string(t.Type),
			applog.FieldAmountCents, t.Amount.Cents,
			applog.FieldCategory, t.Category,
			applog.FieldComponent, applog.ComponentStore,
			applog.FieldOperation, applog.OpCreate)
		s.renderFormError(w, r, "Could not save the transaction, please try again")
		return
	}

	s.invalidate()
	s.logger.InfoContext(r.Context(), "Transaction created",
		applog.FieldTxID, created.ID,
		applog.FieldTxType, string(created.Type),
		applog.FieldAmountCents, created.Amount.Cents,
		applog.FieldCategory, created.Category,
		applog.FieldComponent, applog.ComponentHTTP,
		applog.FieldOperation, applog.OpCreate)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderFormError(w, r, "Invalid request format")
		return
	}

	id := strings.TrimSpace(r.Form.Get("id"))
	if id == "" {
		s.renderFormError(w, r, "Missing transaction id")
		return
	}

	if err := s.store.Delete(r.Context(), s.session, id); err != nil {
		if err == store.ErrNotFound {
			// Deleting a nonexistent id is a no-op for the list; just go
			// back to the dashboard.
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to delete transaction",
			applog.FieldError, err,
			applog.FieldTxID, id,
			applog.FieldComponent, applog.ComponentStore,
			applog.FieldOperation, applog.OpDelete)
		s.renderFormError(w, r, "Could not delete the transaction")
		return
	}

	s.invalidate()
	s.logger.InfoContext(r.Context(), "Transaction deleted",
		applog.FieldTxID, id,
		applog.FieldComponent, applog.ComponentHTTP,
		applog.FieldOperation, applog.OpDelete)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleMonthlyChart(w http.ResponseWriter, r *http.Request) {
	data := s.baseDashboard(r)
	w.Header().Set("Content-Type", "image/png")
	if err := charts.RenderMonthly(w, data.Monthly); err != nil {
		if err == charts.ErrNoData {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to render monthly chart", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) handleDailyChart(w http.ResponseWriter, r *http.Request) {
	data := s.baseDashboard(r)
	series := budget.DailySeries(data.Transactions, dailyWindowDays, core.DateOf(time.Now()))
	w.Header().Set("Content-Type", "image/png")
	if err := charts.RenderDaily(w, series); err != nil {
		if err == charts.ErrNoData {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to render daily chart", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) handleCategoryChart(w http.ResponseWriter, r *http.Request) {
	data := s.baseDashboard(r)
	w.Header().Set("Content-Type", "image/png")
	if err := charts.RenderCategoryDonut(w, data.Summary); err != nil {
		if err == charts.ErrNoData {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to render category chart", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) handleExportWorkbook(w http.ResponseWriter, r *http.Request) {
	transactions := s.loadTransactions(r.Context())
	data, err := export.WorkbookBytes(transactions)
	if err != nil {
		s.exportFailed(w, r, "spreadsheet", err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.WorkbookFilename+`"`)
	_, _ = w.Write(data)
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	transactions := s.loadTransactions(r.Context())
	data, err := export.ReportBytes(transactions, budget.Compute(transactions))
	if err != nil {
		s.exportFailed(w, r, "report", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.ReportFilename+`"`)
	_, _ = w.Write(data)
}

// exportFailed surfaces an export construction failure as a user-visible
// error; the partial document was already discarded by the builder.
func (s *Server) exportFailed(w http.ResponseWriter, r *http.Request, kind string, err error) {
	s.logger.ErrorContext(r.Context(), "Export failed",
		applog.FieldError, err,
		"kind", kind,
		applog.FieldComponent, applog.ComponentExport,
		applog.FieldOperation, applog.OpExport)
	http.Error(w, "Export failed: could not build the "+kind, http.StatusInternalServerError)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data dashboardData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template render error", "error", err, "template", name)
	}
}

func (s *Server) renderFormError(w http.ResponseWriter, r *http.Request, msg string) {
	data := s.baseDashboard(r)
	data.FormError = msg
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template render error", "error", err, "template", "index.html")
	}
}
