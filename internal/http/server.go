// Package http serves the budget dashboard: transaction form and list,
// summary cards, chart images and export downloads.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"budgetly/internal/budget"
	"budgetly/internal/cache"
	"budgetly/internal/core"
	"budgetly/internal/export"
	applog "budgetly/internal/log"
	"budgetly/internal/store"
	appweb "budgetly/web"
)

type Server struct {
	http.Server

	templates *template.Template
	store     store.TransactionStore
	session   store.Session
	exporter  *export.Exporter
	logger    *slog.Logger

	// summaryCache memoizes the dashboard aggregates between writes.
	summaryCache *cache.LRUCache[dashboardData]

	shutdownOnce sync.Once
}

// Options configures the server beyond its address.
type Options struct {
	Session   store.Session
	Exporter  *export.Exporter
	Logger    *slog.Logger
	CacheSize int
	CacheTTL  time.Duration
}

// NewServer builds the HTTP server. The session is fixed at construction and
// threaded explicitly into every store call.
func NewServer(addr string, st store.TransactionStore, opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 64
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.Exporter == nil {
		opts.Exporter = export.NewExporter("exports", opts.Logger)
	}

	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		templates:    tmpl,
		store:        st,
		session:      opts.Session,
		exporter:     opts.Exporter,
		logger:       opts.Logger,
		summaryCache: cache.NewLRUCache[dashboardData](opts.CacheSize, opts.CacheTTL),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/transactions", s.handleTransactions)
	mux.HandleFunc("/transactions/delete", s.handleDeleteTransaction)
	mux.HandleFunc("/charts/monthly.png", s.handleMonthlyChart)
	mux.HandleFunc("/charts/daily.png", s.handleDailyChart)
	mux.HandleFunc("/charts/categories.png", s.handleCategoryChart)
	mux.HandleFunc("/export/spreadsheet", s.handleExportWorkbook)
	mux.HandleFunc("/export/report", s.handleExportReport)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/static/", http.FileServer(http.FS(appweb.StaticFS)))

	s.Server = http.Server{
		Addr:    addr,
		Handler: s.withMiddleware(mux),
	}
	return s, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"inr":          func(m core.Money) string { return core.FormatINR(m.Cents) },
		"categoryName": core.CategoryName,
		"modeName":     core.PaymentModeName,
		"shortDate":    func(d core.Date) string { return d.Format("02 Jan 2006") },
	}
}

// withMiddleware wraps the mux with request tracing and security headers.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := newRequestID()

		applySecurityHeaders(w.Header())

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(r.Context()))

		level := slog.LevelInfo
		if rec.status >= 500 {
			level = slog.LevelError
		} else if rec.status >= 400 {
			level = slog.LevelWarn
		}
		s.logger.Log(r.Context(), level, "HTTP request completed",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, rec.status,
			applog.FieldDuration, time.Since(start).Milliseconds(),
			applog.FieldClientIP, clientIP(r))
	})
}

// applySecurityHeaders sets the response security headers for every route.
func applySecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy",
		"default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; "+
			"object-src 'none'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'")
	h.Set("X-Frame-Options", "DENY")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func newRequestID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b[:])
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// loadTransactions lists from the store. Per the error policy, a failed list
// is logged and treated as an empty set; it is never fatal to the page.
func (s *Server) loadTransactions(ctx context.Context) []core.Transaction {
	transactions, err := s.store.List(ctx, s.session)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list transactions, rendering empty",
			applog.FieldError, err,
			applog.FieldComponent, applog.ComponentStore,
			applog.FieldOperation, applog.OpList)
		return nil
	}
	return transactions
}

// invalidate drops memoized aggregates after a successful write.
func (s *Server) invalidate() {
	s.summaryCache.Purge()
}

func (s *Server) cacheKey() string {
	if s.session.Authenticated() {
		return "dashboard:" + s.session.UserID
	}
	return "dashboard:local"
}

// dashboardData is everything the index template renders.
type dashboardData struct {
	Transactions  []core.Transaction
	Summary       budget.Summary
	Monthly       []budget.MonthlyPoint
	TopCategories []budget.CategoryAmount
	Categories    []core.Category
	PaymentModes  []core.PaymentMode

	FilterType     string
	FilterCategory string
	Query          string
	FormError      string
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		err = s.Server.Shutdown(ctx)
	})
	return err
}
