// Package http is the presentation layer: it renders the ledger as an
// HTML page and translates form submissions into store operations.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"tally/internal/ledger"
	"tally/internal/middleware/ratelimit"
	"tally/internal/middleware/security"
	"tally/internal/middleware/trace"
	appweb "tally/web"
)

// Options configures the presentation surface.
type Options struct {
	Addr               string
	DefaultCurrency    string
	ScrollThreshold    int
	RateLimitPerMinute int
}

// Server renders the transaction table and balance from an injected
// Store. Besides the store reference it holds exactly two pieces of
// state: the selected display currency and the edit session.
type Server struct {
	http.Server

	templates *template.Template
	store     *ledger.Store
	edit      editSession
	limiter   *ratelimit.Limiter

	mu       sync.Mutex
	currency string

	scrollThreshold int
}

// NewServer configures routes, middleware and templates, returning a
// ready-to-run server.
func NewServer(store *ledger.Store, opts Options) *Server {
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = "USD"
	}
	if opts.ScrollThreshold <= 0 {
		opts.ScrollThreshold = 10
	}

	mux := http.NewServeMux()

	s := &Server{
		Server:          http.Server{Addr: opts.Addr},
		store:           store,
		currency:        opts.DefaultCurrency,
		scrollThreshold: opts.ScrollThreshold,
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: opts.RateLimitPerMinute,
		}),
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", security.StaticAssetMiddleware(3600)(static))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/transactions", s.handleCreate)
	mux.HandleFunc("/transactions/edit", s.handleEdit)
	mux.HandleFunc("/transactions/save", s.handleSave)
	mux.HandleFunc("/transactions/cancel", s.handleCancel)
	mux.HandleFunc("/transactions/delete", s.handleDelete)
	mux.HandleFunc("/currency", s.handleCurrency)
	mux.HandleFunc("/export", s.handleExport)
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	// Mutating requests go through the rate limiter; everything gets
	// tracing and security headers.
	limited := s.limitMutations(mux)
	secured := security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware(limited)
	s.Server.Handler = trace.NewMiddleware(clientIP).Middleware(secured)

	return s
}

// limitMutations applies the rate limiter to POST requests only; reads
// and re-renders stay unthrottled.
func (s *Server) limitMutations(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && !s.limiter.Allow(clientIP(r)) {
			slog.WarnContext(r.Context(), "Rate limit exceeded",
				"client_ip", clientIP(r), "method", r.Method, "path", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Currency returns the process-wide display currency.
func (s *Server) Currency() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// SetCurrency sets the process-wide display currency. It only affects
// formatting; stored amounts are untouched.
func (s *Server) SetCurrency(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currency = code
}

// Shutdown stops the rate limiter's cleanup goroutine before shutting
// down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.Server.Shutdown(ctx)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
