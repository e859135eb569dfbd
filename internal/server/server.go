// Package server exposes the itinerary parser, city tax calculator and
// package scraper over a REST API, with a token-protected admin surface
// for editing tax rules.
package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"quotemaster/internal/citytax"
	"quotemaster/internal/events"
	"quotemaster/internal/scrape"
	"quotemaster/internal/storage"
)

// Server wires the parsing and quoting services behind HTTP handlers.
type Server struct {
	taxes         *citytax.Table
	scraper       *scrape.Scraper
	store         storage.TaxStore      // Optional: persists admin edits.
	archive       *storage.ParseArchive // Optional: records parse requests.
	publisher     *events.Publisher     // Optional: publishes parse events.
	sessions      *sessionStore
	port          int
	adminPassword string
}

// Config holds configuration for the API server.
type Config struct {
	Port          int
	AdminPassword string
	ScrapeHost    string

	// Optional integrations; nil disables each.
	Store     storage.TaxStore
	Archive   *storage.ParseArchive
	Publisher *events.Publisher
}

// New creates an API server around a tax rule table.
func New(taxes *citytax.Table, cfg Config) *Server {
	return &Server{
		taxes:         taxes,
		scraper:       scrape.New(cfg.ScrapeHost),
		store:         cfg.Store,
		archive:       cfg.Archive,
		publisher:     cfg.Publisher,
		sessions:      newSessionStore(),
		port:          cfg.Port,
		adminPassword: cfg.AdminPassword,
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := ":" + strconv.Itoa(s.port)
	log.Printf("QuoteMaster running at http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Router())
}

// Router returns the configured chi router.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// Standard middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS for browser access.
	r.Use(corsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/parse", s.handleParse)
		r.Get("/airports", s.handleAirports)
		r.Post("/city-tax", s.handleCityTax)
		r.Get("/cities", s.handleCities)
		r.Post("/scrape", s.handleScrape)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)

			r.Group(func(r chi.Router) {
				r.Use(s.authMiddleware)
				r.Get("/taxes", s.handleListTaxes)
				r.Post("/taxes", s.handleCreateTax)
				r.Put("/taxes/{id}", s.handleUpdateTax)
				r.Delete("/taxes/{id}", s.handleDeleteTax)
			})
		})
	})

	return r
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Token")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authMiddleware validates the X-Admin-Token header.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Admin-Token")
		if !s.sessions.Valid(token) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
