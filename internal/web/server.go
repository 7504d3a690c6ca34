// Package web serves the brokerage website and its JSON API.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/cnk-ceneka/cnk/internal/gallery"
	"github.com/cnk-ceneka/cnk/internal/inquiry"
	"github.com/cnk-ceneka/cnk/internal/listing"
	"github.com/cnk-ceneka/cnk/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// pages are rendered inside layout.html.
var pages = []string{"home.html", "detail.html", "contact.html", "notfound.html", "error.html"}

// Deps are the services the site is built on.
type Deps struct {
	Listings  *listing.Fetcher
	Resolver  *listing.Resolver
	Gallery   *gallery.Fetcher
	Inquiries *inquiry.Service
}

// DefaultGalleryWait bounds how long the home page waits for the gallery.
const DefaultGalleryWait = 2 * time.Second

// Options tune the site.
type Options struct {
	PageSize         int
	WhatsAppNumber   string
	ContactRateLimit int
	CORSOrigins      []string
	// GalleryWait is how long the home page waits for the gallery before
	// showing the fallback images.
	GalleryWait time.Duration
}

// Server is the website HTTP server.
type Server struct {
	deps      Deps
	opts      Options
	templates map[string]*template.Template
	router    chi.Router
}

// NewServer parses the embedded templates and builds the router.
func NewServer(deps Deps, opts Options) (*Server, error) {
	if deps.Listings == nil || deps.Resolver == nil || deps.Gallery == nil {
		return nil, errors.New("listings, resolver and gallery are required")
	}
	if opts.PageSize <= 0 {
		opts.PageSize = listing.DefaultPageSize
	}
	if opts.GalleryWait <= 0 {
		opts.GalleryWait = DefaultGalleryWait
	}

	s := &Server{
		deps:      deps,
		opts:      opts,
		templates: make(map[string]*template.Template, len(pages)),
	}

	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcMap).ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		s.templates[page] = tmpl
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.router = s.routes(http.FileServer(http.FS(staticContent)))
	return s, nil
}

func (s *Server) routes(static http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.withLang)

	r.Get("/health", s.handleHealth)
	r.Handle("/static/*", http.StripPrefix("/static/", static))

	r.Get("/", s.handleHome)
	r.Get("/property/{id}", s.handleDetail)
	r.Get("/contact", s.handleContactForm)
	r.With(s.contactLimiter()).Post("/contact", s.handleContactPost)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "Accept-Language"},
			MaxAge:         300,
		}))
		r.Get("/properties", s.apiListProperties)
		r.Get("/properties/{id}", s.apiGetProperty)
		r.Get("/gallery", s.apiGallery)
		r.Get("/i18n", s.apiDictionary)
		r.With(s.contactLimiter()).Post("/inquiries", s.apiCreateInquiry)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			apiError(w, r, "not found", http.StatusNotFound)
		})
	})

	r.NotFound(s.handleNotFound)
	return r
}

// contactLimiter caps form and API submissions per client IP.
func (s *Server) contactLimiter() func(http.Handler) http.Handler {
	if s.opts.ContactRateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(s.opts.ContactRateLimit, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(s.handleRateLimited),
	)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("starting web server", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("shutting down web server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// render executes a page into a buffer first so a template error can still
// become a clean 500.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := s.templates[name]
	if !ok {
		http.Error(w, "unknown template "+name, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("rendering template", "template", name, "error", err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("writing response", "template", name, "error", err)
	}
}
