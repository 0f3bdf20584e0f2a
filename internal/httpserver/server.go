// Package httpserver wires the admin dashboard and public storefront into a
// single chi router in front of the remote catalog API.
package httpserver

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"bitechx.com/catalog/internal/catalog/api"
	appsession "bitechx.com/catalog/internal/catalog/session"
	"bitechx.com/catalog/internal/httpserver/middleware"
)

const (
	loginPath      = "/admin-login"
	productsPath   = "/dashboard/products"
	categoriesPath = "/dashboard/categories"
	shopPath       = "/shop"

	// categoryOptionLimit bounds the dropdown fetch on the product form. The
	// categories endpoint pages, the dropdown does not.
	categoryOptionLimit = 100
)

// Config carries everything the server needs. Zero page sizes fall back to
// ten rows, a nil logger disables logging.
type Config struct {
	Addr                string
	APIBaseURL          string
	SessionHashKey      []byte
	SessionBlockKey     []byte
	SessionCookieName   string
	SessionCookieSecure bool
	ProductPageSize     int
	CategoryPageSize    int
	Logger              *zap.Logger
	HTTPClient          api.HTTPClient
}

// Server holds the shared dependencies of every handler.
type Server struct {
	cfg       Config
	logger    *zap.Logger
	api       *api.Client
	sessions  *appsession.Store
	templates *template.Template
}

// New constructs the server: API client, session store and parsed templates.
func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.ProductPageSize <= 0 {
		cfg.ProductPageSize = 10
	}
	if cfg.CategoryPageSize <= 0 {
		cfg.CategoryPageSize = 10
	}

	client, err := api.New(cfg.APIBaseURL, cfg.HTTPClient)
	if err != nil {
		return nil, err
	}

	sessions, err := appsession.NewStore(appsession.Config{
		CookieName:   cfg.SessionCookieName,
		HashKey:      cfg.SessionHashKey,
		BlockKey:     cfg.SessionBlockKey,
		CookieSecure: cfg.SessionCookieSecure,
	})
	if err != nil {
		return nil, err
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:       cfg,
		logger:    cfg.Logger,
		api:       client,
		sessions:  sessions,
		templates: templates,
	}, nil
}

// Handler builds the full route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.Session(s.sessions))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))
	r.Get("/placeholder-image.jpg", s.handlePlaceholderImage)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, shopPath, http.StatusFound)
	})

	r.Get(shopPath, s.handleShopIndex)
	r.Get(shopPath+"/product/{slug}", s.handleShopDetail)

	r.Get(loginPath, s.handleLoginForm)
	r.Post(loginPath, s.handleLoginSubmit)
	r.Post("/logout", s.handleLogout)

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(middleware.RequireAuth(loginPath))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, productsPath, http.StatusFound)
		})

		r.Get("/products", s.handleProductList)
		r.Get("/products/new", s.handleProductNewForm)
		r.Post("/products/new", s.handleProductCreate)
		r.Get("/products/{id}/edit", s.handleProductEditForm)
		r.Post("/products/{id}/edit", s.handleProductUpdate)
		r.Post("/products/{id}/delete", s.handleProductDelete)

		r.Get("/categories", s.handleCategoryList)
		r.Get("/categories/new", s.handleCategoryNewForm)
		r.Post("/categories/new", s.handleCategoryCreate)
		r.Get("/categories/{id}/edit", s.handleCategoryEditForm)
		r.Post("/categories/{id}/edit", s.handleCategoryUpdate)
		r.Post("/categories/{id}/delete", s.handleCategoryDelete)
	})

	return r
}

// HTTPServer wraps the handler with production timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// handlePlaceholderImage serves the bundled fallback image. The path keeps
// the .jpg suffix stored product data points at, the payload is an SVG.
func (s *Server) handlePlaceholderImage(w http.ResponseWriter, r *http.Request) {
	data, err := staticFS.ReadFile("static/placeholder.svg")
	if err != nil {
		http.Error(w, "placeholder missing", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(data)
}

// notFound reports whether an API error is a plain 404.
func notFound(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func (s *Server) logAPIError(r *http.Request, op string, err error) {
	s.logger.Warn("catalog api call failed",
		zap.String("op", op),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
}

func listLocation(basePath, encodedQuery string) string {
	if encodedQuery == "" {
		return basePath
	}
	return fmt.Sprintf("%s?%s", basePath, encodedQuery)
}
