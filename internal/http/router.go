package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"meetingdocs/internal/handlers"
	"meetingdocs/internal/preview"
	"meetingdocs/internal/service"
	"meetingdocs/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Converter service.ConverterService
	Store     storage.ConversionStore
	Renderer  *preview.Renderer
	DB        *sql.DB
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Add CORS and request-scoped logging middleware
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	convertHandler := handlers.NewConvertHandler(deps.Converter)
	previewHandler := handlers.NewPreviewHandler(deps.Renderer)
	conversionsHandler := handlers.NewConversionsHandler(deps.Store)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Route("/v1", func(r chi.Router) {
			r.Method(http.MethodPost, "/convert", convertHandler)
			r.Method(http.MethodPost, "/preview", previewHandler)
			r.Method(http.MethodGet, "/conversions", conversionsHandler)
		})
	})

	return r
}
