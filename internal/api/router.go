package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/renaldy/spaces-api/internal/api/handler"
	customMiddleware "github.com/renaldy/spaces-api/internal/api/middleware"
	"github.com/renaldy/spaces-api/internal/config"
	"github.com/renaldy/spaces-api/internal/service"
)

// NewRouter creates and configures the HTTP router. The repository and
// pinger come in as explicit dependencies so tests can substitute fakes.
func NewRouter(cfg *config.Config, spaceRepo service.SpaceRepository, db handler.Pinger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize services
	spaceService := service.NewSpaceService(spaceRepo)

	// Initialize handlers
	spaceHandler := handler.NewSpaceHandler(spaceService)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		// Space routes
		r.Route("/spaces", func(r chi.Router) {
			r.Get("/", spaceHandler.List)
			r.Post("/", spaceHandler.Create)

			r.Route("/{spaceID}", func(r chi.Router) {
				r.Get("/", spaceHandler.Get)
				r.Patch("/", spaceHandler.Update)
				r.Delete("/", spaceHandler.Delete)
			})
		})
	})

	return r
}
