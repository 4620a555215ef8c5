package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ignite/jsonresponse/internal/config"
	"github.com/ignite/jsonresponse/internal/jsonresponse"
	"github.com/ignite/jsonresponse/internal/pkg/logger"
)

// NewRenderer builds the response renderer from configuration.
func NewRenderer(cfg config.RenderConfig, log *logger.Logger) *jsonresponse.Renderer {
	rd := jsonresponse.New()
	rd.Encoder = jsonresponse.Encoder{DefaultCallback: cfg.CallbackName, Indent: cfg.Indent}
	rd.AllowRaise = cfg.RaiseAllowed()
	if log != nil {
		rd.Log = log
	}
	return rd
}

// SetupRoutes configures all routes. Every endpoint is wrapped at
// registration with its rendering mode.
func SetupRoutes(cfg *config.Config, rd *jsonresponse.Renderer) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// JSONP callers are cross-origin script tags; CORS covers XHR callers
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	health := NewHealthChecker()
	r.Method(http.MethodGet, "/health", rd.API(health.HandleHealth))

	r.Method(http.MethodGet, "/hello", rd.Plain(HandleHello))
	r.Method(http.MethodGet, "/goodbye", rd.API(HandleGoodbye))
	r.Method(http.MethodGet, "/error", rd.API(HandleError))

	users := NewUserDirectory(DefaultUsers()...)
	r.Route("/users", func(r chi.Router) {
		r.Method(http.MethodGet, "/", rd.Objects(users.HandleList))
		r.Method(http.MethodGet, "/{name}", rd.Objects(users.HandleGet))
	})

	return r
}
