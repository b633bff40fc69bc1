// Package api provides the HTTP API server and handlers for the Foodgram server.
package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/foodgramapp/foodgram-server/internal/config"
	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
	"github.com/foodgramapp/foodgram-server/internal/http/response"
	"github.com/foodgramapp/foodgram-server/internal/metrics"
	"github.com/foodgramapp/foodgram-server/internal/ratelimit"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	db           Pinger
	services     *Services
	router       *chi.Mux
	api          huma.API
	logger       *slog.Logger
	loginLimiter *ratelimit.KeyedRateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(db Pinger, services *Services, cfg config.ServerConfig, loginRate int, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(recoverer(logger))
	router.Use(metrics.Middleware)
	router.Use(corsMiddleware(cfg.AllowedOrigins))
	router.Use(globalRateLimit(cfg.RateLimit, logger))
	router.Use(authMiddleware(services.Auth))

	router.Handle("/metrics", metrics.Handler())
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotFound, domainerrors.CodeNotFound, "no route for "+r.URL.Path, nil, logger)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "", r.Method+" is not allowed on "+r.URL.Path, nil, logger)
	})

	s := &Server{
		db:           db,
		services:     services,
		router:       router,
		api:          humachi.New(router, newHumaConfig()),
		logger:       logger,
		loginLimiter: ratelimit.PerMinute(loginRate),
	}
	RegisterErrorHandler()
	s.registerRoutes()

	return s
}

// newHumaConfig returns the OpenAPI and wire configuration shared by the server and tests.
func newHumaConfig() huma.Config {
	humaConfig := huma.DefaultConfig("Foodgram API", "1.0.0")
	humaConfig.Info.Description = "Recipe sharing: recipes, tags, ingredients, favorites, shopping cart and subscriptions."
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "PASETO",
			Description:  "Send either \"Bearer <token>\" or \"Token <token>\".",
		},
	}
	// Responses are wrapped in an envelope, so per-type $schema links would point at the wrong shape.
	humaConfig.CreateHooks = nil
	humaConfig.Formats = map[string]huma.Format{
		"application/json": jsonFormat,
		"json":             jsonFormat,
	}
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	return humaConfig
}

var jsonFormat = huma.Format{
	Marshal: func(w io.Writer, v any) error {
		return json.NewEncoder(w).Encode(v)
	},
	Unmarshal: json.Unmarshal,
}

func (s *Server) registerRoutes() {
	s.registerHealthRoutes()
	s.registerAuthRoutes()
	s.registerUserRoutes()
	s.registerSubscriptionRoutes()
	s.registerTagRoutes()
	s.registerIngredientRoutes()
	s.registerRecipeRoutes()
	s.registerMembershipRoutes()
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases background resources held by the server.
func (s *Server) Close() {
	s.loginLimiter.Stop()
}
