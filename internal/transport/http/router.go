// Package httptransport assembles the HTTP router from the domain handlers.
// It owns transport concerns only; business logic lives in the services.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "doorman/internal/auth/handler"
	"doorman/internal/directory"
	"doorman/internal/platform/health"
	"doorman/internal/platform/metrics"
	"doorman/internal/platform/middleware"
)

// Deps carries the wired handlers and middleware collaborators.
type Deps struct {
	Auth      *authhandler.Handler
	Directory *directory.Handler
	Health    *health.Handler
	Tokens    middleware.TokenValidator
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
}

// NewRouter wires all endpoints with the middleware stack.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.CORS)
	r.Use(middleware.ContentTypeJSON)
	if deps.Metrics != nil {
		r.Use(endpointLatency(deps.Metrics))
	}

	r.Route("/api", func(api chi.Router) {
		deps.Auth.Register(api)
		deps.Directory.Register(api)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth(deps.Tokens, deps.Logger))
			deps.Directory.RegisterProtected(protected)
		})
	})

	deps.Health.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// endpointLatency records request duration against the matched chi route
// pattern, so path parameters do not explode label cardinality.
func endpointLatency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			pattern := chi.RouteContext(r.Context()).RoutePattern()
			if pattern == "" {
				pattern = "unmatched"
			}
			m.ObserveEndpointLatency(pattern, time.Since(start).Seconds())
		})
	}
}
