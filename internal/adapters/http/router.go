// Package http provides the operator control surface: routing, operator
// authentication and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-autonomy/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-autonomy/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all control routes registered.
// Middleware is applied globally in the order given. Mutating routes also
// require the operator token.
func NewRouter(
	controlHandler *handlers.ControlHandler,
	healthHandler *handlers.HealthHandler,
	operatorToken string,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/plan", controlHandler.GetPlan)
		r.Get("/lanes", controlHandler.ListLanes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.OperatorAuth(operatorToken))
			r.Post("/abort", controlHandler.Abort)
			r.Put("/input", controlHandler.SubmitInput)
		})
	})

	return r
}
