// Package api is the HTTP front end: the same sign-up flow as the terminal
// screen, with the screen feedback returned as a list of effects.
package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, signUp *SignUpHandler, health *HealthHandler, gatherer prometheus.Gatherer) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/signup", signUp.SignUp)

	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}
