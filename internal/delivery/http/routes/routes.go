package routes

import (
	"net/http"

	"elextrio-site/internal/delivery/http/handler"
	v1 "elextrio-site/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	health  *handler.HealthHandler
	contact *handler.ContactHandler
	metrics http.Handler
	v1      v1.Handlers
}

func NewRegistry(health *handler.HealthHandler, contact *handler.ContactHandler, metrics http.Handler, api v1.Handlers) *Registry {
	return &Registry{health: health, contact: contact, metrics: metrics, v1: api}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerMetrics(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerMetrics(app *fiber.App) {
	if r.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.metrics))
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	if r.contact != nil {
		r.contact.RegisterRoutes(api.Group("/contact"), r.v1.RequireSession, r.v1.SubmitLimit)
	}
	RegisterV1(api.Group("/v1"), r.v1)
}
