package v1

import (
	"elextrio-site/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers is everything mounted under /api/v1.
type Handlers struct {
	Auth         *handler.AuthHandler
	Public       *handler.PublicHandler
	Careers      *handler.CareersHandler
	Dashboard    *handler.DashboardHandler
	Jobs         *handler.JobsHandler
	Applications *handler.ApplicationsHandler
	Messages     *handler.MessagesHandler
	Collections  map[string]RouteRegistrar
	AdminWS      fiber.Handler

	// RequireSession guards every admin route.
	RequireSession fiber.Handler
	// SubmitLimit throttles public form posts.
	SubmitLimit fiber.Handler
}

type RouteRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	authGroup := r.Group("/auth")
	var protectedAuth fiber.Router
	if h.RequireSession != nil {
		protectedAuth = r.Group("/auth", h.RequireSession)
	}
	if h.Auth != nil {
		h.Auth.RegisterRoutes(authGroup, protectedAuth)
	}

	if h.Public != nil {
		h.Public.RegisterRoutes(r.Group("/public"))
	}
	if h.Careers != nil {
		h.Careers.RegisterRoutes(r.Group("/careers"), h.SubmitLimit)
	}

	if h.RequireSession == nil {
		return
	}
	admin := r.Group("/admin", h.RequireSession)

	if h.AdminWS != nil {
		admin.Get("/ws", h.AdminWS)
	}
	if h.Dashboard != nil {
		h.Dashboard.RegisterRoutes(admin.Group("/dashboard"))
	}
	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(admin.Group("/jobs"))
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(admin.Group("/applications"))
	}
	if h.Messages != nil {
		h.Messages.RegisterRoutes(admin.Group("/messages"))
	}
	for name, reg := range h.Collections {
		reg.RegisterRoutes(admin.Group("/" + name))
	}
}
