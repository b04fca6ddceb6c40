package handler

import (
	"context"

	"elextrio-site/internal/domain"

	"github.com/gofiber/fiber/v3"
)

type DashboardUsecase interface {
	Status(ctx context.Context) (domain.SiteStatus, error)
}

type DashboardHandler struct {
	uc DashboardUsecase
}

func NewDashboardHandler(uc DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Status)
}

func (h *DashboardHandler) Status(c fiber.Ctx) error {
	st, err := h.uc.Status(c.Context())
	return respond(c, st, err)
}
