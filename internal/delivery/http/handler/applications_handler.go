package handler

import (
	"context"
	"strings"

	"elextrio-site/internal/delivery/http/dto"
	"elextrio-site/internal/domain/job"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/pkg/response"
	"elextrio-site/internal/pkg/validate"
	"elextrio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationsUsecase interface {
	View(ctx context.Context, ws *listview.Workspace, req usecase.ViewRequest) (usecase.ApplicationPage, error)
	Get(ctx context.Context, id uuid.UUID) (usecase.ApplicationRow, error)
	ByJob(ctx context.Context, jobID uuid.UUID) ([]usecase.ApplicationRow, error)
	UpdateStatus(ctx context.Context, ws *listview.Workspace, id uuid.UUID, status job.ApplicationStatus) error
}

type ApplicationsHandler struct {
	uc         ApplicationsUsecase
	workspaces WorkspaceSource
	validate   *validate.Validator
	filters    []string
}

func NewApplicationsHandler(uc ApplicationsUsecase, workspaces WorkspaceSource, v *validate.Validator) *ApplicationsHandler {
	return &ApplicationsHandler{
		uc:         uc,
		workspaces: workspaces,
		validate:   v,
		filters:    filterNames(listview.ApplicationSchema()),
	}
}

func (h *ApplicationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/by-job/:jobId", h.ByJob)
	r.Get("/:id", h.Get)
	r.Patch("/:id/status", h.UpdateStatus)
}

func (h *ApplicationsHandler) List(c fiber.Ctx) error {
	ws, err := workspaceOf(c, h.workspaces)
	if err != nil {
		return err
	}
	page, err := h.uc.View(c.Context(), ws, parseViewRequest(c, h.filters))
	return respond(c, page, err)
}

func (h *ApplicationsHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	row, err := h.uc.Get(c.Context(), id)
	return respond(c, row, err)
}

func (h *ApplicationsHandler) ByJob(c fiber.Ctx) error {
	id, err := paramID(c, "jobId")
	if err != nil {
		return err
	}
	rows, err := h.uc.ByJob(c.Context(), id)
	return respond(c, rows, err)
}

func (h *ApplicationsHandler) UpdateStatus(c fiber.Ctx) error {
	ws, err := workspaceOf(c, h.workspaces)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	req, err := bindBody[dto.StatusRequest](c, h.validate)
	if err != nil {
		return err
	}
	status := job.ApplicationStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if err := h.uc.UpdateStatus(c.Context(), ws, id, status); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
