package handler

import (
	"context"
	"strings"

	"elextrio-site/internal/delivery/http/dto"
	"elextrio-site/internal/domain/contact"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/pkg/response"
	"elextrio-site/internal/pkg/validate"
	"elextrio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MessagesUsecase interface {
	View(ctx context.Context, ws *listview.Workspace, req usecase.ViewRequest) (usecase.ListPage[contact.Message], error)
	UpdateStatus(ctx context.Context, ws *listview.Workspace, id uuid.UUID, status contact.Status) error
	Open(ctx context.Context, ws *listview.Workspace, id uuid.UUID) (contact.Message, error)
}

type MessagesHandler struct {
	uc         MessagesUsecase
	workspaces WorkspaceSource
	validate   *validate.Validator
	filters    []string
}

func NewMessagesHandler(uc MessagesUsecase, workspaces WorkspaceSource, v *validate.Validator) *MessagesHandler {
	return &MessagesHandler{
		uc:         uc,
		workspaces: workspaces,
		validate:   v,
		filters:    filterNames(listview.MessageSchema()),
	}
}

func (h *MessagesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Post("/:id/open", h.Open)
	r.Patch("/:id/status", h.UpdateStatus)
}

func (h *MessagesHandler) List(c fiber.Ctx) error {
	ws, err := workspaceOf(c, h.workspaces)
	if err != nil {
		return err
	}
	page, err := h.uc.View(c.Context(), ws, parseViewRequest(c, h.filters))
	return respond(c, page, err)
}

func (h *MessagesHandler) Open(c fiber.Ctx) error {
	ws, err := workspaceOf(c, h.workspaces)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	m, err := h.uc.Open(c.Context(), ws, id)
	return respond(c, m, err)
}

func (h *MessagesHandler) UpdateStatus(c fiber.Ctx) error {
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
	status := contact.Status(strings.ToLower(strings.TrimSpace(req.Status)))
	if err := h.uc.UpdateStatus(c.Context(), ws, id, status); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
