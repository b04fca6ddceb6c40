package handler

import (
	"context"

	"elextrio-site/internal/delivery/http/dto"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/pkg/response"
	"elextrio-site/internal/pkg/validate"
	"elextrio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CollectionUsecase[T any, P any] interface {
	Name() string
	View(ctx context.Context, ws *listview.Workspace, req usecase.ViewRequest) (usecase.ListPage[T], error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	Create(ctx context.Context, ws *listview.Workspace, v T) error
	Update(ctx context.Context, ws *listview.Workspace, id uuid.UUID, p P) error
	RequestDelete(ctx context.Context, ws *listview.Workspace, id uuid.UUID) error
	CancelDelete(ws *listview.Workspace)
	ConfirmDelete(ctx context.Context, ws *listview.Workspace, id uuid.UUID) error
}

// CollectionCodec turns request bodies into records and patches. Decoders
// return errors that are ready to be sent.
type CollectionCodec[T any, P any] struct {
	Create  func(c fiber.Ctx) (T, error)
	Patch   func(c fiber.Ctx) (P, error)
	Present func(T) any
}

type CollectionHandler[T any, P any] struct {
	uc         CollectionUsecase[T, P]
	workspaces WorkspaceSource
	filters    []string
	codec      CollectionCodec[T, P]
}

func NewCollectionHandler[T any, P any](uc CollectionUsecase[T, P], workspaces WorkspaceSource, schema listview.Schema[T], codec CollectionCodec[T, P]) *CollectionHandler[T, P] {
	return &CollectionHandler[T, P]{
		uc:         uc,
		workspaces: workspaces,
		filters:    filterNames(schema),
		codec:      codec,
	}
}

func (h *CollectionHandler[T, P]) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/delete/cancel", h.CancelDelete)
	r.Get("/:id", h.Get)
	r.Patch("/:id", h.Update)
	r.Post("/:id/delete", h.RequestDelete)
	r.Post("/:id/delete/confirm", h.ConfirmDelete)
}

func (h *CollectionHandler[T, P]) List(c fiber.Ctx) error {
	ws, err := workspaceOf(c, h.workspaces)
	if err != nil {
		return err
	}
	page, err := h.uc.View(c.Context(), ws, parseViewRequest(c, h.filters))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCollectionPage(page, h.codec.Present))
}

func (h *CollectionHandler[T, P]) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	v, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.present(v))
}

func (h *CollectionHandler[T, P]) Create(c fiber.Ctx) error {
	ws, err := workspaceOf(c, h.workspaces)
	if err != nil {
		return err
	}
	v, err := h.codec.Create(c)
	if err != nil {
		return err
	}
	if err := h.uc.Create(c.Context(), ws, v); err != nil {
		return mapUsecaseError(err)
	}
	return h.page(c, ws, fiber.StatusCreated)
}

func (h *CollectionHandler[T, P]) Update(c fiber.Ctx) error {
	ws, err := workspaceOf(c, h.workspaces)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.codec.Patch(c)
	if err != nil {
		return err
	}
	if err := h.uc.Update(c.Context(), ws, id, p); err != nil {
		return mapUsecaseError(err)
	}
	return h.page(c, ws, fiber.StatusOK)
}

func (h *CollectionHandler[T, P]) RequestDelete(c fiber.Ctx) error {
	ws, err := workspaceOf(c, h.workspaces)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.RequestDelete(c.Context(), ws, id); err != nil {
		return mapUsecaseError(err)
	}
	return h.page(c, ws, fiber.StatusOK)
}

func (h *CollectionHandler[T, P]) CancelDelete(c fiber.Ctx) error {
	ws, err := workspaceOf(c, h.workspaces)
	if err != nil {
		return err
	}
	h.uc.CancelDelete(ws)
	return h.page(c, ws, fiber.StatusOK)
}

func (h *CollectionHandler[T, P]) ConfirmDelete(c fiber.Ctx) error {
	ws, err := workspaceOf(c, h.workspaces)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.ConfirmDelete(c.Context(), ws, id); err != nil {
		return mapUsecaseError(err)
	}
	return h.page(c, ws, fiber.StatusOK)
}

// page answers a mutation with the table as the session now sees it.
func (h *CollectionHandler[T, P]) page(c fiber.Ctx, ws *listview.Workspace, status int) error {
	p, err := h.uc.View(c.Context(), ws, usecase.ViewRequest{})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, status, response.MessageOK, dto.NewCollectionPage(p, h.codec.Present))
}

func (h *CollectionHandler[T, P]) present(v T) any {
	if h.codec.Present == nil {
		return v
	}
	return h.codec.Present(v)
}

// bindBody decodes and validates a JSON body.
func bindBody[R any](c fiber.Ctx, v *validate.Validator) (R, error) {
	var r R
	if err := c.Bind().Body(&r); err != nil {
		return r, badRequest(err)
	}
	if v != nil {
		if err := v.Struct(r); err != nil {
			return r, mapUsecaseError(err)
		}
	}
	return r, nil
}
