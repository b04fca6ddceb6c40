package handler

import (
	"context"
	"log"

	"elextrio-site/internal/delivery/http/dto"
	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/contact"
	"elextrio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	contactSubmitFailed = "There was a problem submitting your form. Please try again."
	contactListFailed   = "Failed to retrieve messages"
	contactNoMessages   = "No messages found."
)

type ContactUsecase interface {
	Submit(ctx context.Context, sub contact.Submission) (usecase.ContactResult, error)
	Backups(ctx context.Context) ([]contact.BackupEntry, error)
}

// ContactHandler answers with plain {error} bodies rather than SemanticResponse;
// the site's contact form reads them directly.
type ContactHandler struct {
	uc     ContactUsecase
	logger *log.Logger
}

func NewContactHandler(uc ContactUsecase, logger *log.Logger) *ContactHandler {
	return &ContactHandler{uc: uc, logger: logger}
}

// RegisterRoutes mounts POST behind limit and GET behind auth. Either may be nil.
func (h *ContactHandler) RegisterRoutes(r fiber.Router, auth, limit fiber.Handler) {
	if r == nil {
		return
	}
	if limit != nil {
		r.Post("/", limit, h.Submit)
	} else {
		r.Post("/", h.Submit)
	}
	if auth != nil {
		r.Get("/", auth, h.List)
	}
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var sub contact.Submission
	if err := c.Bind().Body(&sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ContactError{Error: usecase.ContactRequiredMessage})
	}

	res, err := h.uc.Submit(c.Context(), sub)
	if err != nil {
		if domain.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ContactError{Error: err.Error()})
		}
		if h.logger != nil {
			h.logger.Printf("[Contact] submit failed err=%v", err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ContactError{Error: contactSubmitFailed})
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *ContactHandler) List(c fiber.Ctx) error {
	entries, err := h.uc.Backups(c.Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("[Contact] list failed err=%v", err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ContactError{Error: contactListFailed})
	}
	if len(entries) == 0 {
		return c.Status(fiber.StatusOK).JSON(dto.ContactEmptyResponse{Message: contactNoMessages})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ContactMessagesResponse{Messages: entries})
}
