package handler

import (
	"errors"

	"elextrio-site/internal/delivery/http/middleware"
	"elextrio-site/internal/pkg/response"
	"elextrio-site/internal/pkg/validate"
	"elextrio-site/internal/session"
	ucauth "elextrio-site/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc       ucauth.AuthUsecase
	validate *validate.Validator
}

func NewAuthHandler(uc ucauth.AuthUsecase, v *validate.Validator) *AuthHandler {
	return &AuthHandler{uc: uc, validate: v}
}

// RegisterRoutes mounts login on r and the session-bound routes on protected.
func (h *AuthHandler) RegisterRoutes(r fiber.Router, protected fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
	if protected != nil {
		protected.Post("/logout", h.Logout)
		protected.Get("/session", h.Session)
	}
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req ucauth.LoginInput
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return mapUsecaseError(err)
	}

	res, err := h.uc.Login(c.Context(), req)
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	s, ok := session.From(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	if err := h.uc.Logout(c.Context(), s); err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AuthHandler) Session(c fiber.Ctx) error {
	s, ok := session.From(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, s)
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, ucauth.ErrInvalidCredentials.Error(), nil, err)
	case errors.Is(err, ucauth.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
