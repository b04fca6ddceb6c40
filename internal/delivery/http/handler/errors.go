package handler

import (
	"errors"

	"elextrio-site/internal/delivery/http/middleware"
	"elextrio-site/internal/domain"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case domain.IsValidation(err):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case domain.IsNotFound(err):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	case errors.Is(err, listview.ErrNotArmed):
		return middleware.NewAppError(fiber.StatusConflict, "Confirm the delete request first", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func badRequest(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
}
