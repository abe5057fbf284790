package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/warehouse-state/internal/application/dto"
	"github.com/jhoicas/warehouse-state/internal/domain"
)

// writeError traduce el tipo de error de dominio a status HTTP + dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientQuantityError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.InsufficientQuantityResponse{
			ErrorResponse: dto.ErrorResponse{Code: "INSUFFICIENT_QUANTITY", Message: err.Error()},
			Requested:     insufficient.Requested,
			Available:     insufficient.Available,
		})
	}

	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrLocationNotFound):
		status, code = fiber.StatusNotFound, "LOCATION_NOT_FOUND"
	case errors.Is(err, domain.ErrItemNotFound):
		status, code = fiber.StatusNotFound, "ITEM_NOT_FOUND"
	case errors.Is(err, domain.ErrLocationAlreadyExists):
		status, code = fiber.StatusConflict, "LOCATION_EXISTS"
	case errors.Is(err, domain.ErrLocationHasInventory):
		status, code = fiber.StatusConflict, "LOCATION_HAS_INVENTORY"
	case errors.Is(err, domain.ErrStorage):
		status, code = fiber.StatusServiceUnavailable, "STORAGE"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
