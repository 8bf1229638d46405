package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/infrastructure/csvimport"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// statusFor traduce un error de dominio a status HTTP y código estable.
func statusFor(err error) (int, string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		switch ve.Code {
		case domain.CodeDuplicateName, domain.CodeDuplicateBusinessNumber, domain.CodeDuplicateItemCode:
			return fiber.StatusConflict, ve.Code
		}
		return fiber.StatusBadRequest, ve.Code
	}
	var pe *domain.ProductionError
	if errors.As(err, &pe) {
		return fiber.StatusConflict, pe.Kind
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrInsufficientMaterials):
		return fiber.StatusConflict, "INSUFFICIENT_MATERIALS"
	case errors.Is(err, domain.ErrDuplicateMaterial):
		return fiber.StatusConflict, "DUPLICATE_MATERIAL"
	case errors.Is(err, domain.ErrNoBOMDefined):
		return fiber.StatusBadRequest, "NO_BOM_DEFINED"
	case errors.Is(err, domain.ErrSelfReference):
		return fiber.StatusBadRequest, "SELF_REFERENCE"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return fiber.StatusBadRequest, "INVALID_QUANTITY"
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return fiber.StatusBadRequest, "INVALID_TRANSACTION_TYPE"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, csvimport.ErrMissingColumn):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// writeError responde con dto.ErrorResponse. Los 5xx se registran y no exponen el detalle.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		msg = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
