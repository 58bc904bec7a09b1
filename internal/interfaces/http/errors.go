package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/miriamyi01/facturas-cfdi/internal/application/dto"
	"github.com/miriamyi01/facturas-cfdi/internal/domain"
)

// errorMapping traduce un error de dominio a status HTTP y código estable.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrRFCAlreadyExists, fiber.StatusConflict, "RFC_EXISTS"},
	{domain.ErrEmployeeAlreadyExists, fiber.StatusConflict, "EMPLOYEE_EXISTS"},
	{domain.ErrDocumentExists, fiber.StatusConflict, "DOCUMENT_EXISTS"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrInvalidName, fiber.StatusBadRequest, "INVALID_NAME"},
	{domain.ErrInvalidRFC, fiber.StatusBadRequest, "INVALID_RFC"},
	{domain.ErrInvalidEmail, fiber.StatusBadRequest, "INVALID_EMAIL"},
	{domain.ErrInvalidCURP, fiber.StatusBadRequest, "INVALID_CURP"},
	{domain.ErrInvalidNSS, fiber.StatusBadRequest, "INVALID_NSS"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrCatalogNotFound, fiber.StatusUnprocessableEntity, "CATALOG_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
}

// writeError responde con dto.ErrorResponse. Los errores no mapeados se
// registran y salen como 500 sin exponer el detalle.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			msg := err.Error()
			if m.target == domain.ErrInvalidCredentials {
				msg = domain.ErrInvalidCredentials.Error()
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
		}
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(verrs)})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
