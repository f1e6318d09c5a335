package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/dto"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
)

// writeError traduce la clase del error de dominio a status HTTP.
// El mensaje viaja tal cual: el cliente lo propaga como texto del error.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindRegistration:
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case domain.KindAuthentication:
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case domain.KindNotFound:
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case domain.KindConflict:
		status, code = fiber.StatusConflict, "CONFLICT"
	case domain.KindRemote:
		status, code = fiber.StatusBadGateway, "UPSTREAM"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
}
