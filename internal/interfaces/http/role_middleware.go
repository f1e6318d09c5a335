package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/dto"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
)

// profileLookup contrato mínimo para resolver el rol del usuario autenticado.
// Lo implementa *profile.Service.
type profileLookup interface {
	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)
}

// RequireProfileRole exige que el perfil base del usuario tenga uno de los roles dados.
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 403 PROFILE_REQUIRED → el usuario aún no tiene perfil base.
//   - 403 FORBIDDEN        → el rol del perfil no está permitido.
func RequireProfileRole(profiles profileLookup, roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user not authenticated"})
		}
		p, err := profiles.GetProfile(c.UserContext(), userID)
		if err != nil {
			if domain.IsNotFound(err) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PROFILE_REQUIRED", Message: "create the user profile first"})
			}
			return writeError(c, err)
		}
		for _, r := range roles {
			if p.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "role '" + string(p.Role) + "' cannot perform this action",
		})
	}
}
