package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/dto"
	"github.com/rutujaMandapmalvi3/Laika/pkg/jwt"
)

// Locals keys para UserID y Email en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

// TokenVerifier valida el bearer token y devuelve sus claims.
type TokenVerifier func(token string) (*jwt.Claims, error)

// HMACVerifier verifica firma HS256 y expiración (desarrollo y tests).
func HMACVerifier(secret string) TokenVerifier {
	return func(token string) (*jwt.Claims, error) {
		return jwt.Parse(secret, token)
	}
}

// GatewayVerifier confía en la firma (ya validada por el authorizer JWT del API Gateway)
// y solo comprueba sub y expiración.
func GatewayVerifier(now func() time.Time) TokenVerifier {
	if now == nil {
		now = time.Now
	}
	return func(token string) (*jwt.Claims, error) {
		claims, err := jwt.ParseUnverified(token)
		if err != nil {
			return nil, err
		}
		if claims.Expired(now()) {
			return nil, errExpired
		}
		return claims, nil
	}
}

var errExpired = errors.New("token expirado")

// AuthMiddleware valida el Bearer Token y deja UserID (sub) y Email en c.Locals.
func AuthMiddleware(verify TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		claims, err := verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, claims.UserID())
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetEmail devuelve el email del token.
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}
