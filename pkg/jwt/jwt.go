package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims subconjunto de los claims del ID token de Cognito que usa la app.
// Subject (sub) es el userId en todas las tablas.
type Claims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Username      string `json:"cognito:username"`
	TokenUse      string `json:"token_use"` // "id" | "access"
}

// UserID devuelve el sub del token.
func (c *Claims) UserID() string { return c.Subject }

// Expired indica si el token ya venció en el instante dado. Sin exp se considera vigente.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}

// Generate genera un ID token HS256 con la forma de los de Cognito.
// Se usa en desarrollo (API en modo hmac) y en tests; en producción los emite Cognito.
func Generate(secret, userID, email, username, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email:         email,
		EmailVerified: true,
		Username:      username,
		TokenUse:      "id",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma HS256 y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token sin sub")
	}
	return claims, nil
}

// ParseUnverified lee los claims sin verificar la firma. Solo es válido cuando la
// integridad ya la garantiza otro (el proveedor de identidad que acaba de emitir el
// token, o el authorizer JWT del API Gateway delante del servidor).
func ParseUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: token ilegible: %w", err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("jwt: token sin sub")
	}
	return claims, nil
}
