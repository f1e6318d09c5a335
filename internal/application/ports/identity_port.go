package ports

import (
	"context"
	"time"
)

// SignUpInput datos que se envían al proveedor de identidad al registrarse.
type SignUpInput struct {
	Username    string
	Password    string
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string // E.164
}

// AuthResult tokens emitidos tras un inicio de sesión correcto.
type AuthResult struct {
	IDToken      string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// CurrentUser usuario de la sesión activa con sus atributos (email, given_name, ...).
type CurrentUser struct {
	Username   string
	Attributes map[string]string
}

// IdentityProvider define el puerto de salida hacia el proveedor de identidad gestionado.
// El flujo de bootstrap solo conoce este contrato; el adaptador concreto (Cognito, fake)
// traduce los rechazos del proveedor a errores de dominio clasificados:
// SignIn -> KindAuthentication, SignUp -> KindRegistration, resto -> KindRemote.
type IdentityProvider interface {
	SignUp(ctx context.Context, in SignUpInput) error
	ConfirmSignUp(ctx context.Context, username, code string) error
	ResendConfirmationCode(ctx context.Context, username string) error
	SignIn(ctx context.Context, username, password string) (*AuthResult, error)
	// SignOut cierra la sesión local; sin sesión activa no hace nada.
	SignOut(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (*CurrentUser, error)
}

// TokenSource entrega el ID token vigente para firmar llamadas a la API de perfiles.
// Sin sesión devuelve domain.ErrNoSession; con token vencido, domain.ErrSessionExpired.
type TokenSource interface {
	IDToken(ctx context.Context) (string, error)
}
