// Package bootstrap orquesta el alta y el inicio de sesión: proveedor de identidad,
// perfiles y el resultado que el llamador aplica al store de sesión.
//
// Todas las llamadas externas se hacen en secuencia y sin reintentos; cualquier fallo
// llega al llamador clasificado (domain.Kind) para mostrarlo al usuario.
package bootstrap

import (
	"context"

	"github.com/google/uuid"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/ports"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/repository"
	"github.com/rutujaMandapmalvi3/Laika/pkg/logger"
)

// Workflow casos de uso de bootstrap de identidad.
type Workflow struct {
	identity ports.IdentityProvider
	profiles repository.ProfileStore // lecturas en login (API HTTP)
	direct   repository.ProfileStore // escrituras de onboarding (DynamoDB directo)
	log      *logger.Logger
	newID    func() string
}

// Option configura el Workflow.
type Option func(*Workflow)

// WithIDGenerator fija el generador de ids de vetId/shelterId (tests).
func WithIDGenerator(gen func() string) Option {
	return func(w *Workflow) { w.newID = gen }
}

// NewWorkflow construye el workflow. profiles se usa para leer en login y direct para
// escribir al completar el perfil; pueden ser el mismo store.
func NewWorkflow(identity ports.IdentityProvider, profiles, direct repository.ProfileStore, log *logger.Logger, opts ...Option) *Workflow {
	if log == nil {
		log = logger.Nop()
	}
	w := &Workflow{
		identity: identity,
		profiles: profiles,
		direct:   direct,
		log:      log.Component("bootstrap"),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Confirm confirma el registro con el código enviado por email.
func (w *Workflow) Confirm(ctx context.Context, username, code string) error {
	if blank(username) || blank(code) {
		return domain.NewValidation("Please enter verification code")
	}
	return w.identity.ConfirmSignUp(ctx, username, code)
}

// Resend reenvía el código de verificación.
func (w *Workflow) Resend(ctx context.Context, username string) error {
	if blank(username) {
		return domain.NewValidation("username is required")
	}
	return w.identity.ResendConfirmationCode(ctx, username)
}

// Logout cierra la sesión en el proveedor. El llamador reinicia el store de sesión.
func (w *Workflow) Logout(ctx context.Context) error {
	if err := w.identity.SignOut(ctx); err != nil {
		return err
	}
	w.log.Info().Msg("sesión cerrada")
	return nil
}

// CurrentUser devuelve el usuario de la sesión activa del proveedor.
func (w *Workflow) CurrentUser(ctx context.Context) (*ports.CurrentUser, error) {
	return w.identity.GetCurrentUser(ctx)
}
