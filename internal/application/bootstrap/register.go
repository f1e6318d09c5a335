package bootstrap

import (
	"context"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/dto"
	"github.com/rutujaMandapmalvi3/Laika/internal/application/ports"
)

// Register valida el formulario y da de alta al usuario en el proveedor de identidad.
// Los errores de entrada se detectan aquí y nunca cuestan una llamada de red.
// Tras el alta el usuario debe confirmar el email (Confirm / Resend).
func (w *Workflow) Register(ctx context.Context, in dto.RegisterRequest) error {
	if err := validateRegister(in); err != nil {
		return err
	}
	err := w.identity.SignUp(ctx, ports.SignUpInput{
		Username:    in.Username,
		Password:    in.Password,
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
	})
	if err != nil {
		w.log.Warn().Err(err).Str("username", in.Username).Msg("registro rechazado")
		return err
	}
	w.log.Info().Str("username", in.Username).Msg("usuario registrado, pendiente de verificación")
	return nil
}
