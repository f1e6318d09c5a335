package bootstrap

import (
	"context"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/dto"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
	"github.com/rutujaMandapmalvi3/Laika/pkg/jwt"
)

// Login autentica, busca el perfil y, según el rol, el perfil de vet o shelter.
//
// Si el perfil base no existe es el primer login tras el registro: se devuelve
// NeedsProfileSetup sin intentar leer perfil de rol (el rol aún no se conoce).
// El llamador aplica el resultado al store de sesión y navega con RouteForOutcome.
func (w *Workflow) Login(ctx context.Context, in dto.LoginRequest) (*entity.SessionOutcome, error) {
	if blank(in.Username) || in.Password == "" {
		return nil, domain.NewValidation("Please fill in all fields")
	}

	auth, err := w.identity.SignIn(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	// El token lo acaba de emitir el proveedor: se confía en él sin revalidar.
	claims, err := jwt.ParseUnverified(auth.IDToken)
	if err != nil {
		return nil, domain.Wrap(domain.KindAuthentication, "ID token inválido", err)
	}
	userID := claims.UserID()
	log := w.log.With().Str("user_id", userID).Logger()
	log.Debug().Msg("autenticación correcta")

	profile, err := w.profiles.GetUserProfile(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			log.Info().Msg("sin perfil, se requiere completar perfil")
			return &entity.SessionOutcome{
				IsAuthenticated:   true,
				UserID:            userID,
				Email:             claims.Email,
				NeedsProfileSetup: true,
			}, nil
		}
		return nil, err
	}

	var roleProfile entity.RoleProfile
	switch profile.Role {
	case entity.RoleVet:
		vet, err := w.profiles.GetVetProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		roleProfile = vet
	case entity.RoleShelter:
		shelter, err := w.profiles.GetShelterProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		roleProfile = shelter
	}

	email := claims.Email
	if email == "" {
		email = profile.Email
	}
	log.Info().Str("role", string(profile.Role)).Msg("perfil cargado")
	return &entity.SessionOutcome{
		IsAuthenticated: true,
		UserID:          userID,
		Email:           email,
		Role:            profile.Role,
		UserProfile:     profile,
		RoleProfile:     roleProfile,
	}, nil
}
