package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/dto"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
)

// ProfileCompletion resultado de completar el perfil: destino y sesión lista para aplicar.
type ProfileCompletion struct {
	Route   Route
	Outcome entity.SessionOutcome
}

// CompleteProfile crea el UserProfile y después, si el rol lo requiere, el perfil de vet o shelter.
//
// Las dos escrituras no son transaccionales. Si falla la segunda queda un UserProfile sin
// perfil de rol; el error se devuelve y el usuario puede reintentar, porque la escritura
// del UserProfile es un overwrite completo.
func (w *Workflow) CompleteProfile(ctx context.Context, in dto.CompleteProfileRequest) (*ProfileCompletion, error) {
	if blank(in.UserID) {
		return nil, domain.ErrNoSession
	}
	if err := validateCompleteProfile(in); err != nil {
		return nil, err
	}
	log := w.log.With().Str("user_id", in.UserID).Str("role", string(in.Role)).Logger()

	user, err := w.direct.CreateUserProfile(ctx, &entity.UserProfile{
		UserID:      in.UserID,
		Email:       in.Email,
		Role:        in.Role,
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Msg("perfil base creado")

	var roleProfile entity.RoleProfile
	switch in.Role {
	case entity.RoleVet:
		vet, err := w.direct.CreateVetProfile(ctx, w.newVetProfile(in))
		if err != nil {
			log.Warn().Err(err).Msg("perfil base sin perfil de vet")
			return nil, fmt.Errorf("crear perfil de vet: %w", err)
		}
		roleProfile = vet
	case entity.RoleShelter:
		shelter, err := w.direct.CreateShelterProfile(ctx, w.newShelterProfile(in))
		if err != nil {
			log.Warn().Err(err).Msg("perfil base sin perfil de shelter")
			return nil, fmt.Errorf("crear perfil de shelter: %w", err)
		}
		roleProfile = shelter
	}
	if roleProfile != nil {
		log.Info().Msg("perfil de rol creado")
	}

	return &ProfileCompletion{
		Route: RouteForRole(in.Role),
		Outcome: entity.SessionOutcome{
			IsAuthenticated: true,
			UserID:          in.UserID,
			Email:           in.Email,
			Role:            in.Role,
			UserProfile:     user,
			RoleProfile:     roleProfile,
		},
	}, nil
}

func weekdayHours(weekday, saturday string) map[string]string {
	return map[string]string{
		"monday":    weekday,
		"tuesday":   weekday,
		"wednesday": weekday,
		"thursday":  weekday,
		"friday":    weekday,
		"saturday":  saturday,
		"sunday":    "Closed",
	}
}

func (w *Workflow) newVetProfile(in dto.CompleteProfileRequest) *entity.VetProfile {
	specs := make([]string, 0, len(in.Vet.Specializations))
	for _, s := range in.Vet.Specializations {
		if s = strings.TrimSpace(s); s != "" {
			specs = append(specs, s)
		}
	}
	primary := "general"
	if len(specs) > 0 {
		primary = specs[0]
	}
	return &entity.VetProfile{
		VetID:                  "vet-" + w.newID(),
		UserID:                 in.UserID,
		ClinicName:             in.Vet.ClinicName,
		DoctorName:             fmt.Sprintf("Dr. %s %s", strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)),
		LicenseNumber:          in.Vet.LicenseNumber,
		Credentials:            []string{},
		Specializations:        specs,
		PrimarySpecialization:  primary,
		YearsOfExperience:      in.Vet.YearsOfExperience,
		PhoneNumber:            in.PhoneNumber,
		Email:                  in.Email,
		Address:                in.Address,
		City:                   in.Address.City,
		State:                  in.Address.State,
		ConsultationTypes:      []string{"in-person", "video"},
		OperatingHours:         weekdayHours("9:00 AM - 5:00 PM", "Closed"),
		Languages:              []string{"English"},
		AcceptedInsurance:      []string{},
		Fees: entity.VetFees{
			Consultation: decimal.NewFromInt(100),
			Emergency:    decimal.NewFromInt(200),
			Video:        decimal.NewFromInt(75),
		},
		IsAcceptingNewPatients: entity.FlagYes,
		Photos:                 []string{},
		Certifications:         []string{},
	}
}

func (w *Workflow) newShelterProfile(in dto.CompleteProfileRequest) *entity.ShelterProfile {
	return &entity.ShelterProfile{
		ShelterID:            "shelter-" + w.newID(),
		UserID:               in.UserID,
		ShelterName:          in.Shelter.ShelterName,
		PhoneNumber:          in.PhoneNumber,
		Email:                in.Email,
		Address:              in.Address,
		Capacity:             in.Shelter.Capacity,
		CurrentOccupancy:     0,
		HasAvailableCapacity: entity.FlagYes,
		AnimalTypes:          []string{"dogs", "cats"},
		Services:             []string{"adoption", "rescue"},
		OperatingHours:       weekdayHours("10:00 AM - 6:00 PM", "10:00 AM - 4:00 PM"),
		RegistrationNumber:   in.Shelter.RegistrationNumber,
		Photos:               []string{},
		City:                 in.Address.City,
		State:                in.Address.State,
	}
}
