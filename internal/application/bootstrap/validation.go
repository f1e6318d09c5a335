package bootstrap

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/dto"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
)

// MinPasswordLength longitud mínima de contraseña (en caracteres) aceptada antes de llamar al proveedor.
const MinPasswordLength = 8

var phonePattern = regexp.MustCompile(`^\+[0-9]+$`)

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func validateRegister(in dto.RegisterRequest) error {
	if blank(in.Email) || in.Password == "" || blank(in.FirstName) || blank(in.LastName) ||
		blank(in.PhoneNumber) || blank(in.Username) {
		return domain.NewValidation("Please fill in all required fields")
	}
	if in.Password != in.ConfirmPassword {
		return domain.NewValidation("Passwords do not match")
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return domain.NewValidation("Password must be at least 8 characters")
	}
	if !phonePattern.MatchString(in.PhoneNumber) {
		return domain.NewValidation("Phone number must start with + and country code (e.g., +1234567890)")
	}
	return nil
}

func validateCompleteProfile(in dto.CompleteProfileRequest) error {
	if !in.Role.Valid() {
		return domain.NewValidation("role must be one of owner, vet, shelter")
	}
	if blank(in.FirstName) || blank(in.LastName) || blank(in.Address.City) || blank(in.Address.State) {
		return domain.NewValidation("Please fill in all required fields")
	}
	switch in.Role {
	case entity.RoleVet:
		if blank(in.Vet.ClinicName) || blank(in.Vet.LicenseNumber) || blank(in.PhoneNumber) {
			return domain.NewValidation("Please fill in all vet information")
		}
	case entity.RoleShelter:
		if blank(in.Shelter.ShelterName) || in.Shelter.Capacity <= 0 || blank(in.PhoneNumber) {
			return domain.NewValidation("Please fill in all shelter information")
		}
	}
	return nil
}
