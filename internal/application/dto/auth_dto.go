package dto

import "github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"

// RegisterRequest datos del formulario de registro.
type RegisterRequest struct {
	Email           string      `json:"email"`
	Username        string      `json:"username"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirmPassword"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	PhoneNumber     string      `json:"phoneNumber"`
	Role            entity.Role `json:"role,omitempty"` // informativo; el rol se fija al completar el perfil
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// VetFields datos propios del rol vet.
type VetFields struct {
	ClinicName        string   `json:"clinicName"`
	LicenseNumber     string   `json:"licenseNumber"`
	Specializations   []string `json:"specializations"`
	YearsOfExperience int      `json:"yearsOfExperience"`
}

// ShelterFields datos propios del rol shelter.
type ShelterFields struct {
	ShelterName        string `json:"shelterName"`
	Capacity           int    `json:"capacity"`
	RegistrationNumber string `json:"registrationNumber"`
}

// CompleteProfileRequest datos del formulario de perfil. UserID y Email vienen de la sesión.
type CompleteProfileRequest struct {
	UserID      string         `json:"userId"`
	Email       string         `json:"email"`
	Role        entity.Role    `json:"role"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	PhoneNumber string         `json:"phoneNumber"`
	Address     entity.Address `json:"address"`
	Vet         VetFields      `json:"vet"`
	Shelter     ShelterFields  `json:"shelter"`
}
