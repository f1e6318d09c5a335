// Package profile casos de uso de la API de perfiles: cada operación actúa en nombre
// del usuario autenticado (sub del bearer token).
package profile

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/repository"
	"github.com/rutujaMandapmalvi3/Laika/pkg/logger"
)

// Service casos de uso de perfiles y mascotas.
type Service struct {
	store repository.ProfileStore
	log   *logger.Logger
	newID func() string
}

// NewService construye el servicio.
func NewService(store repository.ProfileStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{store: store, log: log.Component("profile"), newID: uuid.NewString}
}

// GetProfile perfil del usuario autenticado.
func (s *Service) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	return s.store.GetUserProfile(ctx, userID)
}

// CreateProfile escribe el perfil del usuario autenticado. userId siempre es el del
// token; el email del token se usa si el cuerpo no trae uno.
func (s *Service) CreateProfile(ctx context.Context, userID, email string, in entity.UserProfile) (*entity.UserProfile, error) {
	in.UserID = userID
	if in.Email == "" {
		in.Email = email
	}
	if !in.Role.Valid() {
		return nil, domain.NewValidation("role must be one of owner, vet, shelter")
	}
	if blank(in.FirstName) || blank(in.LastName) {
		return nil, domain.NewValidation("firstName and lastName are required")
	}
	out, err := s.store.CreateUserProfile(ctx, &in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("role", string(in.Role)).Msg("perfil creado")
	return out, nil
}

// UpdateProfile aplica el merge patch sobre el perfil del usuario autenticado.
func (s *Service) UpdateProfile(ctx context.Context, userID string, patch entity.UserProfilePatch) (*entity.UserProfile, error) {
	if patch.Empty() {
		return nil, domain.NewValidation("no fields to update")
	}
	return s.store.UpdateUserProfile(ctx, userID, patch)
}

// GetVetProfile perfil de vet de cualquier usuario (lectura pública entre usuarios autenticados).
func (s *Service) GetVetProfile(ctx context.Context, userID string) (*entity.VetProfile, error) {
	return s.store.GetVetProfile(ctx, userID)
}

// CreateVetProfile crea el perfil de vet del usuario autenticado.
func (s *Service) CreateVetProfile(ctx context.Context, userID string, in entity.VetProfile) (*entity.VetProfile, error) {
	in.UserID = userID
	if in.VetID == "" {
		in.VetID = "vet-" + s.newID()
	}
	if blank(in.ClinicName) || blank(in.LicenseNumber) {
		return nil, domain.NewValidation("clinicName and licenseNumber are required")
	}
	return s.store.CreateVetProfile(ctx, &in)
}

// GetShelterProfile perfil de refugio de cualquier usuario.
func (s *Service) GetShelterProfile(ctx context.Context, userID string) (*entity.ShelterProfile, error) {
	return s.store.GetShelterProfile(ctx, userID)
}

// CreateShelterProfile crea el perfil de refugio del usuario autenticado.
func (s *Service) CreateShelterProfile(ctx context.Context, userID string, in entity.ShelterProfile) (*entity.ShelterProfile, error) {
	in.UserID = userID
	if in.ShelterID == "" {
		in.ShelterID = "shelter-" + s.newID()
	}
	if blank(in.ShelterName) || in.Capacity <= 0 {
		return nil, domain.NewValidation("shelterName and a positive capacity are required")
	}
	return s.store.CreateShelterProfile(ctx, &in)
}

// ListPets mascotas de ownerID; vacío = las del usuario autenticado.
func (s *Service) ListPets(ctx context.Context, userID, ownerID string) ([]*entity.Pet, error) {
	if ownerID == "" {
		ownerID = userID
	}
	return s.store.GetPetsByOwner(ctx, ownerID)
}

// CreatePet registra una mascota a nombre del usuario autenticado; el ownerId del
// cuerpo se ignora. Con shelterId la mascota queda en el refugio del propio usuario,
// que debe tener perfil de refugio.
func (s *Service) CreatePet(ctx context.Context, userID string, in entity.Pet) (*entity.Pet, error) {
	in.OwnerID = userID
	if in.ShelterID != "" {
		shelter, err := s.store.GetShelterProfile(ctx, userID)
		if err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAuthentication("only shelters can register pets for a shelter")
			}
			return nil, err
		}
		in.ShelterID = shelter.ShelterID
	}
	if in.PetID == "" {
		in.PetID = s.newID()
	}
	if blank(in.Name) {
		return nil, domain.NewValidation("name is required")
	}
	if !entity.ValidSpecies(in.Species) {
		return nil, domain.NewValidation("species must be one of dog, cat, bird, rabbit, other")
	}
	return s.store.CreatePet(ctx, &in)
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
