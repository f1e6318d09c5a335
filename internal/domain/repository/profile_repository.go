package repository

import (
	"context"

	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
)

// ProfileStore puerto de acceso a perfiles y mascotas (DIP).
//
// Lo implementan el cliente HTTP de la API de perfiles, el cliente directo de
// DynamoDB y los stores del servidor (Postgres, memoria); el flujo de bootstrap
// no distingue entre ellos. Los ausentes se devuelven como domain.ErrNotFound
// (clasificado), nunca como (nil, nil).
type ProfileStore interface {
	GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error)
	CreateUserProfile(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error)
	// UpdateUserProfile aplica un merge patch y devuelve el registro tal como quedó en el store.
	UpdateUserProfile(ctx context.Context, userID string, patch entity.UserProfilePatch) (*entity.UserProfile, error)

	GetVetProfile(ctx context.Context, userID string) (*entity.VetProfile, error)
	CreateVetProfile(ctx context.Context, vet *entity.VetProfile) (*entity.VetProfile, error)

	GetShelterProfile(ctx context.Context, userID string) (*entity.ShelterProfile, error)
	CreateShelterProfile(ctx context.Context, shelter *entity.ShelterProfile) (*entity.ShelterProfile, error)

	GetPetsByOwner(ctx context.Context, ownerID string) ([]*entity.Pet, error)
	CreatePet(ctx context.Context, pet *entity.Pet) (*entity.Pet, error)
}
