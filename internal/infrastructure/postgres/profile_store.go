package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/repository"
)

var _ repository.ProfileStore = (*ProfileStore)(nil)

// ProfileStore implementación de ProfileStore sobre PostgreSQL (backend alternativo de cmd/api).
type ProfileStore struct {
	q   Querier
	now func() time.Time
}

// NewProfileStore construye el store. Pasar pool o tx (Querier).
func NewProfileStore(q Querier) *ProfileStore {
	return &ProfileStore{q: q, now: func() time.Time { return time.Now().UTC() }}
}

// GetUserProfile obtiene el perfil por userId.
func (r *ProfileStore) GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var u entity.UserProfile
	err := r.q.QueryRow(ctx, `SELECT data FROM users WHERE user_id = $1`, userID).Scan(&u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("user profile not found")
		}
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return &u, nil
}

// CreateUserProfile escribe el perfil completo; si ya existía lo sobrescribe.
func (r *ProfileStore) CreateUserProfile(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error) {
	u := *profile
	u.StampCreated(r.now())
	query := `
		INSERT INTO users (user_id, email, role, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET email = EXCLUDED.email, role = EXCLUDED.role, data = EXCLUDED.data,
		    created_at = EXCLUDED.created_at, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, u.UserID, u.Email, string(u.Role), u, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert user profile: %w", err)
	}
	return &u, nil
}

// UpdateUserProfile mezcla los campos del patch en data (jsonb ||) y devuelve el resultado.
func (r *ProfileStore) UpdateUserProfile(ctx context.Context, userID string, patch entity.UserProfilePatch) (*entity.UserProfile, error) {
	now := r.now()
	query := `
		UPDATE users SET data = data || $2::jsonb, updated_at = $3
		WHERE user_id = $1
		RETURNING data`
	var u entity.UserProfile
	err := r.q.QueryRow(ctx, query, userID, patch.Fields(now), now).Scan(&u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("user profile not found")
		}
		return nil, fmt.Errorf("update user profile: %w", err)
	}
	return &u, nil
}

// GetVetProfile obtiene el perfil de vet por userId.
func (r *ProfileStore) GetVetProfile(ctx context.Context, userID string) (*entity.VetProfile, error) {
	var v entity.VetProfile
	err := r.q.QueryRow(ctx, `SELECT data FROM vets WHERE user_id = $1`, userID).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("vet profile not found")
		}
		return nil, fmt.Errorf("get vet profile: %w", err)
	}
	return &v, nil
}

// CreateVetProfile inserta el perfil; Conflict si el usuario ya tiene uno.
func (r *ProfileStore) CreateVetProfile(ctx context.Context, vet *entity.VetProfile) (*entity.VetProfile, error) {
	v := *vet
	v.StampCreated(r.now())
	query := `
		INSERT INTO vets (vet_id, user_id, primary_specialization, city, rating, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, v.VetID, v.UserID, v.PrimarySpecialization, v.City, v.Rating, v, v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Wrap(domain.KindConflict, "vet profile already exists", errors.New(constraintName(err)))
		}
		return nil, fmt.Errorf("insert vet profile: %w", err)
	}
	return &v, nil
}

// GetShelterProfile obtiene el perfil de refugio por userId.
func (r *ProfileStore) GetShelterProfile(ctx context.Context, userID string) (*entity.ShelterProfile, error) {
	var s entity.ShelterProfile
	err := r.q.QueryRow(ctx, `SELECT data FROM shelters WHERE user_id = $1`, userID).Scan(&s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("shelter profile not found")
		}
		return nil, fmt.Errorf("get shelter profile: %w", err)
	}
	return &s, nil
}

// CreateShelterProfile inserta el perfil; Conflict si el usuario ya tiene uno.
func (r *ProfileStore) CreateShelterProfile(ctx context.Context, shelter *entity.ShelterProfile) (*entity.ShelterProfile, error) {
	s := *shelter
	s.StampCreated(r.now())
	query := `
		INSERT INTO shelters (shelter_id, user_id, city, data, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, s.ShelterID, s.UserID, s.City, s, s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Wrap(domain.KindConflict, "shelter profile already exists", errors.New(constraintName(err)))
		}
		return nil, fmt.Errorf("insert shelter profile: %w", err)
	}
	return &s, nil
}

// GetPetsByOwner lista las mascotas del dueño, más recientes primero.
func (r *ProfileStore) GetPetsByOwner(ctx context.Context, ownerID string) ([]*entity.Pet, error) {
	rows, err := r.q.Query(ctx, `
		SELECT data FROM pets WHERE owner_id = $1
		ORDER BY created_at DESC, pet_id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	pets, err := pgx.CollectRows(rows, pgx.RowToAddrOf[entity.Pet])
	if err != nil {
		return nil, fmt.Errorf("scan pets: %w", err)
	}
	if pets == nil {
		pets = []*entity.Pet{}
	}
	return pets, nil
}

// CreatePet inserta la mascota.
func (r *ProfileStore) CreatePet(ctx context.Context, pet *entity.Pet) (*entity.Pet, error) {
	p := *pet
	p.StampCreated(r.now())
	var shelterID *string
	if p.ShelterID != "" {
		shelterID = &p.ShelterID
	}
	query := `
		INSERT INTO pets (pet_id, owner_id, shelter_id, data, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, p.PetID, p.OwnerID, shelterID, p, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflict("pet already exists")
		}
		return nil, fmt.Errorf("insert pet: %w", err)
	}
	return &p, nil
}
