// Package memory implementa ProfileStore en memoria, para desarrollo local (STORE_BACKEND=memory) y tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/repository"
)

var _ repository.ProfileStore = (*ProfileStore)(nil)

// ProfileStore store en memoria con las mismas reglas que los backends reales:
// userId único en Users, un perfil de rol por userId, ausentes como ErrNotFound.
type ProfileStore struct {
	mu       sync.RWMutex
	users    map[string]entity.UserProfile
	vets     map[string]entity.VetProfile     // por userId
	shelters map[string]entity.ShelterProfile // por userId
	pets     map[string]entity.Pet            // por petId
	now      func() time.Time
}

// NewProfileStore crea un store vacío. now puede ser nil (reloj del sistema en UTC).
func NewProfileStore(now func() time.Time) *ProfileStore {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &ProfileStore{
		users:    make(map[string]entity.UserProfile),
		vets:     make(map[string]entity.VetProfile),
		shelters: make(map[string]entity.ShelterProfile),
		pets:     make(map[string]entity.Pet),
		now:      now,
	}
}

// GetUserProfile obtiene el perfil por userId.
func (s *ProfileStore) GetUserProfile(_ context.Context, userID string) (*entity.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, domain.NewNotFound("user profile not found")
	}
	return &u, nil
}

// CreateUserProfile sobrescribe el perfil completo (mismo comportamiento que PutItem).
func (s *ProfileStore) CreateUserProfile(_ context.Context, profile *entity.UserProfile) (*entity.UserProfile, error) {
	u := *profile
	u.StampCreated(s.now())
	s.mu.Lock()
	s.users[u.UserID] = u
	s.mu.Unlock()
	return &u, nil
}

// UpdateUserProfile aplica el merge patch y devuelve el registro resultante.
func (s *ProfileStore) UpdateUserProfile(_ context.Context, userID string, patch entity.UserProfilePatch) (*entity.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, domain.NewNotFound("user profile not found")
	}
	u = patch.ApplyTo(u, s.now())
	s.users[userID] = u
	return &u, nil
}

// GetVetProfile obtiene el perfil de vet por userId.
func (s *ProfileStore) GetVetProfile(_ context.Context, userID string) (*entity.VetProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vets[userID]
	if !ok {
		return nil, domain.NewNotFound("vet profile not found")
	}
	return &v, nil
}

// CreateVetProfile crea el perfil de vet; ErrConflict si el usuario ya tiene uno.
func (s *ProfileStore) CreateVetProfile(_ context.Context, vet *entity.VetProfile) (*entity.VetProfile, error) {
	v := *vet
	v.StampCreated(s.now())
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vets[v.UserID]; ok {
		return nil, domain.NewConflict("vet profile already exists")
	}
	s.vets[v.UserID] = v
	return &v, nil
}

// GetShelterProfile obtiene el perfil de refugio por userId.
func (s *ProfileStore) GetShelterProfile(_ context.Context, userID string) (*entity.ShelterProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sh, ok := s.shelters[userID]
	if !ok {
		return nil, domain.NewNotFound("shelter profile not found")
	}
	return &sh, nil
}

// CreateShelterProfile crea el perfil de refugio; ErrConflict si el usuario ya tiene uno.
func (s *ProfileStore) CreateShelterProfile(_ context.Context, shelter *entity.ShelterProfile) (*entity.ShelterProfile, error) {
	sh := *shelter
	sh.StampCreated(s.now())
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shelters[sh.UserID]; ok {
		return nil, domain.NewConflict("shelter profile already exists")
	}
	s.shelters[sh.UserID] = sh
	return &sh, nil
}

// GetPetsByOwner lista las mascotas del dueño, más recientes primero.
func (s *ProfileStore) GetPetsByOwner(_ context.Context, ownerID string) ([]*entity.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Pet, 0)
	for _, p := range s.pets {
		if p.OwnerID == ownerID {
			p := p
			list = append(list, &p)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].PetID < list[j].PetID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// CreatePet guarda la mascota.
func (s *ProfileStore) CreatePet(_ context.Context, pet *entity.Pet) (*entity.Pet, error) {
	p := *pet
	p.StampCreated(s.now())
	s.mu.Lock()
	s.pets[p.PetID] = p
	s.mu.Unlock()
	return &p, nil
}
