package session

import (
	"sync"

	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
)

// State estado de sesión del proceso. No se persiste: tras reiniciar hay que volver a autenticar.
type State struct {
	IsAuthenticated   bool
	UserID            string
	Email             string
	Role              entity.Role
	NeedsProfileSetup bool
	UserProfile       *entity.UserProfile
	RoleProfile       entity.RoleProfile
}

// Store dueño explícito del estado de sesión. Solo cambia con ApplyLoginOutcome y Logout.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore crea el store en estado no autenticado.
func NewStore() *Store {
	return &Store{}
}

// ApplyLoginOutcome aplica el resultado del bootstrap.
// Con NeedsProfileSetup el rol y ambos perfiles quedan vacíos, venga lo que venga en el outcome.
func (s *Store) ApplyLoginOutcome(out entity.SessionOutcome) {
	next := State{
		IsAuthenticated:   out.IsAuthenticated,
		UserID:            out.UserID,
		Email:             out.Email,
		NeedsProfileSetup: out.NeedsProfileSetup,
	}
	if !out.NeedsProfileSetup {
		next.Role = out.Role
		next.UserProfile = out.UserProfile
		next.RoleProfile = out.RoleProfile
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}

// Logout vuelve al estado inicial.
func (s *Store) Logout() {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()
}

// Snapshot devuelve una copia del estado actual.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
