package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/ports"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/memory"
	pkgjwt "github.com/rutujaMandapmalvi3/Laika/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeIdentity struct {
	signUpCalls  int
	confirmCalls int
	resendCalls  int
	signInCalls  int
	signOutCalls int

	lastSignUp ports.SignUpInput
	signUpErr  error
	signInErr  error
	idToken    string
}

func (f *fakeIdentity) SignUp(_ context.Context, in ports.SignUpInput) error {
	f.signUpCalls++
	f.lastSignUp = in
	return f.signUpErr
}

func (f *fakeIdentity) ConfirmSignUp(context.Context, string, string) error {
	f.confirmCalls++
	return nil
}

func (f *fakeIdentity) ResendConfirmationCode(context.Context, string) error {
	f.resendCalls++
	return nil
}

func (f *fakeIdentity) SignIn(context.Context, string, string) (*ports.AuthResult, error) {
	f.signInCalls++
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &ports.AuthResult{IDToken: f.idToken, AccessToken: "access"}, nil
}

func (f *fakeIdentity) SignOut(context.Context) error {
	f.signOutCalls++
	return nil
}

func (f *fakeIdentity) GetCurrentUser(context.Context) (*ports.CurrentUser, error) {
	return &ports.CurrentUser{Username: "ana"}, nil
}

func (f *fakeIdentity) totalCalls() int {
	return f.signUpCalls + f.confirmCalls + f.resendCalls + f.signInCalls + f.signOutCalls
}

// countingStore envuelve el store en memoria contando llamadas y permitiendo inyectar errores.
type countingStore struct {
	*memory.ProfileStore
	calls map[string]int
	fail  map[string]error
}

func newCountingStore() *countingStore {
	return &countingStore{
		ProfileStore: memory.NewProfileStore(nil),
		calls:        map[string]int{},
		fail:         map[string]error{},
	}
}

func (s *countingStore) hit(op string) error {
	s.calls[op]++
	return s.fail[op]
}

func (s *countingStore) writes() int {
	return s.calls["CreateUserProfile"] + s.calls["CreateVetProfile"] + s.calls["CreateShelterProfile"] +
		s.calls["UpdateUserProfile"] + s.calls["CreatePet"]
}

func (s *countingStore) GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	if err := s.hit("GetUserProfile"); err != nil {
		return nil, err
	}
	return s.ProfileStore.GetUserProfile(ctx, userID)
}

func (s *countingStore) CreateUserProfile(ctx context.Context, p *entity.UserProfile) (*entity.UserProfile, error) {
	if err := s.hit("CreateUserProfile"); err != nil {
		return nil, err
	}
	return s.ProfileStore.CreateUserProfile(ctx, p)
}

func (s *countingStore) GetVetProfile(ctx context.Context, userID string) (*entity.VetProfile, error) {
	if err := s.hit("GetVetProfile"); err != nil {
		return nil, err
	}
	return s.ProfileStore.GetVetProfile(ctx, userID)
}

func (s *countingStore) CreateVetProfile(ctx context.Context, v *entity.VetProfile) (*entity.VetProfile, error) {
	if err := s.hit("CreateVetProfile"); err != nil {
		return nil, err
	}
	return s.ProfileStore.CreateVetProfile(ctx, v)
}

func (s *countingStore) GetShelterProfile(ctx context.Context, userID string) (*entity.ShelterProfile, error) {
	if err := s.hit("GetShelterProfile"); err != nil {
		return nil, err
	}
	return s.ProfileStore.GetShelterProfile(ctx, userID)
}

func (s *countingStore) CreateShelterProfile(ctx context.Context, sh *entity.ShelterProfile) (*entity.ShelterProfile, error) {
	if err := s.hit("CreateShelterProfile"); err != nil {
		return nil, err
	}
	return s.ProfileStore.CreateShelterProfile(ctx, sh)
}

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "7d3f0c9e-0000-4000-8000-000000000001"
	testEmail  = "ana@example.com"
)

func idTokenFor(t *testing.T, userID, email string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, userID, email, "ana", "laika-test", 60)
	require.NoError(t, err)
	return tok
}
