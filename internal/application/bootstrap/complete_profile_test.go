package bootstrap_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/bootstrap"
	"github.com/rutujaMandapmalvi3/Laika/internal/application/dto"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
)

func newCompleteFixture() (*bootstrap.Workflow, *countingStore) {
	store := newCountingStore()
	wf := bootstrap.NewWorkflow(&fakeIdentity{}, nil, store, nil,
		bootstrap.WithIDGenerator(func() string { return "0001" }))
	return wf, store
}

func commonFields(role entity.Role) dto.CompleteProfileRequest {
	return dto.CompleteProfileRequest{
		UserID:    testUserID,
		Email:     testEmail,
		Role:      role,
		FirstName: "Ana",
		LastName:  "Ruiz",
		Address:   entity.Address{City: "Portland", State: "OR", Country: "USA"},
	}
}

// Owner con solo campos comunes: una única escritura (UserProfile).
func TestCompleteProfile_OwnerUnaEscritura(t *testing.T) {
	wf, store := newCompleteFixture()

	res, err := wf.CompleteProfile(context.Background(), commonFields(entity.RoleOwner))
	require.NoError(t, err)

	assert.Equal(t, bootstrap.RouteOwnerDashboard, res.Route)
	assert.Equal(t, 1, store.writes())
	assert.Equal(t, 1, store.calls["CreateUserProfile"])
	assert.Nil(t, res.Outcome.RoleProfile)
	assert.Equal(t, entity.RoleOwner, res.Outcome.UserProfile.Role)
	assert.True(t, res.Outcome.UserProfile.IsActive)
}

// Vet sin licenseNumber: ValidationError y cero escrituras.
func TestCompleteProfile_VetSinLicencia(t *testing.T) {
	wf, store := newCompleteFixture()
	in := commonFields(entity.RoleVet)
	in.PhoneNumber = "+15035550100"
	in.Vet = dto.VetFields{ClinicName: "Happy Paws"}

	res, err := wf.CompleteProfile(context.Background(), in)
	assert.Nil(t, res)
	assert.True(t, domain.IsValidation(err))
	assert.Zero(t, store.writes())
}

func TestCompleteProfile_VetCreaAmbosPerfiles(t *testing.T) {
	wf, store := newCompleteFixture()
	in := commonFields(entity.RoleVet)
	in.PhoneNumber = "+15035550100"
	in.Vet = dto.VetFields{
		ClinicName:        "Happy Paws",
		LicenseNumber:     "OR-1234",
		Specializations:   []string{" surgery", "dentistry ", ""},
		YearsOfExperience: 7,
	}

	res, err := wf.CompleteProfile(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, bootstrap.RouteVetDashboard, res.Route)
	assert.Equal(t, 2, store.writes())

	vet, ok := res.Outcome.RoleProfile.(*entity.VetProfile)
	require.True(t, ok)
	assert.Equal(t, "vet-0001", vet.VetID)
	assert.Equal(t, testUserID, vet.UserID)
	assert.Equal(t, "Dr. Ana Ruiz", vet.DoctorName)
	assert.Equal(t, []string{"surgery", "dentistry"}, vet.Specializations)
	assert.Equal(t, "surgery", vet.PrimarySpecialization)
	assert.Equal(t, entity.FlagYes, vet.IsAcceptingNewPatients)
	assert.True(t, vet.Fees.Consultation.Equal(decimal.NewFromInt(100)))
	assert.True(t, vet.Rating.IsZero())
	assert.Equal(t, "Portland", vet.City)

	stored, err := store.ProfileStore.GetVetProfile(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, vet.VetID, stored.VetID)
}

func TestCompleteProfile_VetSinEspecialidadEsGeneral(t *testing.T) {
	wf, _ := newCompleteFixture()
	in := commonFields(entity.RoleVet)
	in.PhoneNumber = "+15035550100"
	in.Vet = dto.VetFields{ClinicName: "Happy Paws", LicenseNumber: "OR-1234"}

	res, err := wf.CompleteProfile(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "general", res.Outcome.RoleProfile.(*entity.VetProfile).PrimarySpecialization)
}

func TestCompleteProfile_Shelter(t *testing.T) {
	wf, store := newCompleteFixture()
	in := commonFields(entity.RoleShelter)
	in.PhoneNumber = "+15035550100"
	in.Shelter = dto.ShelterFields{ShelterName: "Safe Haven", Capacity: 30, RegistrationNumber: "R-9"}

	res, err := wf.CompleteProfile(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, bootstrap.RouteShelterDashboard, res.Route)
	assert.Equal(t, 1, store.calls["CreateShelterProfile"])

	sh := res.Outcome.RoleProfile.(*entity.ShelterProfile)
	assert.Equal(t, "shelter-0001", sh.ShelterID)
	assert.Equal(t, 30, sh.Capacity)
	assert.Equal(t, entity.FlagYes, sh.HasAvailableCapacity)
	assert.False(t, sh.IsVerified)
	assert.Equal(t, "OR", sh.State)
}

func TestCompleteProfile_ShelterSinCapacidad(t *testing.T) {
	wf, store := newCompleteFixture()
	in := commonFields(entity.RoleShelter)
	in.PhoneNumber = "+15035550100"
	in.Shelter = dto.ShelterFields{ShelterName: "Safe Haven"}

	_, err := wf.CompleteProfile(context.Background(), in)
	assert.True(t, domain.IsValidation(err))
	assert.Zero(t, store.writes())
}

func TestCompleteProfile_ComunesRequeridos(t *testing.T) {
	wf, store := newCompleteFixture()
	in := commonFields(entity.RoleOwner)
	in.Address.State = ""

	_, err := wf.CompleteProfile(context.Background(), in)
	assert.True(t, domain.IsValidation(err))

	in = commonFields("admin")
	_, err = wf.CompleteProfile(context.Background(), in)
	assert.True(t, domain.IsValidation(err))
	assert.Zero(t, store.writes())
}

func TestCompleteProfile_SinSesion(t *testing.T) {
	wf, store := newCompleteFixture()
	in := commonFields(entity.RoleOwner)
	in.UserID = ""

	_, err := wf.CompleteProfile(context.Background(), in)
	assert.True(t, domain.IsAuthentication(err))
	assert.Zero(t, store.writes())
}

// Falla la segunda escritura: queda el UserProfile y el error llega al llamador.
func TestCompleteProfile_FallaPerfilDeRol(t *testing.T) {
	wf, store := newCompleteFixture()
	boom := errors.New("ProvisionedThroughputExceeded")
	store.fail["CreateVetProfile"] = boom
	in := commonFields(entity.RoleVet)
	in.PhoneNumber = "+15035550100"
	in.Vet = dto.VetFields{ClinicName: "Happy Paws", LicenseNumber: "OR-1234"}

	res, err := wf.CompleteProfile(context.Background(), in)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)

	_, getErr := store.ProfileStore.GetUserProfile(context.Background(), testUserID)
	assert.NoError(t, getErr, "el perfil base queda escrito")

	// Reintento del usuario: el overwrite del perfil base es idempotente.
	delete(store.fail, "CreateVetProfile")
	res, err = wf.CompleteProfile(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, bootstrap.RouteVetDashboard, res.Route)
}
