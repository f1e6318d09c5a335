package dynamo_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/dynamo"
	"github.com/rutujaMandapmalvi3/Laika/pkg/config"
)

var testTables = config.TablesConfig{
	Users:    "Laika-Users",
	Pets:     "Laika-Pets",
	Shelters: "Laika-Shelters",
	Vets:     "Laika-Vets",
}

type stepClock struct{ t time.Time }

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newStore() (*dynamo.ProfileStore, *fakeAPI) {
	api := newFakeAPI(map[string]string{
		testTables.Users:    "userId",
		testTables.Pets:     "petId",
		testTables.Shelters: "shelterId",
		testTables.Vets:     "vetId",
	})
	clock := &stepClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	return dynamo.NewProfileStore(api, testTables, nil, clock.Now), api
}

func owner() *entity.UserProfile {
	return &entity.UserProfile{
		UserID:      "u-1",
		Email:       "ana@example.com",
		Role:        entity.RoleOwner,
		FirstName:   "Ana",
		LastName:    "Ruiz",
		PhoneNumber: "+15035550100",
		Address:     entity.Address{Street: "1 Main", City: "Portland", State: "OR", ZipCode: "97201", Country: "USA"},
	}
}

func TestGetUserProfile_Ausente(t *testing.T) {
	s, _ := newStore()
	_, err := s.GetUserProfile(context.Background(), "nadie")
	assert.True(t, domain.IsNotFound(err))
}

func TestCreateUserProfile_IdaYVuelta(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()

	created, err := s.CreateUserProfile(ctx, owner())
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	got, err := s.GetUserProfile(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, created.Address, got.Address)
	assert.Equal(t, entity.RoleOwner, got.Role)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestUpdateUserProfile_SoloBioYUpdatedAt(t *testing.T) {
	ctx := context.Background()
	s, api := newStore()
	before, err := s.CreateUserProfile(ctx, owner())
	require.NoError(t, err)

	bio := "x"
	after, err := s.UpdateUserProfile(ctx, "u-1", entity.UserProfilePatch{Bio: &bio})
	require.NoError(t, err)

	names := make([]string, 0)
	for _, n := range api.lastUpd.ExpressionAttributeNames {
		names = append(names, n)
	}
	sort.Strings(names)
	// userId solo aparece en la condición de existencia.
	assert.Equal(t, []string{"bio", "updatedAt", "userId"}, names)
	assert.Len(t, api.lastUpd.ExpressionAttributeValues, 2)
	assert.Equal(t, types.ReturnValueAllNew, api.lastUpd.ReturnValues)

	assert.Equal(t, "x", after.Bio)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	after.Bio, after.UpdatedAt = before.Bio, before.UpdatedAt
	assert.Equal(t, before.Address, after.Address)
	assert.Equal(t, before.FirstName, after.FirstName)
	assert.Equal(t, before.PhoneNumber, after.PhoneNumber)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
}

func TestUpdateUserProfile_Ausente(t *testing.T) {
	s, _ := newStore()
	bio := "x"
	_, err := s.UpdateUserProfile(context.Background(), "u-x", entity.UserProfilePatch{Bio: &bio})
	assert.True(t, domain.IsNotFound(err))
}

func TestVetProfile_DecimalesComoNumero(t *testing.T) {
	ctx := context.Background()
	s, api := newStore()

	_, err := s.CreateVetProfile(ctx, &entity.VetProfile{
		VetID:                 "vet-1",
		UserID:                "u-1",
		ClinicName:            "Happy Paws",
		PrimarySpecialization: "surgery",
		Fees: entity.VetFees{
			Consultation: decimal.NewFromInt(100),
			Emergency:    decimal.NewFromInt(200),
			Video:        decimal.RequireFromString("75.50"),
		},
	})
	require.NoError(t, err)

	raw := api.tables[testTables.Vets]["vet-1"]
	require.IsType(t, &types.AttributeValueMemberN{}, raw["rating"])
	fees := raw["fees"].(*types.AttributeValueMemberM).Value
	assert.Equal(t, &types.AttributeValueMemberN{Value: "75.5"}, fees["video"])

	got, err := s.GetVetProfile(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "vet-1", got.VetID)
	assert.True(t, got.Fees.Video.Equal(decimal.RequireFromString("75.5")))
	assert.True(t, got.Rating.IsZero())

	// La lectura no altera lo guardado.
	assert.IsType(t, &types.AttributeValueMemberN{}, api.tables[testTables.Vets]["vet-1"]["rating"])
}

func TestCreateVetProfile_UnoPorUsuario(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()

	_, err := s.CreateVetProfile(ctx, &entity.VetProfile{VetID: "vet-1", UserID: "u-1"})
	require.NoError(t, err)
	_, err = s.CreateVetProfile(ctx, &entity.VetProfile{VetID: "vet-2", UserID: "u-1"})
	assert.True(t, domain.IsConflict(err))
}

func TestGetShelterProfile_PorUserIndex(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()

	_, err := s.GetShelterProfile(ctx, "u-2")
	assert.True(t, domain.IsNotFound(err))

	_, err = s.CreateShelterProfile(ctx, &entity.ShelterProfile{ShelterID: "shelter-1", UserID: "u-2", Capacity: 30, IsVerified: true})
	require.NoError(t, err)

	got, err := s.GetShelterProfile(ctx, "u-2")
	require.NoError(t, err)
	assert.Equal(t, 30, got.Capacity)
	assert.False(t, got.IsVerified)
}

func TestGetPetsByOwner_MasRecientesPrimero(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()

	for _, p := range []*entity.Pet{
		{PetID: "p-1", OwnerID: "u-1", Name: "Laika", Species: entity.SpeciesDog, Weight: decimal.RequireFromString("6.2")},
		{PetID: "p-2", OwnerID: "u-1", Name: "Belka", Species: entity.SpeciesDog},
		{PetID: "p-3", OwnerID: "u-2", Name: "Strelka", Species: entity.SpeciesDog},
	} {
		_, err := s.CreatePet(ctx, p)
		require.NoError(t, err)
	}

	pets, err := s.GetPetsByOwner(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "p-2", pets[0].PetID)
	assert.True(t, pets[1].Weight.Equal(decimal.RequireFromString("6.2")))

	none, err := s.GetPetsByOwner(ctx, "u-9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreatePet_Duplicada(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()
	_, err := s.CreatePet(ctx, &entity.Pet{PetID: "p-1", OwnerID: "u-1"})
	require.NoError(t, err)
	_, err = s.CreatePet(ctx, &entity.Pet{PetID: "p-1", OwnerID: "u-1"})
	assert.True(t, domain.IsConflict(err))
}
