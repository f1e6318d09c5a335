package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/repository"
	"github.com/rutujaMandapmalvi3/Laika/pkg/config"
	"github.com/rutujaMandapmalvi3/Laika/pkg/logger"
)

var _ repository.ProfileStore = (*ProfileStore)(nil)

// ProfileStore acceso directo a las tablas Users, Vets, Shelters y Pets.
type ProfileStore struct {
	api    API
	tables config.TablesConfig
	log    *logger.Logger
	now    func() time.Time
}

// NewProfileStore crea el store. now puede ser nil (reloj del sistema en UTC).
func NewProfileStore(api API, tables config.TablesConfig, log *logger.Logger, now func() time.Time) *ProfileStore {
	if log == nil {
		log = logger.Nop()
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &ProfileStore{api: api, tables: tables, log: log.Component("dynamo"), now: now}
}

// GetUserProfile lee el perfil por clave primaria.
func (s *ProfileStore) GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tables.Users),
		Key:       map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: userID}},
	})
	if err != nil {
		return nil, remote("get user profile", err)
	}
	if len(out.Item) == 0 {
		return nil, domain.NewNotFound("user profile not found")
	}
	var u entity.UserProfile
	if err := unmarshalItem(out.Item, &u); err != nil {
		return nil, fmt.Errorf("decodificar perfil: %w", err)
	}
	return &u, nil
}

// CreateUserProfile escribe el perfil completo (PutItem sin condición: sobrescribe).
func (s *ProfileStore) CreateUserProfile(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error) {
	u := *profile
	u.StampCreated(s.now())
	if err := s.put(ctx, s.tables.Users, &u, ""); err != nil {
		return nil, remote("create user profile", err)
	}
	s.log.Debug().Str("user_id", u.UserID).Msg("perfil escrito")
	return &u, nil
}

// UpdateUserProfile hace SET solo de los campos del patch más updatedAt y
// devuelve el registro completo resultante (ALL_NEW).
func (s *ProfileStore) UpdateUserProfile(ctx context.Context, userID string, patch entity.UserProfilePatch) (*entity.UserProfile, error) {
	fields := patch.Fields(s.now())
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var upd expression.UpdateBuilder
	for _, name := range names {
		upd = upd.Set(expression.Name(name), expression.Value(fields[name]))
	}
	expr, err := expression.NewBuilder().
		WithUpdate(upd).
		WithCondition(expression.AttributeExists(expression.Name("userId"))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("construir update: %w", err)
	}

	out, err := s.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tables.Users),
		Key:                       map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: userID}},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, domain.NewNotFound("user profile not found")
		}
		return nil, remote("update user profile", err)
	}
	var u entity.UserProfile
	if err := unmarshalItem(out.Attributes, &u); err != nil {
		return nil, fmt.Errorf("decodificar perfil: %w", err)
	}
	return &u, nil
}

// GetVetProfile consulta UserIndex y devuelve el primer resultado.
func (s *ProfileStore) GetVetProfile(ctx context.Context, userID string) (*entity.VetProfile, error) {
	var vet entity.VetProfile
	found, err := s.firstByUser(ctx, s.tables.Vets, userID, &vet)
	if err != nil {
		return nil, remote("get vet profile", err)
	}
	if !found {
		return nil, domain.NewNotFound("vet profile not found")
	}
	return &vet, nil
}

// CreateVetProfile crea el perfil de vet; Conflict si el usuario ya tiene uno.
// La unicidad por userId se comprueba contra UserIndex antes de escribir.
func (s *ProfileStore) CreateVetProfile(ctx context.Context, vet *entity.VetProfile) (*entity.VetProfile, error) {
	var existing entity.VetProfile
	found, err := s.firstByUser(ctx, s.tables.Vets, vet.UserID, &existing)
	if err != nil {
		return nil, remote("create vet profile", err)
	}
	if found {
		return nil, domain.NewConflict("vet profile already exists")
	}
	v := *vet
	v.StampCreated(s.now())
	if err := s.put(ctx, s.tables.Vets, &v, "vetId"); err != nil {
		return nil, putError("create vet profile", "vet profile already exists", err)
	}
	return &v, nil
}

// GetShelterProfile consulta UserIndex y devuelve el primer resultado.
func (s *ProfileStore) GetShelterProfile(ctx context.Context, userID string) (*entity.ShelterProfile, error) {
	var sh entity.ShelterProfile
	found, err := s.firstByUser(ctx, s.tables.Shelters, userID, &sh)
	if err != nil {
		return nil, remote("get shelter profile", err)
	}
	if !found {
		return nil, domain.NewNotFound("shelter profile not found")
	}
	return &sh, nil
}

// CreateShelterProfile crea el perfil de refugio; Conflict si el usuario ya tiene uno.
func (s *ProfileStore) CreateShelterProfile(ctx context.Context, shelter *entity.ShelterProfile) (*entity.ShelterProfile, error) {
	var existing entity.ShelterProfile
	found, err := s.firstByUser(ctx, s.tables.Shelters, shelter.UserID, &existing)
	if err != nil {
		return nil, remote("create shelter profile", err)
	}
	if found {
		return nil, domain.NewConflict("shelter profile already exists")
	}
	sh := *shelter
	sh.StampCreated(s.now())
	if err := s.put(ctx, s.tables.Shelters, &sh, "shelterId"); err != nil {
		return nil, putError("create shelter profile", "shelter profile already exists", err)
	}
	return &sh, nil
}

// GetPetsByOwner recorre todas las páginas de OwnerIndex; más recientes primero.
func (s *ProfileStore) GetPetsByOwner(ctx context.Context, ownerID string) ([]*entity.Pet, error) {
	in, err := indexQuery(s.tables.Pets, "OwnerIndex", "ownerId", ownerID)
	if err != nil {
		return nil, err
	}
	pets := make([]*entity.Pet, 0)
	p := dynamodb.NewQueryPaginator(s.api, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, remote("get pets by owner", err)
		}
		for _, item := range page.Items {
			var pet entity.Pet
			if err := unmarshalItem(item, &pet); err != nil {
				return nil, fmt.Errorf("decodificar mascota: %w", err)
			}
			pets = append(pets, &pet)
		}
	}
	sort.SliceStable(pets, func(i, j int) bool { return pets[i].CreatedAt.After(pets[j].CreatedAt) })
	return pets, nil
}

// CreatePet guarda la mascota.
func (s *ProfileStore) CreatePet(ctx context.Context, pet *entity.Pet) (*entity.Pet, error) {
	p := *pet
	p.StampCreated(s.now())
	if err := s.put(ctx, s.tables.Pets, &p, "petId"); err != nil {
		return nil, putError("create pet", "pet already exists", err)
	}
	return &p, nil
}

// put escribe el item; si key no está vacío exige que la clave no exista.
func (s *ProfileStore) put(ctx context.Context, table string, v any, key string) error {
	item, err := marshalItem(v)
	if err != nil {
		return fmt.Errorf("codificar item: %w", err)
	}
	in := &dynamodb.PutItemInput{TableName: aws.String(table), Item: item}
	if key != "" {
		expr, err := expression.NewBuilder().
			WithCondition(expression.AttributeNotExists(expression.Name(key))).
			Build()
		if err != nil {
			return err
		}
		in.ConditionExpression = expr.Condition()
		in.ExpressionAttributeNames = expr.Names()
	}
	_, err = s.api.PutItem(ctx, in)
	return err
}

// firstByUser carga en out el primer item de UserIndex para userID.
func (s *ProfileStore) firstByUser(ctx context.Context, table, userID string, out any) (bool, error) {
	in, err := indexQuery(table, "UserIndex", "userId", userID)
	if err != nil {
		return false, err
	}
	in.Limit = aws.Int32(1)
	res, err := s.api.Query(ctx, in)
	if err != nil {
		return false, err
	}
	if len(res.Items) == 0 {
		return false, nil
	}
	if err := unmarshalItem(res.Items[0], out); err != nil {
		return false, fmt.Errorf("decodificar item: %w", err)
	}
	return true, nil
}

func indexQuery(table, index, attr, value string) (*dynamodb.QueryInput, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(attr).Equal(expression.Value(value))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("construir query: %w", err)
	}
	return &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, nil
}

func remote(op string, err error) error {
	return domain.Wrap(domain.KindRemote, op, err)
}

func putError(op, conflictMsg string, err error) error {
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return domain.NewConflict(conflictMsg)
	}
	return remote(op, err)
}
