package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/rutujaMandapmalvi3/Laika/pkg/config"
	"github.com/rutujaMandapmalvi3/Laika/pkg/logger"
)

// KeyAttr atributo de clave (partition o sort).
type KeyAttr struct {
	Name string
	Type types.ScalarAttributeType
}

// IndexDef índice global secundario con proyección ALL.
type IndexDef struct {
	Name string
	PK   KeyAttr
	SK   *KeyAttr
}

// TableDef tabla on-demand (PAY_PER_REQUEST).
type TableDef struct {
	Name    string
	PK      KeyAttr
	SK      *KeyAttr
	Indexes []IndexDef
}

func str(name string) KeyAttr  { return KeyAttr{Name: name, Type: types.ScalarAttributeTypeS} }
func sstr(name string) *KeyAttr { k := str(name); return &k }

// Schema devuelve las siete tablas de Laika con sus índices.
func Schema(t config.TablesConfig) []TableDef {
	return []TableDef{
		{Name: t.Users, PK: str("userId"), Indexes: []IndexDef{
			{Name: "EmailIndex", PK: str("email")},
		}},
		{Name: t.Pets, PK: str("petId"), Indexes: []IndexDef{
			{Name: "OwnerIndex", PK: str("ownerId")},
			{Name: "ShelterIndex", PK: str("shelterId")},
			{Name: "AdoptionStatusIndex", PK: str("isAvailableForAdoption"), SK: sstr("createdAt")},
		}},
		{Name: t.Appointments, PK: str("appointmentId"), Indexes: []IndexDef{
			{Name: "PetIndex", PK: str("petId"), SK: sstr("scheduledAt")},
			{Name: "VetIndex", PK: str("vetId"), SK: sstr("scheduledAt")},
			{Name: "OwnerIndex", PK: str("ownerId"), SK: sstr("scheduledAt")},
		}},
		{Name: t.MedicalRecords, PK: str("recordId"), Indexes: []IndexDef{
			{Name: "PetIndex", PK: str("petId"), SK: sstr("createdAt")},
		}},
		{Name: t.Messages, PK: str("conversationId"), SK: sstr("timestamp"), Indexes: []IndexDef{
			{Name: "UserIndex", PK: str("userId"), SK: sstr("timestamp")},
		}},
		{Name: t.Shelters, PK: str("shelterId"), Indexes: []IndexDef{
			{Name: "LocationIndex", PK: str("city"), SK: sstr("state")},
			{Name: "CapacityIndex", PK: str("hasAvailableCapacity"), SK: sstr("city")},
			{Name: "UserIndex", PK: str("userId")},
		}},
		{Name: t.Vets, PK: str("vetId"), Indexes: []IndexDef{
			{Name: "LocationIndex", PK: str("city"), SK: sstr("state")},
			{Name: "SpecializationIndex", PK: str("primarySpecialization"), SK: &KeyAttr{Name: "rating", Type: types.ScalarAttributeTypeN}},
			{Name: "AvailabilityIndex", PK: str("isAcceptingNewPatients"), SK: sstr("city")},
			{Name: "UserIndex", PK: str("userId")},
		}},
	}
}

// CreateTableInput traduce la definición a la petición del SDK.
func (d TableDef) CreateTableInput() *dynamodb.CreateTableInput {
	seen := map[string]bool{}
	var attrs []types.AttributeDefinition
	define := func(k KeyAttr) {
		if seen[k.Name] {
			return
		}
		seen[k.Name] = true
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(k.Name), AttributeType: k.Type})
	}

	keySchema := func(pk KeyAttr, sk *KeyAttr) []types.KeySchemaElement {
		define(pk)
		ks := []types.KeySchemaElement{{AttributeName: aws.String(pk.Name), KeyType: types.KeyTypeHash}}
		if sk != nil {
			define(*sk)
			ks = append(ks, types.KeySchemaElement{AttributeName: aws.String(sk.Name), KeyType: types.KeyTypeRange})
		}
		return ks
	}

	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(d.Name),
		KeySchema:   keySchema(d.PK, d.SK),
		BillingMode: types.BillingModePayPerRequest,
	}
	for _, idx := range d.Indexes {
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.Name),
			KeySchema:  keySchema(idx.PK, idx.SK),
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	in.AttributeDefinitions = attrs
	return in
}

// CreateTables crea las tablas que falten y espera a que estén activas.
// Las existentes se dejan como están.
func CreateTables(ctx context.Context, api API, defs []TableDef, wait time.Duration, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	for _, d := range defs {
		_, err := api.CreateTable(ctx, d.CreateTableInput())
		var inUse *types.ResourceInUseException
		switch {
		case errors.As(err, &inUse):
			log.Info().Str("table", d.Name).Msg("la tabla ya existe")
			continue
		case err != nil:
			return fmt.Errorf("crear tabla %s: %w", d.Name, err)
		}
		log.Info().Str("table", d.Name).Int("indexes", len(d.Indexes)).Msg("tabla creada")

		if wait <= 0 {
			continue
		}
		w := dynamodb.NewTableExistsWaiter(api)
		if err := w.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(d.Name)}, wait); err != nil {
			return fmt.Errorf("esperar tabla %s: %w", d.Name, err)
		}
	}
	return nil
}
