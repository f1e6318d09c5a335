package dynamo_test

import (
	"context"
	"regexp"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

// fakeAPI tablas en memoria con la semántica mínima que usa el store:
// clave primaria string, condiciones de existencia y queries de igualdad sobre un índice.
type fakeAPI struct {
	mu      sync.Mutex
	keys    map[string]string // tabla -> atributo clave
	tables  map[string]map[string]item
	lastUpd *dynamodb.UpdateItemInput
	created []*dynamodb.CreateTableInput
	exists  map[string]bool
}

func newFakeAPI(keys map[string]string) *fakeAPI {
	return &fakeAPI{keys: keys, tables: map[string]map[string]item{}, exists: map[string]bool{}}
}

func (f *fakeAPI) table(name string) map[string]item {
	if f.tables[name] == nil {
		f.tables[name] = map[string]item{}
	}
	return f.tables[name]
}

func keyValue(it item, attr string) string {
	if s, ok := it[attr].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeAPI) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.TableName)
	return &dynamodb.GetItemOutput{Item: copyItem(f.table(name)[keyValue(in.Key, f.keys[name])])}, nil
}

func (f *fakeAPI) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.TableName)
	k := keyValue(in.Item, f.keys[name])
	if in.ConditionExpression != nil {
		if _, ok := f.table(name)[k]; ok {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	}
	f.table(name)[k] = copyItem(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

var setClause = regexp.MustCompile(`(#\w+) = (:\w+)`)

func (f *fakeAPI) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpd = in
	name := aws.ToString(in.TableName)
	k := keyValue(in.Key, f.keys[name])
	cur, ok := f.table(name)[k]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	for _, m := range setClause.FindAllStringSubmatch(aws.ToString(in.UpdateExpression), -1) {
		cur[in.ExpressionAttributeNames[m[1]]] = in.ExpressionAttributeValues[m[2]]
	}
	return &dynamodb.UpdateItemOutput{Attributes: copyItem(cur)}, nil
}

func (f *fakeAPI) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var attr, value string
	for _, n := range in.ExpressionAttributeNames {
		attr = n
	}
	for _, v := range in.ExpressionAttributeValues {
		value = v.(*types.AttributeValueMemberS).Value
	}
	out := &dynamodb.QueryOutput{}
	for _, it := range f.table(aws.ToString(in.TableName)) {
		if keyValue(it, attr) == value {
			out.Items = append(out.Items, copyItem(it))
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.TableName)
	if f.exists[name] {
		return nil, &types.ResourceInUseException{Message: aws.String("Table already exists: " + name)}
	}
	f.exists[name] = true
	f.created = append(f.created, in)
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeAPI) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

// copyItem copia superficial; el codec no muta los mapas anidados.
func copyItem(it item) item {
	if it == nil {
		return nil
	}
	out := make(item, len(it))
	for k, v := range it {
		out[k] = v
	}
	return out
}
