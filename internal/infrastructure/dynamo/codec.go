package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Atributos decimales (tarifas, rating, peso). decimal.Decimal se codifica como texto;
// en la tabla se guardan como N para que SpecializationIndex ordene por rating.
var numericAttrs = []string{"rating", "fees", "weight"}

func marshalItem(v any) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMapWithOptions(v, func(o *attributevalue.EncoderOptions) {
		o.UseEncodingMarshalers = true
	})
	if err != nil {
		return nil, err
	}
	for _, name := range numericAttrs {
		if av, ok := item[name]; ok {
			item[name] = textToNumber(av)
		}
	}
	return item, nil
}

func unmarshalItem(item map[string]types.AttributeValue, out any) error {
	decoded := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		decoded[k] = v
	}
	for _, name := range numericAttrs {
		if av, ok := decoded[name]; ok {
			decoded[name] = numberToText(av)
		}
	}
	return attributevalue.UnmarshalMapWithOptions(decoded, out, func(o *attributevalue.DecoderOptions) {
		o.UseEncodingUnmarshalers = true
	})
}

func textToNumber(av types.AttributeValue) types.AttributeValue {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return &types.AttributeValueMemberN{Value: v.Value}
	case *types.AttributeValueMemberM:
		m := make(map[string]types.AttributeValue, len(v.Value))
		for k, c := range v.Value {
			m[k] = textToNumber(c)
		}
		return &types.AttributeValueMemberM{Value: m}
	}
	return av
}

func numberToText(av types.AttributeValue) types.AttributeValue {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		return &types.AttributeValueMemberS{Value: v.Value}
	case *types.AttributeValueMemberM:
		m := make(map[string]types.AttributeValue, len(v.Value))
		for k, c := range v.Value {
			m[k] = numberToText(c)
		}
		return &types.AttributeValueMemberM{Value: m}
	}
	return av
}
