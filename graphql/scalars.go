package graphql

import (
	"time"

	"github.com/datagrid/datagrid-apis/types"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"gopkg.in/inf.v0"
)

const dateLayout = "2006-01-02"

var decimal = graphql.NewScalar(graphql.ScalarConfig{
	Name:         "Decimal",
	Description:  "The `Decimal` scalar type represents an arbitrary precision decimal as a string.",
	Serialize:    types.ToJSONValue,
	ParseValue:   parseString(parseDecimal),
	ParseLiteral: parseStringLiteral(parseDecimal),
})

var timestamp = graphql.NewScalar(graphql.ScalarConfig{
	Name: "Timestamp",
	Description: "The `Timestamp` scalar type represents a point in time as an RFC 3339 string." +
		" A plain date (YYYY-MM-DD) is read as midnight UTC.",
	Serialize:    types.ToJSONValue,
	ParseValue:   parseString(parseTimestamp),
	ParseLiteral: parseStringLiteral(parseTimestamp),
})

// row is an output only scalar holding a table row as a JSON object keyed by field.
var row = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Row",
	Description: "The `Row` scalar type represents a table row as a JSON object.",
	Serialize: func(value interface{}) interface{} {
		return value
	},
	ParseValue: func(value interface{}) interface{} {
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		return nil
	},
})

// parseString adapts a parser of non-empty strings into a graphql.ParseValueFn, nil means invalid.
func parseString(parser func(string) interface{}) graphql.ParseValueFn {
	return func(value interface{}) interface{} {
		switch value := value.(type) {
		case string:
			return parser(value)
		case *string:
			if value == nil {
				return nil
			}
			return parser(*value)
		default:
			return nil
		}
	}
}

func parseStringLiteral(parser func(string) interface{}) graphql.ParseLiteralFn {
	return func(valueAST ast.Value) interface{} {
		if value, ok := valueAST.(*ast.StringValue); ok {
			return parser(value.Value)
		}
		return nil
	}
}

func parseDecimal(value string) interface{} {
	dec, ok := new(inf.Dec).SetString(value)
	if !ok {
		return nil
	}
	return dec
}

func parseTimestamp(value string) interface{} {
	for _, layout := range []string{time.RFC3339Nano, dateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
