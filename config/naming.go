package config

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

type NamingConvention interface {
	// ToWireField converts a camelCase column id into the snake_case field sent to the data source.
	ToWireField(columnID string) string

	// ToColumnID converts a snake_case wire field back into a camelCase column id.
	ToColumnID(field string) string

	// ToCQLColumn converts a wire field into a CQL column name.
	ToCQLColumn(field string) string
}

type defaultNaming struct {
}

func NewDefaultNaming() NamingConvention {
	return &defaultNaming{}
}

func (n *defaultNaming) ToWireField(columnID string) string {
	return CamelToSnake(columnID)
}

func (n *defaultNaming) ToColumnID(field string) string {
	if field == "" {
		return ""
	}
	return strcase.ToLowerCamel(field)
}

func (n *defaultNaming) ToCQLColumn(field string) string {
	// TODO: Fix numbers: "total2" --> "total_2"
	return strcase.ToSnake(field)
}

// CamelToSnake replaces every upper-case letter with an underscore followed by its lower-case form.
// The conversion is lexical only: "ID" becomes "_i_d".
func CamelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
