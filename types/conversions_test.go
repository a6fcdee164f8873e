package types

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/inf.v0"
)

func TestToJSONValue(t *testing.T) {
	text := "hello"
	number := 42
	var nilText *string
	blob := []byte("hi")
	instant := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    interface{}
		expected interface{}
	}{
		{"nil", nil, nil},
		{"nil pointer", nilText, nil},
		{"string pointer", &text, "hello"},
		{"int pointer", &number, 42},
		{"decimal", inf.NewDec(12550, 2), "125.50"},
		{"varint", big.NewInt(123456789), "123456789"},
		{"timestamp", &instant, "2024-03-01T10:30:00Z"},
		{"blob", &blob, "aGk="},
		{"json number", json.Number("7.5"), json.Number("7.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToJSONValue(tt.value))
		})
	}
}

func TestToJSONValues(t *testing.T) {
	text := "a"
	rows := ToJSONValues([]map[string]interface{}{{"name": &text, "total": inf.NewDec(5, 1)}})
	assert.Equal(t, []map[string]interface{}{{"name": "a", "total": "0.5"}}, rows)
}

func TestToText(t *testing.T) {
	number := 3
	assert.Equal(t, "", ToText(nil))
	assert.Equal(t, "3", ToText(&number))
	assert.Equal(t, "1.5", ToText(json.Number("1.5")))
}
