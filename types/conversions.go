package types

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"time"

	"gopkg.in/inf.v0"
)

// ToJSONValues converts driver values into their JSON representation: decimals and varints become
// strings, timestamps RFC 3339 strings and blobs base64.
func ToJSONValues(rows []map[string]interface{}) []map[string]interface{} {
	result := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		item := make(map[string]interface{}, len(row))
		for column, value := range row {
			item[column] = ToJSONValue(value)
		}
		result[i] = item
	}
	return result
}

func ToJSONValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case *inf.Dec:
		if v == nil {
			return nil
		}
		return v.String()
	case *big.Int:
		if v == nil {
			return nil
		}
		return v.String()
	case *time.Time:
		if v == nil {
			return nil
		}
		return v.UTC().Format(time.RFC3339Nano)
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case *[]byte:
		if v == nil {
			return nil
		}
		return base64.StdEncoding.EncodeToString(*v)
	case []byte:
		return base64.StdEncoding.EncodeToString(v)
	case json.Number:
		return v
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return ToJSONValue(rv.Elem().Interface())
	}
	return value
}

// ToText renders a cell value as plain text, nulls become an empty string.
func ToText(value interface{}) string {
	converted := ToJSONValue(value)
	if converted == nil {
		return ""
	}
	if s, ok := converted.(string); ok {
		return s
	}
	return fmt.Sprint(converted)
}
