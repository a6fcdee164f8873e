package db

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/datagrid/datagrid-apis/table"
	"gopkg.in/inf.v0"
)

// sortRows orders rows in place by field. Nulls sort first in ascending order.
func sortRows(rows []map[string]interface{}, field string, order table.SortOrder) {
	sort.SliceStable(rows, func(i, j int) bool {
		c := compareValues(rows[i][field], rows[j][field])
		if order == table.Descending {
			return c > 0
		}
		return c < 0
	})
}

// pageRows returns the rows of the page described by state.
func pageRows(rows []map[string]interface{}, state table.QueryState) []map[string]interface{} {
	start := state.Offset()
	if start < 0 || start >= len(rows) || state.PageSize <= 0 {
		return []map[string]interface{}{}
	}
	end := start + state.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func matchRows(rows []map[string]interface{}, field string, query string, limit int) []map[string]interface{} {
	query = strings.ToLower(query)
	matches := make([]map[string]interface{}, 0)
	for _, row := range rows {
		if limit > 0 && len(matches) >= limit {
			break
		}
		value := deref(row[field])
		if value == nil {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprint(value)), query) {
			matches = append(matches, row)
		}
	}
	return matches
}

func deref(value interface{}) interface{} {
	if value == nil {
		return nil
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		switch value.(type) {
		case *inf.Dec, *big.Int:
			return value
		}
		v = v.Elem()
		value = v.Interface()
	}
	return value
}

// compareValues orders two cell values: numbers numerically, times chronologically, anything else
// by its string form.
func compareValues(a, b interface{}) int {
	a, b = deref(a), deref(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			switch {
			case ta.Before(tb):
				return -1
			case ta.After(tb):
				return 1
			}
			return 0
		}
	}

	if da, ok := toDec(a); ok {
		if db, ok := toDec(b); ok {
			return da.Cmp(db)
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toDec(value interface{}) (*inf.Dec, bool) {
	switch v := value.(type) {
	case *inf.Dec:
		return v, true
	case *big.Int:
		return new(inf.Dec).SetUnscaledBig(v), true
	case int, int8, int16, int32, int64:
		return inf.NewDec(reflect.ValueOf(v).Int(), 0), true
	case json.Number:
		return new(inf.Dec).SetString(string(v))
	case float32, float64:
		d, ok := new(inf.Dec).SetString(fmt.Sprint(v))
		return d, ok
	}
	return nil, false
}
