package db

import (
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/gocql/gocql"
	"gopkg.in/inf.v0"
)

var elemTypes = map[gocql.Type]reflect.Type{
	gocql.TypeFloat:     reflect.TypeOf(float32(0)),
	gocql.TypeDouble:    reflect.TypeOf(float64(0)),
	gocql.TypeInt:       reflect.TypeOf(0),
	gocql.TypeSmallInt:  reflect.TypeOf(int16(0)),
	gocql.TypeTinyInt:   reflect.TypeOf(int8(0)),
	gocql.TypeBigInt:    reflect.TypeOf(""),
	gocql.TypeCounter:   reflect.TypeOf(""),
	gocql.TypeDecimal:   reflect.TypeOf(new(inf.Dec)),
	gocql.TypeVarint:    reflect.TypeOf(new(big.Int)),
	gocql.TypeText:      reflect.TypeOf(""),
	gocql.TypeVarchar:   reflect.TypeOf(""),
	gocql.TypeAscii:     reflect.TypeOf(""),
	gocql.TypeBoolean:   reflect.TypeOf(false),
	gocql.TypeInet:      reflect.TypeOf(""),
	gocql.TypeUUID:      reflect.TypeOf(""),
	gocql.TypeTimeUUID:  reflect.TypeOf(""),
	gocql.TypeTimestamp: reflect.TypeOf(time.Time{}),
	gocql.TypeDate:      reflect.TypeOf(time.Time{}),
}

// mapScan reads the current row into a map keyed by column name. Scalar values are pointers so
// that CQL nulls survive as JSON nulls.
func mapScan(scanner gocql.Scanner, columns []gocql.ColumnInfo) (map[string]interface{}, error) {
	values := make([]interface{}, len(columns))

	for i := range values {
		typeInfo := columns[i].TypeInfo
		allocated := allocateForType(typeInfo)
		if allocated == nil {
			return nil, fmt.Errorf("support for CQL type not found: %s", typeInfo.Type().String())
		}
		values[i] = allocated
	}

	if err := scanner.Scan(values...); err != nil {
		return nil, err
	}

	mapped := make(map[string]interface{}, len(values))
	for i, column := range columns {
		value := values[i]
		switch column.TypeInfo.Type() {
		case gocql.TypeList, gocql.TypeSet, gocql.TypeMap:
		default:
			value = reflect.Indirect(reflect.ValueOf(value)).Interface()
		}
		mapped[column.Name] = value
	}

	return mapped, nil
}

func allocateForType(info gocql.TypeInfo) interface{} {
	switch info.Type() {
	case gocql.TypeVarchar, gocql.TypeAscii, gocql.TypeInet, gocql.TypeText:
		return new(*string)
	case gocql.TypeBigInt, gocql.TypeCounter:
		// 64-bit integers do not fit a JSON number
		return new(*string)
	case gocql.TypeBoolean:
		return new(*bool)
	case gocql.TypeFloat:
		return new(*float32)
	case gocql.TypeDouble:
		return new(*float64)
	case gocql.TypeInt:
		return new(*int)
	case gocql.TypeSmallInt:
		return new(*int16)
	case gocql.TypeTinyInt:
		return new(*int8)
	case gocql.TypeDecimal:
		return new(*inf.Dec)
	case gocql.TypeVarint:
		return new(*big.Int)
	case gocql.TypeTimeUUID, gocql.TypeUUID:
		return new(*string)
	case gocql.TypeTimestamp, gocql.TypeDate:
		return new(*time.Time)
	case gocql.TypeList, gocql.TypeSet:
		collection, ok := info.(gocql.CollectionType)
		if !ok {
			return nil
		}
		elem := elemType(collection.Elem)
		if elem == nil {
			return nil
		}
		return reflect.New(reflect.SliceOf(elem)).Interface()
	case gocql.TypeMap:
		collection, ok := info.(gocql.CollectionType)
		if !ok {
			return nil
		}
		key := elemType(collection.Key)
		elem := elemType(collection.Elem)
		if key == nil || elem == nil {
			return nil
		}
		return reflect.New(reflect.MapOf(key, elem)).Interface()
	default:
		return nil
	}
}

func elemType(info gocql.TypeInfo) reflect.Type {
	if t, ok := elemTypes[info.Type()]; ok {
		return t
	}

	allocated := allocateForType(info)
	if allocated == nil {
		return nil
	}
	return reflect.ValueOf(allocated).Elem().Type()
}
