package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/signadot/jx/ir"
)

// FromGo converts a native Go value into an ir.Node tree. Node
// arguments are deep-copied so the result never aliases the input.
func FromGo(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	if n, ok := v.(*ir.Node); ok {
		if n == nil {
			return ir.Null(), nil
		}
		res := n.Clone()
		res.Parent = nil
		res.ParentIndex = 0
		res.ParentField = ""
		return res, nil
	}
	return fromReflect(reflect.ValueOf(v), "")
}

var runesType = reflect.TypeOf([]rune(nil))

func fromReflect(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return ir.Null(), nil
		}
		// string-like beats everything, including pointer receivers
		if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
			return fromTextMarshaler(tm, fieldPath)
		}
		val = val.Elem()
	}
	if val.CanInterface() {
		if n, ok := val.Interface().(ir.Node); ok {
			res := n.Clone()
			res.Parent = nil
			res.ParentIndex = 0
			res.ParentField = ""
			return res, nil
		}
		if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
			return fromTextMarshaler(tm, fieldPath)
		}
	}

	switch val.Kind() {
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Map:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return fromMap(val, fieldPath)
	case reflect.Struct:
		obj := &ir.Node{Type: ir.ObjectType}
		if err := fromStruct(obj, val, fieldPath); err != nil {
			return nil, err
		}
		return obj, nil
	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return ir.FromString(string(val.Bytes())), nil
		}
		if val.Type() == runesType {
			return ir.FromString(string(val.Interface().([]rune))), nil
		}
		if val.IsNil() {
			return ir.Null(), nil
		}
		return fromSeq(val, fieldPath)
	case reflect.Array:
		return fromSeq(val, fieldPath)
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromFloat(float64(val.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromFloat(float64(val.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported kind %s", val.Kind()),
		}
	}
}

func fromTextMarshaler(tm encoding.TextMarshaler, fieldPath string) (*ir.Node, error) {
	text, err := tm.MarshalText()
	if err != nil {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("MarshalText: %v", err),
		}
	}
	return ir.FromString(string(text)), nil
}

func fromMap(val reflect.Value, fieldPath string) (*ir.Node, error) {
	obj := &ir.Node{Type: ir.ObjectType}
	iter := val.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key(), fieldPath)
		if err != nil {
			return nil, err
		}
		child, err := fromReflect(iter.Value(), joinPath(fieldPath, key))
		if err != nil {
			return nil, err
		}
		obj.Set(key, child)
	}
	return obj, nil
}

func mapKey(key reflect.Value, fieldPath string) (string, error) {
	if key.Kind() == reflect.String {
		return key.String(), nil
	}
	if tm, ok := key.Interface().(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return "", &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("map key MarshalText: %v", err)}
		}
		return string(text), nil
	}
	return "", &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("map key type %s is not a string", key.Type()),
	}
}

func fromStruct(obj *ir.Node, val reflect.Value, fieldPath string) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name, omitEmpty, skip := fieldName(&f)
		if skip {
			continue
		}
		fv := val.Field(i)
		if f.Anonymous && name == f.Name && isStructish(fv) {
			// embedded structs flatten into the parent object
			ev := fv
			if ev.Kind() == reflect.Pointer {
				if ev.IsNil() {
					continue
				}
				ev = ev.Elem()
			}
			if err := fromStruct(obj, ev, fieldPath); err != nil {
				return err
			}
			continue
		}
		if omitEmpty && fv.IsZero() {
			continue
		}
		child, err := fromReflect(fv, joinPath(fieldPath, name))
		if err != nil {
			return err
		}
		obj.Set(name, child)
	}
	return nil
}

func isStructish(v reflect.Value) bool {
	if v.Kind() == reflect.Struct {
		return true
	}
	return v.Kind() == reflect.Pointer && v.Type().Elem().Kind() == reflect.Struct
}

func fieldName(f *reflect.StructField) (name string, omitEmpty, skip bool) {
	name = f.Name
	tag := f.Tag.Get("json")
	if tag == "" {
		return name, false, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" && len(parts) == 1 {
		return "", false, true
	}
	if parts[0] != "" {
		name = parts[0]
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func fromSeq(val reflect.Value, fieldPath string) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType}
	n := val.Len()
	for i := 0; i < n; i++ {
		child, err := fromReflect(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i))
		if err != nil {
			return nil, err
		}
		arr.Append(child)
	}
	return arr, nil
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
