// Copyright (C) 2024 The jdom Authors. All Rights Reserved.

package ast

import "fmt"

// Castable enumerates the primitive Go types that can be extracted from a
// Value by Cast.
type Castable interface {
	bool | string |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Cast extracts a primitive of type T from v. Boolean and string targets
// require the matching variant; numeric targets require a Number and
// convert from the stored 64-bit float, truncating or widening as the
// target type demands. If the variant of v does not match T, Cast reports a
// *ValueError naming the expected and found kinds.
func Cast[T Castable](v Value) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		b, ok := v.(Bool)
		if !ok {
			return out, wrongKind(KindBool, v)
		}
		*p = bool(b)
	case *string:
		s, ok := v.(String)
		if !ok {
			return out, wrongKind(KindString, v)
		}
		*p = string(s)
	default:
		n, ok := v.(Number)
		if !ok {
			return out, wrongKind(KindNumber, v)
		}
		f := float64(n)
		switch p := any(&out).(type) {
		case *int:
			*p = int(f)
		case *int8:
			*p = int8(f)
		case *int16:
			*p = int16(f)
		case *int32:
			*p = int32(f)
		case *int64:
			*p = int64(f)
		case *uint:
			*p = uint(f)
		case *uint8:
			*p = uint8(f)
		case *uint16:
			*p = uint16(f)
		case *uint32:
			*p = uint32(f)
		case *uint64:
			*p = uint64(f)
		case *float32:
			*p = float32(f)
		case *float64:
			*p = f
		}
	}
	return out, nil
}

// ToValue converts a plain Go value into a Value. It supports nil, Value,
// bool, string, every integer and float width, []Value, map[string]Value,
// and, recursively, []any and map[string]any. Nil pointers to supported
// primitive types convert to Null, non-nil ones to their referent.
//
// ToValue panics for a type outside this set. It is a construction
// convenience for data already known to be representable, not a validator.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case *bool:
		return optional(t)
	case *string:
		return optional(t)
	case *int:
		return optional(t)
	case *int64:
		return optional(t)
	case *float64:
		return optional(t)
	case []Value:
		return NewArray(t...)
	case map[string]Value:
		obj := NewObject()
		for k, e := range t {
			obj.Set(k, e)
		}
		return obj
	case []any:
		arr := NewArray()
		for _, e := range t {
			arr.Push(ToValue(e))
		}
		return arr
	case map[string]any:
		obj := NewObject()
		for k, e := range t {
			obj.Set(k, ToValue(e))
		}
		return obj
	default:
		panic(fmt.Sprintf("cannot convert %T to a value", v))
	}
}

func optional[T any](p *T) Value {
	if p == nil {
		return Null
	}
	return ToValue(*p)
}
