/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Returns true if all query fields match stored container values.
// Empty query matches every container
func (q Query) Match(c Container) bool {
	for field, want := range q {
		got, exists := c[field]
		cond, isCond := AsCond(want)
		if !isCond {
			cond = Cond{Op: Op_Eq, Value: want}
		}
		if !exists && cond.Op != Op_Ne {
			if cond.Op == Op_Eq && cond.Value == nil {
				continue
			}
			return false
		}
		if !cond.Match(got) {
			return false
		}
	}
	return true
}

// Returns true if stored value satisfies the condition
func (c Cond) Match(got any) bool {
	switch c.Op {
	case Op_Eq:
		return Equal(got, c.Value)
	case Op_Ne:
		return !Equal(got, c.Value)
	case Op_In:
		list := reflect.ValueOf(c.Value)
		if list.Kind() != reflect.Slice {
			return false
		}
		for i := 0; i < list.Len(); i++ {
			if Equal(got, list.Index(i).Interface()) {
				return true
			}
		}
		return false
	case Op_Lt, Op_Lte, Op_Gt, Op_Gte:
		cmp, ok := Compare(got, c.Value)
		if !ok {
			return false
		}
		switch c.Op {
		case Op_Lt:
			return cmp < 0
		case Op_Lte:
			return cmp <= 0
		case Op_Gt:
			return cmp > 0
		default:
			return cmp >= 0
		}
	}
	return false
}

// Compares two stored values. Numbers are compared numerically regardless of
// their Go type, string-kinded identifiers as strings
func Equal(a, b any) bool {
	if fa, ok := AsNumber(a); ok {
		fb, ok := AsNumber(b)
		return ok && fa == fb
	}
	if sa, ok := AsString(a); ok {
		sb, ok := AsString(b)
		return ok && sa == sb
	}
	return reflect.DeepEqual(a, b)
}

// Orders two numbers or two strings. ok is false for other kinds
func Compare(a, b any) (cmp int, ok bool) {
	if fa, ok := AsNumber(a); ok {
		fb, ok := AsNumber(b)
		if !ok {
			return 0, false
		}
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		}
		return 0, true
	}
	if sa, ok := AsString(a); ok {
		sb, ok := AsString(b)
		if !ok {
			return 0, false
		}
		return strings.Compare(sa, sb), true
	}
	return 0, false
}

// Returns float64 value of any Go number
func AsNumber(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// Returns condition of query value. Accepts Cond and an object with a single
// known operator key
func AsCond(v any) (Cond, bool) {
	switch v := v.(type) {
	case Cond:
		return v, true
	case map[string]any:
		if len(v) != 1 {
			return Cond{}, false
		}
		for k, value := range v {
			if op := Op(k); op.IsKnown() {
				return Cond{Op: op, Value: value}, true
			}
		}
	}
	return Cond{}, false
}

func (op Op) IsKnown() bool {
	switch op {
	case Op_Eq, Op_Ne, Op_Lt, Op_Lte, Op_Gt, Op_Gte, Op_In:
		return true
	}
	return false
}

// Encodes condition as `{"<op>": value}`
func (c Cond) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{string(c.Op): c.Value})
}
