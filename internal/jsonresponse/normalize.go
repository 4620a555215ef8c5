package jsonresponse

import (
	"fmt"
	"iter"
	"net/http"
	"reflect"
)

// Serializable values turn themselves into plain data (maps, slices,
// strings, numbers, bools, nil) for a given request.
type Serializable interface {
	Serialize(r *http.Request) (any, error)
}

// Normalize builds the success envelope for a handler result. In Objects
// mode the result is expanded first; an expansion failure is returned as an
// error so it follows the same path as a handler error. Plain mode has no
// envelope and is rejected.
func Normalize(mode Mode, r *http.Request, result any) (Envelope, error) {
	switch mode {
	case API:
		return Succeeded(result), nil
	case Objects:
		data, err := expand(r, result)
		if err != nil {
			return Envelope{}, err
		}
		return Succeeded(data), nil
	default:
		return Envelope{}, fmt.Errorf("jsonresponse: mode %s has no envelope", mode)
	}
}

// expand serializes an objects-mode result. Falsy results pass through
// untouched, a Serializable serializes itself, and sequences are serialized
// element by element with nil elements kept as null. Serialize errors are
// returned as-is so they classify exactly like handler errors.
func expand(r *http.Request, result any) (any, error) {
	if falsy(result) {
		return result, nil
	}
	if s, ok := result.(Serializable); ok {
		return s.Serialize(r)
	}
	if seq, ok := result.(iter.Seq[Serializable]); ok {
		out := []any{}
		for s := range seq {
			v, err := serializeElem(r, s)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	rv := reflect.ValueOf(result)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			v, err := serializeElem(r, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	return nil, notSerializable(result)
}

func serializeElem(r *http.Request, elem any) (any, error) {
	if isNil(elem) {
		return nil, nil
	}
	s, ok := elem.(Serializable)
	if !ok {
		return nil, notSerializable(elem)
	}
	return s.Serialize(r)
}

// falsy mirrors the truthiness of a dynamic result: nil, empty collections
// and zero scalars are false.
func falsy(v any) bool {
	if isNil(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len() == 0
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
