package service

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

var now = func() time.Time { return time.Now().UTC() }

// withoutID copies fields minus any client-supplied identifier.
func withoutID(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" || k == "_id" {
			continue
		}
		out[k] = v
	}
	return out
}

// conform checks a merge body against the JSON shape of T so a stored
// document always decodes back into T. Keys T declares are returned as T's
// typed values; keys it does not declare pass through unchanged.
func conform[T any](fields map[string]any) (map[string]any, error) {
	fields = withoutID(fields)
	b, err := sonic.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	var doc T
	if err := sonic.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidField, err)
	}

	typed := jsonFields(reflect.ValueOf(&doc).Elem())
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if tv, ok := typed[k]; ok {
			out[k] = tv
			continue
		}
		out[k] = v
	}
	return out, nil
}

// jsonFields maps each json-tagged field of struct v, embedded structs
// included, to its value.
func jsonFields(v reflect.Value) map[string]any {
	out := map[string]any{}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			for k, fv := range jsonFields(v.Field(i)) {
				out[k] = fv
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		out[name] = v.Field(i).Interface()
	}
	return out
}
