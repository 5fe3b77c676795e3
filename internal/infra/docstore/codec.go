package docstore

import (
	"fmt"
	"reflect"

	"github.com/bytedance/sonic"
)

// toJSONMap normalizes a model or field set into its JSON object form,
// without the id key.
func toJSONMap(v any) (map[string]any, error) {
	b, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	m := map[string]any{}
	if err := sonic.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	delete(m, "id")
	delete(m, "_id")
	return m, nil
}

// decodeJSONDocs decodes JSON-shaped documents (each already carrying "id")
// into out, which must be a pointer to a slice or to a single struct.
func decodeJSONDocs(docs any, out any) error {
	b, err := sonic.Marshal(docs)
	if err != nil {
		return fmt.Errorf("decode documents: %w", err)
	}
	if err := sonic.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode documents: %w", err)
	}
	return nil
}

// sliceElem validates that out is a pointer to a slice and returns the slice value.
func sliceElem(out any) (reflect.Value, error) {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("docstore: out must be a pointer to a slice, got %T", out)
	}
	return rv.Elem(), nil
}

func withID(m map[string]any, id string) map[string]any {
	cp := make(map[string]any, len(m)+1)
	for k, v := range m {
		cp[k] = v
	}
	cp["id"] = id
	return cp
}
