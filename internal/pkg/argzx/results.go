package argzx

import (
	"fmt"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

// Results is the outcome of one parse: every declared flag mapped to either
// its default or the value taken from argv. Values are string, bool, or the
// float64 default of an untouched NumberFlag.
//
// Results is immutable; the builders below return copies.
type Results struct {
	order  []string
	values map[string]any
}

func (r Results) with(name string, v any) Results {
	values := make(map[string]any, len(r.values)+1)
	for k, old := range r.values {
		values[k] = old
	}
	order := r.order
	if _, ok := values[name]; !ok {
		order = append(append([]string(nil), r.order...), name)
	}
	values[name] = v
	return Results{order: order, values: values}
}

// Get returns the raw value stored for name.
func (r Results) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// String returns the value for name formatted as it would appear on a command
// line. Missing names yield "".
func (r Results) String(name string) string {
	switch v := r.values[name].(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// Bool returns the value for name if it is a boolean.
func (r Results) Bool(name string) (bool, bool) {
	b, ok := r.values[name].(bool)
	return b, ok
}

// Names returns flag names in registry order.
func (r Results) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of flags in r.
func (r Results) Len() int { return len(r.order) }

// Map returns a copy of the underlying name to value mapping.
func (r Results) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// Struct converts r into a protobuf Struct, suitable for protojson output.
func (r Results) Struct() (*structpb.Struct, error) {
	s, err := structpb.NewStruct(r.values)
	if err != nil {
		return nil, fmt.Errorf("convert results: %w", err)
	}
	return s, nil
}
