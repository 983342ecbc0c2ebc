package goquery

import (
	"encoding/json"
	"strings"
)

// Value is a node of a decoded JSON tree. Lookups through a missing key or a
// node of the wrong type yield the zero Value, so callers can chain paths
// without checking each step.
type Value struct {
	v any
}

// ParseValue decodes data into a Value.
func ParseValue(data []byte) (Value, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return Value{v: v}, nil
}

// NewValue wraps an already decoded JSON tree.
func NewValue(v any) Value {
	return Value{v: v}
}

// Exists reports whether the node holds anything other than null.
func (v Value) Exists() bool {
	return v.v != nil
}

// Get descends through object keys. Any missing key or non-object node on
// the way returns the zero Value.
func (v Value) Get(keys ...string) Value {
	cur := v.v
	for _, key := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return Value{}
		}
		cur = obj[key]
	}
	return Value{v: cur}
}

// Str returns the node as a string, or "" if it is not one.
func (v Value) Str() string {
	s, _ := v.v.(string)
	return s
}

// Array returns the node's elements, or nil if it is not an array.
func (v Value) Array() []Value {
	arr, ok := v.v.([]any)
	if !ok {
		return nil
	}
	out := make([]Value, len(arr))
	for i, elem := range arr {
		out[i] = Value{v: elem}
	}
	return out
}

// RunsText concatenates the "text" property of every element of a run
// sequence, in order and without separators. Runs without text contribute
// nothing.
func (v Value) RunsText() string {
	var b strings.Builder
	for _, run := range v.Array() {
		b.WriteString(run.Get("text").Str())
	}
	return b.String()
}
