package templates

import (
	"iter"
	"slices"
)

// Value is a template value. It is either a Scalar or a Sequence, and the
// variant decides which filters are applied to the text.
type Value interface {
	// substitute replaces every token of key recognized by the value filters.
	// Returns the rewritten text and the number of replaced tokens.
	substitute(text, key string) (string, int)
	// Raw returns the underlying string or []string.
	Raw() any
}

// Scalar is a single text value. Used by raw, capitalize and pystring filters.
type Scalar string

// Sequence is an ordered list of text values. Used by pytuple filter.
type Sequence []string

func (s Scalar) substitute(text, key string) (string, int) {
	total := 0
	for _, filter := range scalarFilters {
		var n int
		text, n = Substitute(text, key, string(s), filter)
		total += n
	}
	return text, total
}

// Raw returns the value as a string.
func (s Scalar) Raw() any {
	return string(s)
}

func (s Sequence) substitute(text, key string) (string, int) {
	total := 0
	for _, filter := range sequenceFilters {
		var n int
		text, n = Substitute(text, key, []string(s), filter)
		total += n
	}
	return text, total
}

// Raw returns the value as a slice of strings.
func (s Sequence) Raw() any {
	return []string(s)
}

// Values is an ordered set of template values. Iteration order is the
// insertion order.
type Values struct {
	keys  []string
	items map[string]Value
}

// NewValues creates an empty values set.
func NewValues() *Values {
	return &Values{items: make(map[string]Value)}
}

// Set adds a value. An existing key keeps its position.
func (v *Values) Set(key string, value Value) {
	if _, found := v.items[key]; !found {
		v.keys = append(v.keys, key)
	}
	v.items[key] = value
}

// Get returns the value for key.
func (v *Values) Get(key string) (Value, bool) {
	value, found := v.items[key]
	return value, found
}

// Len returns the number of values.
func (v *Values) Len() int {
	return len(v.keys)
}

// Keys returns the keys in iteration order.
func (v *Values) Keys() []string {
	return slices.Clone(v.keys)
}

// All iterates over the values in insertion order.
func (v *Values) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range v.keys {
			if !yield(key, v.items[key]) {
				return
			}
		}
	}
}

// Scalars iterates over scalar values only. Sequences are skipped.
func (v *Values) Scalars() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range v.keys {
			scalar, ok := v.items[key].(Scalar)
			if !ok {
				continue
			}
			if !yield(key, string(scalar)) {
				return
			}
		}
	}
}
