// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

// List is the in-memory representation of a JSON array produced by the
// object builder sink and consumed by the object-tree reader.
type List = []any

// A Map is the in-memory representation of a JSON object produced by the
// object builder sink and consumed by the object-tree reader. Unlike a
// plain Go map, it retains insertion order, matching the reader's
// guarantee that key iteration order is the source order (§9: "the
// reader exposes duplicates in source order; do not de-duplicate in the
// reader"). A repeated key overwrites the earlier value at its original
// position, following native Go map semantics for the underlying value
// store (§9 open question: duplicate keys).
type Map struct {
	keys []string
	vals map[string]any
}

// NewMap constructs an empty, ordered object map.
func NewMap() *Map { return &Map{vals: make(map[string]any)} }

// Set assigns v to key, appending key to the iteration order the first
// time it is seen, or overwriting the existing value (keeping its
// original position) on a repeat.
func (m *Map) Set(key string, v any) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Get reports the value stored under key, if any.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Keys returns the object's keys in insertion order. The caller must not
// modify the returned slice.
func (m *Map) Keys() []string { return m.keys }

// Len reports the number of distinct keys in the map.
func (m *Map) Len() int { return len(m.keys) }
