// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import (
	"fmt"
	"sort"
	"strings"
)

// objFrame is one entry of the object-tree reader's frame stack: either a
// list being iterated by index, or a map being iterated by key order.
// This is a tagged union in the sense of Design Note 9; Go expresses it as
// a struct with both shapes and an isMap discriminator rather than an
// interface, since there are exactly two shapes and no extension point is
// needed.
type objFrame struct {
	isMap bool

	list []any
	lidx int

	obj  *Map
	midx int
}

// objectReader implements Reader over an already-parsed tree of plain Go
// values: nil, bool, int64, float64, string, List, and *Map. It never
// copies the tree; copying the cursor (Copy) clones the frame stack's
// indices only, as the frames reference the same underlying collections.
type objectReader struct {
	cur    any
	curSet bool // false means the "no next value" sentinel (§4.2)
	stack  []objFrame
}

// NewObjectReader constructs a Reader over an already-parsed JSON-like
// tree. Composite values must be List ([]any) or *Map; any other
// composite shape (a plain map[string]any, a custom struct) is rejected
// lazily, the first time the reader's cursor reaches it, as a FormatError
// rather than a panic, since "bad tree shape" is a data problem from the
// caller's point of view, not a programming error inside this package.
func NewObjectReader(root any) Reader {
	return &objectReader{cur: root, curSet: true}
}

func treeKind(v any, set bool) Kind {
	if !set {
		return Unknown
	}
	switch v.(type) {
	case nil:
		return Null
	case bool:
		return Bool
	case int64:
		return Int
	case float64:
		return Double
	case string:
		return String
	case List:
		return Array
	case *Map:
		return Object
	default:
		return Unknown
	}
}

func (r *objectReader) peekKind() Kind { return treeKind(r.cur, r.curSet) }

func (r *objectReader) Fail(message string) error {
	return &FormatError{Message: message}
}

func (r *objectReader) failf(format string, args ...any) error {
	return r.Fail(fmt.Sprintf(format, args...))
}

// --- classification ---

func (r *objectReader) CheckNull() bool { return r.peekKind() == Null }
func (r *objectReader) CheckBool() bool { return r.peekKind() == Bool }
func (r *objectReader) CheckInt() bool  { return r.peekKind() == Int }
func (r *objectReader) CheckDouble() bool { return r.peekKind() == Double }
func (r *objectReader) CheckNum() bool {
	k := r.peekKind()
	return k == Int || k == Double
}
func (r *objectReader) CheckStr() bool    { return r.peekKind() == String }
func (r *objectReader) CheckArray() bool  { return r.peekKind() == Array }
func (r *objectReader) CheckObject() bool { return r.peekKind() == Object }

// --- typed consume ---

func (r *objectReader) consumePrimitive() {
	r.cur, r.curSet = nil, false
}

func (r *objectReader) ExpectNull() error {
	if !r.CheckNull() {
		return r.failf("expected null, got %v", r.peekKind())
	}
	r.consumePrimitive()
	return nil
}

func (r *objectReader) TryNull() bool {
	if !r.CheckNull() {
		return false
	}
	r.consumePrimitive()
	return true
}

func (r *objectReader) ExpectBool() (bool, error) {
	if !r.CheckBool() {
		return false, r.failf("expected bool, got %v", r.peekKind())
	}
	v := r.cur.(bool)
	r.consumePrimitive()
	return v, nil
}

func (r *objectReader) TryBool() (bool, bool) {
	if !r.CheckBool() {
		return false, false
	}
	v := r.cur.(bool)
	r.consumePrimitive()
	return v, true
}

func (r *objectReader) ExpectInt() (int64, error) {
	if !r.CheckInt() {
		return 0, r.failf("expected int, got %v", r.peekKind())
	}
	v := r.cur.(int64)
	r.consumePrimitive()
	return v, nil
}

func (r *objectReader) TryInt() (int64, bool) {
	if !r.CheckInt() {
		return 0, false
	}
	v := r.cur.(int64)
	r.consumePrimitive()
	return v, true
}

func (r *objectReader) ExpectDouble() (float64, error) {
	switch r.peekKind() {
	case Double:
		v := r.cur.(float64)
		r.consumePrimitive()
		return v, nil
	case Int:
		v := float64(r.cur.(int64))
		r.consumePrimitive()
		return v, nil
	default:
		return 0, r.failf("expected double, got %v", r.peekKind())
	}
}

func (r *objectReader) TryDouble() (float64, bool) {
	v, err := r.ExpectDouble()
	return v, err == nil
}

func (r *objectReader) ExpectNum() (Number, error) {
	switch r.peekKind() {
	case Int:
		v := r.cur.(int64)
		r.consumePrimitive()
		return Number{isInt: true, i: v}, nil
	case Double:
		v := r.cur.(float64)
		r.consumePrimitive()
		return Number{f: v}, nil
	default:
		return Number{}, r.failf("expected number, got %v", r.peekKind())
	}
}

func (r *objectReader) TryNum() (Number, bool) {
	n, err := r.ExpectNum()
	return n, err == nil
}

func (r *objectReader) ExpectStr() (string, error) {
	if !r.CheckStr() {
		return "", r.failf("expected string, got %v", r.peekKind())
	}
	v := r.cur.(string)
	r.consumePrimitive()
	return v, nil
}

func (r *objectReader) TryStr() (string, bool) {
	if !r.CheckStr() {
		return "", false
	}
	v := r.cur.(string)
	r.consumePrimitive()
	return v, true
}

func (r *objectReader) ExpectArray() error {
	if !r.CheckArray() {
		return r.failf("expected array, got %v", r.peekKind())
	}
	r.stack = append(r.stack, objFrame{isMap: false, list: r.cur.(List)})
	r.cur, r.curSet = nil, false
	return nil
}

func (r *objectReader) TryArray() bool {
	if !r.CheckArray() {
		return false
	}
	r.stack = append(r.stack, objFrame{isMap: false, list: r.cur.(List)})
	r.cur, r.curSet = nil, false
	return true
}

func (r *objectReader) ExpectObject() error {
	if !r.CheckObject() {
		return r.failf("expected object, got %v", r.peekKind())
	}
	r.stack = append(r.stack, objFrame{isMap: true, obj: r.cur.(*Map)})
	r.cur, r.curSet = nil, false
	return nil
}

func (r *objectReader) TryObject() bool {
	if !r.CheckObject() {
		return false
	}
	r.stack = append(r.stack, objFrame{isMap: true, obj: r.cur.(*Map)})
	r.cur, r.curSet = nil, false
	return true
}

// --- composite iteration ---

func (r *objectReader) top() *objFrame { return &r.stack[len(r.stack)-1] }

func (r *objectReader) popFrame() {
	r.stack = r.stack[:len(r.stack)-1]
	r.cur, r.curSet = nil, false
}

func (r *objectReader) HasNext() bool {
	f := r.top()
	if f.lidx >= len(f.list) {
		r.popFrame()
		return false
	}
	r.cur, r.curSet = f.list[f.lidx], true
	f.lidx++
	return true
}

func (r *objectReader) NextKey() (string, bool) {
	f := r.top()
	if f.midx >= f.obj.Len() {
		r.popFrame()
		return "", false
	}
	key := f.obj.Keys()[f.midx]
	v, _ := f.obj.Get(key)
	f.midx++
	r.cur, r.curSet = v, true
	return key, true
}

func (r *objectReader) HasNextKey() (string, bool) {
	f := r.top()
	if f.midx >= f.obj.Len() {
		r.popFrame()
		return "", false
	}
	return f.obj.Keys()[f.midx], true
}

func (r *objectReader) NextKeySource() (Slice, bool) {
	key, ok := r.NextKey()
	if !ok {
		return Slice{}, false
	}
	return quoteKeySlice(key), true
}

func (r *objectReader) SkipObjectEntry() bool {
	_, ok := r.NextKey()
	if !ok {
		return false
	}
	r.SkipAnyValue()
	return true
}

func (r *objectReader) EndArray() {
	for r.HasNext() {
		r.SkipAnyValue()
	}
}

func (r *objectReader) EndObject() {
	for r.SkipObjectEntry() {
	}
}

// --- candidate matching ---
//
// The tree holds already-decoded key and string values, so the
// byte-by-byte, escape-aware prefix matcher the lexing backends need has
// no work to do here: matching reduces to a sorted lookup.

func sortedIndex(candidates []string, s string) (int, bool) {
	i := sort.SearchStrings(candidates, s)
	if i < len(candidates) && candidates[i] == s {
		return i, true
	}
	return -1, false
}

func (r *objectReader) TryKey(candidates []string) (string, bool) {
	checkCandidates(candidates, true)
	f := r.top()
	if f.midx >= f.obj.Len() {
		return "", false
	}
	key := f.obj.Keys()[f.midx]
	if _, ok := sortedIndex(candidates, key); !ok {
		return "", false
	}
	k, _ := r.NextKey()
	return k, true
}

func (r *objectReader) TryKeyIndex(candidates []string) (int, bool) {
	checkCandidates(candidates, true)
	f := r.top()
	if f.midx >= f.obj.Len() {
		return -1, false
	}
	key := f.obj.Keys()[f.midx]
	idx, ok := sortedIndex(candidates, key)
	if !ok {
		return -1, false
	}
	r.NextKey()
	return idx, true
}

func (r *objectReader) TryString(candidates []string) (string, bool) {
	checkCandidates(candidates, true)
	if !r.CheckStr() {
		return "", false
	}
	s := r.cur.(string)
	if _, ok := sortedIndex(candidates, s); !ok {
		return "", false
	}
	r.consumePrimitive()
	return s, true
}

func (r *objectReader) TryStringIndex(candidates []string) (int, bool) {
	checkCandidates(candidates, true)
	if !r.CheckStr() {
		return -1, false
	}
	s := r.cur.(string)
	idx, ok := sortedIndex(candidates, s)
	if !ok {
		return -1, false
	}
	r.consumePrimitive()
	return idx, true
}

func (r *objectReader) ExpectString(candidates []string) (string, error) {
	checkCandidates(candidates, false)
	v, ok := r.TryString(candidates)
	if !ok {
		if !r.CheckStr() {
			return "", r.failf("expected string, got %v", r.peekKind())
		}
		return "", r.failf("string %q does not match any candidate", r.cur)
	}
	return v, nil
}

func (r *objectReader) ExpectStringIndex(candidates []string) (int, error) {
	checkCandidates(candidates, false)
	idx, ok := r.TryStringIndex(candidates)
	if !ok {
		if !r.CheckStr() {
			return 0, r.failf("expected string, got %v", r.peekKind())
		}
		return 0, r.failf("string %q does not match any candidate", r.cur)
	}
	return idx, nil
}

// --- whole-value operations ---

func (r *objectReader) SkipAnyValue() {
	switch r.peekKind() {
	case Array:
		r.TryArray()
		r.EndArray()
	case Object:
		r.TryObject()
		r.EndObject()
	default:
		r.consumePrimitive()
	}
}

// ExpectAnyValueSource synthesizes a canonical-text slice for the next
// value, since an object-tree reader has no underlying source text to
// borrow a slice from. The synthesized text is produced by the same
// compact writer used by NewStringWriter.
func (r *objectReader) ExpectAnyValueSource() (Slice, error) {
	var out strings.Builder
	sink := NewStringWriter(&out, "", false)
	if err := r.ExpectAnyValue(sink); err != nil {
		return Slice{}, err
	}
	return rawSlice(out.String()), nil
}

func (r *objectReader) ExpectAnyValue(sink Sink) error {
	return emitValue(r, sink)
}

func (r *objectReader) Copy() Reader {
	cp := &objectReader{cur: r.cur, curSet: r.curSet, stack: make([]objFrame, len(r.stack))}
	copy(cp.stack, r.stack)
	return cp
}
