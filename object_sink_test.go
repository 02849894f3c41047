// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectWriterBuildsTree(t *testing.T) {
	var got any
	sink := NewObjectWriter(func(v any) { got = v })
	if err := ProcessValue(NewSinkProcessor(sink), NewTextReader(`{"a": [1, "two", null, true]}`)); err != nil {
		t.Fatalf("ProcessValue: %v", err)
	}
	m, ok := got.(*Map)
	if !ok {
		t.Fatalf("got = %T, want *Map", got)
	}
	list, ok := m.Get("a")
	if !ok {
		t.Fatalf("Map has no key %q", "a")
	}
	if diff := cmp.Diff(List{int64(1), "two", nil, true}, list); diff != "" {
		t.Errorf("list (-want +got):\n%s", diff)
	}
}

func TestObjectWriterResultHelper(t *testing.T) {
	sink := NewObjectWriter(nil)
	if err := ProcessValue(NewSinkProcessor(sink), NewTextReader(`42`)); err != nil {
		t.Fatalf("ProcessValue: %v", err)
	}
	v, ok := Result(sink)
	if !ok || v != int64(42) {
		t.Errorf("Result() = %v, %v; want 42, true", v, ok)
	}
}

func TestObjectWriterNilResultCallback(t *testing.T) {
	sink := NewObjectWriter(nil)
	if err := ProcessValue(NewSinkProcessor(sink), NewTextReader(`"ok"`)); err != nil {
		t.Fatalf("ProcessValue with nil result callback panicked or failed: %v", err)
	}
}

func TestObjectWriterPreservesKeyOrder(t *testing.T) {
	var got any
	sink := NewObjectWriter(func(v any) { got = v })
	if err := ProcessValue(NewSinkProcessor(sink), NewTextReader(`{"z": 1, "a": 2, "m": 3}`)); err != nil {
		t.Fatalf("ProcessValue: %v", err)
	}
	m := got.(*Map)
	if diff := cmp.Diff([]string{"z", "a", "m"}, m.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
}

func TestObjectWriterDuplicateKeyOverwritesInPlace(t *testing.T) {
	var got any
	sink := NewObjectWriter(func(v any) { got = v })
	if err := ProcessValue(NewSinkProcessor(sink), NewTextReader(`{"a": 1, "b": 2, "a": 3}`)); err != nil {
		t.Fatalf("ProcessValue: %v", err)
	}
	m := got.(*Map)
	if diff := cmp.Diff([]string{"a", "b"}, m.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
	v, _ := m.Get("a")
	if v != int64(3) {
		t.Errorf("Get(a) = %v, want 3 (last write wins)", v)
	}
}
