// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import "testing"

func TestSliceBasics(t *testing.T) {
	r := NewTextReader(`"hello world"`)
	raw, err := r.ExpectAnyValueSource()
	if err != nil {
		t.Fatal(err)
	}
	if raw.Len() != len(`"hello world"`) {
		t.Errorf("Len() = %d, want %d", raw.Len(), len(`"hello world"`))
	}
	if raw.String() != `"hello world"` {
		t.Errorf("String() = %q", raw.String())
	}
	if got := string(raw.Bytes()); got != `"hello world"` {
		t.Errorf("Bytes() = %q", got)
	}
	sp := raw.Span()
	if sp.Pos != 0 || sp.End != len(`"hello world"`) {
		t.Errorf("Span() = %+v", sp)
	}
}

func TestSliceSubSlice(t *testing.T) {
	r := NewTextReader(`"hello world"`)
	raw, err := r.ExpectAnyValueSource()
	if err != nil {
		t.Fatal(err)
	}
	sub := raw.Slice(1, 6) // "hello"
	if sub.String() != "hello" {
		t.Errorf("Slice(1,6).String() = %q, want %q", sub.String(), "hello")
	}
}

func TestSliceFindAndContains(t *testing.T) {
	r := NewTextReader(`"hello world"`)
	raw, err := r.ExpectAnyValueSource()
	if err != nil {
		t.Fatal(err)
	}
	if !raw.Contains("world") {
		t.Errorf("Contains(world) = false")
	}
	if raw.Contains("xyz") {
		t.Errorf("Contains(xyz) = true")
	}
	idx, ok := raw.Find("world")
	if !ok || idx != 7 {
		t.Errorf("Find(world) = %d, %v; want 7, true", idx, ok)
	}
}

func TestSliceSubSlicePanicsOutOfRange(t *testing.T) {
	r := NewTextReader(`"abc"`)
	raw, err := r.ExpectAnyValueSource()
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Slice(0, 100) did not panic")
		}
	}()
	raw.Slice(0, 100)
}
