// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// decodeTree parses text with a text reader and builds the equivalent
// List/*Map tree, for feeding to NewObjectReader in the backend-parity
// tests below.
func decodeTree(t *testing.T, text string) any {
	t.Helper()
	var root any
	sink := NewObjectWriter(func(v any) { root = v })
	if err := ProcessValue(NewSinkProcessor(sink), NewTextReader(text)); err != nil {
		t.Fatalf("decodeTree(%q): %v", text, err)
	}
	return root
}

// allReaders returns a text, byte, and object-tree reader over the same
// logical value, so behavioral tests can run once against all three
// backends (§4.1: "all three produce identical observable behavior for
// well-formed input").
func allReaders(t *testing.T, text string) map[string]Reader {
	t.Helper()
	return map[string]Reader{
		"text":   NewTextReader(text),
		"byte":   NewByteReader([]byte(text)),
		"object": NewObjectReader(decodeTree(t, text)),
	}
}

func TestReaderScalars(t *testing.T) {
	tests := []struct {
		text string
		want any
	}{
		{"null", nil},
		{"true", true},
		{"false", false},
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"+3", int64(3)},
		{"3.5", 3.5},
		{"1e3", 1000.0},
		{`"hello"`, "hello"},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`"é"`, "é"},
	}
	for _, test := range tests {
		for name, r := range allReaders(t, test.text) {
			t.Run(name+"/"+test.text, func(t *testing.T) {
				switch want := test.want.(type) {
				case nil:
					if err := r.ExpectNull(); err != nil {
						t.Errorf("ExpectNull: %v", err)
					}
				case bool:
					got, err := r.ExpectBool()
					if err != nil || got != want {
						t.Errorf("ExpectBool() = %v, %v; want %v, nil", got, err, want)
					}
				case int64:
					got, err := r.ExpectInt()
					if err != nil || got != want {
						t.Errorf("ExpectInt() = %v, %v; want %v, nil", got, err, want)
					}
				case float64:
					got, err := r.ExpectDouble()
					if err != nil || got != want {
						t.Errorf("ExpectDouble() = %v, %v; want %v, nil", got, err, want)
					}
				case string:
					got, err := r.ExpectStr()
					if err != nil || got != want {
						t.Errorf("ExpectStr() = %q, %v; want %q, nil", got, err, want)
					}
				}
			})
		}
	}
}

func TestReaderArray(t *testing.T) {
	for name, r := range allReaders(t, `[1, 2, 3]`) {
		t.Run(name, func(t *testing.T) {
			if err := r.ExpectArray(); err != nil {
				t.Fatalf("ExpectArray: %v", err)
			}
			var got []int64
			for r.HasNext() {
				v, err := r.ExpectInt()
				if err != nil {
					t.Fatalf("ExpectInt: %v", err)
				}
				got = append(got, v)
			}
			if diff := cmp.Diff([]int64{1, 2, 3}, got); diff != "" {
				t.Errorf("array elements (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReaderObject(t *testing.T) {
	for name, r := range allReaders(t, `{"a": 1, "b": "two"}`) {
		t.Run(name, func(t *testing.T) {
			if err := r.ExpectObject(); err != nil {
				t.Fatalf("ExpectObject: %v", err)
			}
			got := map[string]any{}
			for {
				key, ok := r.NextKey()
				if !ok {
					break
				}
				switch key {
				case "a":
					v, err := r.ExpectInt()
					if err != nil {
						t.Fatalf("ExpectInt: %v", err)
					}
					got[key] = v
				default:
					v, err := r.ExpectStr()
					if err != nil {
						t.Fatalf("ExpectStr: %v", err)
					}
					got[key] = v
				}
			}
			want := map[string]any{"a": int64(1), "b": "two"}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("object members (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReaderTryFailsSoftly(t *testing.T) {
	for name, r := range allReaders(t, `"a string"`) {
		t.Run(name, func(t *testing.T) {
			if _, ok := r.TryBool(); ok {
				t.Errorf("TryBool() reported ok on a string value")
			}
			if _, ok := r.TryInt(); ok {
				t.Errorf("TryInt() reported ok on a string value")
			}
			v, ok := r.TryStr()
			if !ok || v != "a string" {
				t.Errorf("TryStr() = %q, %v; want %q, true", v, ok, "a string")
			}
		})
	}
}

func TestReaderExpectWrongKindFails(t *testing.T) {
	for name, r := range allReaders(t, `42`) {
		t.Run(name, func(t *testing.T) {
			if _, err := r.ExpectStr(); err == nil {
				t.Errorf("ExpectStr() on a number succeeded")
			}
		})
	}
}

func TestReaderSkipAnyValue(t *testing.T) {
	for name, r := range allReaders(t, `{"a": [1, 2, {"b": null}], "c": "x"}`) {
		t.Run(name, func(t *testing.T) {
			r.SkipAnyValue()
			if _, ok := r.TryStr(); ok {
				t.Errorf("expected cursor exhausted after skipping the only top-level value")
			}
		})
	}
}

func TestReaderCopyIndependence(t *testing.T) {
	for name, r := range allReaders(t, `[1, 2, 3]`) {
		t.Run(name, func(t *testing.T) {
			if err := r.ExpectArray(); err != nil {
				t.Fatal(err)
			}
			cp := r.Copy()
			if !r.HasNext() {
				t.Fatal("original HasNext() = false")
			}
			if v, err := r.ExpectInt(); err != nil || v != 1 {
				t.Fatalf("original ExpectInt() = %v, %v", v, err)
			}
			// The copy must still see the first element.
			if !cp.HasNext() {
				t.Fatal("copy HasNext() = false")
			}
			if v, err := cp.ExpectInt(); err != nil || v != 1 {
				t.Fatalf("copy ExpectInt() = %v, %v", v, err)
			}
		})
	}
}

func TestReaderTryKeyAndTryString(t *testing.T) {
	candidates := []string{"alpha", "beta", "gamma"}
	for name, r := range allReaders(t, `{"beta": "gamma"}`) {
		t.Run(name, func(t *testing.T) {
			if err := r.ExpectObject(); err != nil {
				t.Fatal(err)
			}
			key, ok := r.TryKey(candidates)
			if !ok || key != "beta" {
				t.Fatalf("TryKey() = %q, %v; want beta, true", key, ok)
			}
			v, ok := r.TryString(candidates)
			if !ok || v != "gamma" {
				t.Fatalf("TryString() = %q, %v; want gamma, true", v, ok)
			}
		})
	}
}

// TestReaderTryKeyPastFirstMember exercises §8 scenario 3: TryKey must
// cross the comma separating members just like NextKey/SkipObjectEntry
// do, so it keeps working on the second and later keys of an object,
// and a non-matching TryKey call must leave the cursor untouched for a
// subsequent NextKey to pick up.
func TestReaderTryKeyPastFirstMember(t *testing.T) {
	for name, r := range allReaders(t, `{"a": 1, "b": 2, "c": "str"}`) {
		t.Run(name, func(t *testing.T) {
			if err := r.ExpectObject(); err != nil {
				t.Fatal(err)
			}
			if !r.SkipObjectEntry() {
				t.Fatalf("SkipObjectEntry() = false, want true")
			}
			if key, ok := r.TryKey([]string{"a", "c"}); ok {
				t.Fatalf("TryKey([a,c]) = %q, true; want no match on key %q", key, "b")
			}
			key, ok := r.NextKey()
			if !ok || key != "b" {
				t.Fatalf("NextKey() = %q, %v; want b, true", key, ok)
			}
			if v, err := r.ExpectInt(); err != nil || v != 2 {
				t.Fatalf("ExpectInt() = %v, %v; want 2, nil", v, err)
			}
			key, ok = r.TryKey([]string{"a", "c"})
			if !ok || key != "c" {
				t.Fatalf("TryKey([a,c]) = %q, %v; want c, true", key, ok)
			}
			v, ok := r.TryString([]string{"other", "str"})
			if !ok || v != "str" {
				t.Fatalf("TryString() = %q, %v; want str, true", v, ok)
			}
			if _, ok := r.NextKey(); ok {
				t.Errorf("NextKey() reported another member after the last one")
			}
		})
	}
}

func TestReaderExpectAnyValueSourceRoundTrips(t *testing.T) {
	for name, r := range allReaders(t, `{"x": [1, 2]}`) {
		t.Run(name, func(t *testing.T) {
			raw, err := r.ExpectAnyValueSource()
			if err != nil {
				t.Fatalf("ExpectAnyValueSource: %v", err)
			}
			var got any
			sink := NewObjectWriter(func(v any) { got = v })
			rr := NewTextReader(raw.String())
			if err := ProcessValue(NewSinkProcessor(sink), rr); err != nil {
				t.Fatalf("re-decoding source slice: %v", err)
			}
			want := decodeTree(t, `{"x": [1, 2]}`)
			if diff := cmp.Diff(want, got, cmp.AllowUnexported(Map{})); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}
