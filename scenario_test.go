// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import (
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestScenarioSelectiveProjection walks a larger document, pulling out
// only the fields a caller cares about and skipping the rest, the
// pattern a pull reader exists to make cheap.
func TestScenarioSelectiveProjection(t *testing.T) {
	const doc = `{
		"id": "evt-1",
		"payload": {"huge": [1, 2, 3, 4, 5], "ignored": "field"},
		"timestamp": 1700000000,
		"tags": ["a", "b"]
	}`
	r := NewTextReader(doc)
	if err := r.ExpectObject(); err != nil {
		t.Fatal(err)
	}
	var id string
	var ts int64
	var tags []string
	for {
		key, ok := r.NextKey()
		if !ok {
			break
		}
		switch key {
		case "id":
			v, err := r.ExpectStr()
			if err != nil {
				t.Fatal(err)
			}
			id = v
		case "timestamp":
			v, err := r.ExpectInt()
			if err != nil {
				t.Fatal(err)
			}
			ts = v
		case "tags":
			if err := r.ExpectArray(); err != nil {
				t.Fatal(err)
			}
			for r.HasNext() {
				v, err := r.ExpectStr()
				if err != nil {
					t.Fatal(err)
				}
				tags = append(tags, v)
			}
		default:
			r.SkipAnyValue()
		}
	}
	if id != "evt-1" || ts != 1700000000 {
		t.Errorf("id=%q ts=%d", id, ts)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tags); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
}

// TestScenarioTranscodeTextToBytes exercises a Processor driving one
// reader backend into a sink backend of a different shape, the
// transcoding use case the dispatch layer exists for.
func TestScenarioTranscodeTextToBytes(t *testing.T) {
	const doc = `{"nums": [1, 2, 3], "ok": true}`
	var buf strings.Builder
	sink := NewByteWriter(&buf, EncodingUTF8)
	if err := ProcessValue(NewSinkProcessor(sink), NewTextReader(doc)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), `{"nums":[1,2,3],"ok":true}`; got != want {
		t.Errorf("transcoded = %q, want %q", got, want)
	}
}

// TestScenarioLargeIntegerEscapeHatch verifies the documented workaround
// for the number-representation Open Question decision: a caller needing
// more precision than int64 reads the raw lexeme and parses it itself.
func TestScenarioLargeIntegerEscapeHatch(t *testing.T) {
	const huge = "123456789012345678901234567890"
	r := NewTextReader(huge)
	raw, err := r.ExpectAnyValueSource()
	if err != nil {
		t.Fatal(err)
	}
	var z big.Int
	if _, ok := z.SetString(raw.String(), 10); !ok {
		t.Fatalf("big.Int.SetString(%q) failed", raw.String())
	}
	if z.String() != huge {
		t.Errorf("round trip = %q, want %q", z.String(), huge)
	}
}

// TestScenarioValidatedRoundTrip drives a validated reader into a
// validated sink end to end, exercising both decorators together.
func TestScenarioValidatedRoundTrip(t *testing.T) {
	const doc = `{"a": [1, {"b": "c"}], "d": null}`
	var buf strings.Builder
	r := ValidateReader(NewTextReader(doc))
	sink := ValidateSink(NewStringWriter(&buf, "", false), false)
	if err := ProcessValue(NewSinkProcessor(sink), r); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), `{"a":[1,{"b":"c"}],"d":null}`; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestScenarioObjectTreeReaderOverBuilderOutput checks that the
// object-tree Reader can stand in for the text reader by building a tree
// from text with the object sink and then reading it back with the
// object-tree reader.
func TestScenarioObjectTreeReaderOverBuilderOutput(t *testing.T) {
	const doc = `{"list": [1, 2], "name": "x"}`
	var tree any
	if err := ProcessValue(NewSinkProcessor(NewObjectWriter(func(v any) { tree = v })), NewTextReader(doc)); err != nil {
		t.Fatal(err)
	}
	r := NewObjectReader(tree)
	if err := r.ExpectObject(); err != nil {
		t.Fatal(err)
	}
	got := map[string]any{}
	for {
		key, ok := r.NextKey()
		if !ok {
			break
		}
		switch key {
		case "list":
			if err := r.ExpectArray(); err != nil {
				t.Fatal(err)
			}
			var xs []int64
			for r.HasNext() {
				v, err := r.ExpectInt()
				if err != nil {
					t.Fatal(err)
				}
				xs = append(xs, v)
			}
			got[key] = xs
		case "name":
			v, err := r.ExpectStr()
			if err != nil {
				t.Fatal(err)
			}
			got[key] = v
		}
	}
	want := map[string]any{"list": []int64{1, 2}, "name": "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
