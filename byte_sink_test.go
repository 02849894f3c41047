// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import (
	"bytes"
	"testing"
)

func renderBytes(t *testing.T, text string, enc Encoding) string {
	t.Helper()
	var buf bytes.Buffer
	sink := NewByteWriter(&buf, enc)
	if err := ProcessValue(NewSinkProcessor(sink), NewTextReader(text)); err != nil {
		t.Fatalf("render(%q): %v", text, err)
	}
	return buf.String()
}

func TestByteSinkUTF8PassesThroughLiteralRunes(t *testing.T) {
	got := renderBytes(t, "\"café\"", EncodingUTF8)
	want := "\"café\""
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestByteSinkASCIIEscapesAboveLimit(t *testing.T) {
	got := renderBytes(t, "\"café\"", EncodingASCII)
	want := "\"caf\\u00e9\""
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestByteSinkLatin1WritesRawByteUnderLimit(t *testing.T) {
	got := renderBytes(t, "\"café\"", EncodingLatin1)
	want := "\"caf\xe9\""
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestByteSinkCompositeStructure(t *testing.T) {
	got := renderBytes(t, `{"a": [1, 2], "b": null}`, EncodingUTF8)
	want := `{"a":[1,2],"b":null}`
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestByteSinkAddSourceValue(t *testing.T) {
	var buf bytes.Buffer
	sink := NewByteWriter(&buf, EncodingUTF8)
	sink.StartArray()
	sink.(SourceSink).AddSourceValue(rawSlice(`"spliced"`))
	sink.EndArray()
	want := `["spliced"]`
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
