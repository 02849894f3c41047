// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

// A Sink receives a well-formed sequence of structural events describing
// a JSON value and renders them to some target representation: text,
// bytes, or an in-memory tree. The event grammar is exactly the one a
// Reader's whole-value operations and a Processor's dispatch loop
// produce: a single value, or a composite preceded by StartArray or
// StartObject and followed by a matching EndArray or EndObject, with
// AddKey immediately preceding each object member's value.
//
// A Sink does not validate that the events it receives are well-formed;
// callers that need that guarantee should wrap the sink with
// ValidateSink (§4.4).
type Sink interface {
	// AddNull emits a JSON null value.
	AddNull()

	// AddBool emits a JSON boolean value.
	AddBool(b bool)

	// AddNumber emits a JSON numeric value.
	AddNumber(n Number)

	// AddString emits a JSON string value.
	AddString(s string)

	// StartArray begins a JSON array. It must be followed, after any
	// number of element values, by a matching EndArray.
	StartArray()

	// EndArray ends the array most recently started by StartArray.
	EndArray()

	// StartObject begins a JSON object. It must be followed, after any
	// number of AddKey/value pairs, by a matching EndObject.
	StartObject()

	// AddKey emits an object member key. It must be immediately followed
	// by exactly one value event (possibly a composite).
	AddKey(key string)

	// EndObject ends the object most recently started by StartObject.
	EndObject()
}

// A SourceSink is a Sink that can additionally splice a verbatim,
// already-encoded value into its output, as produced by a Reader's
// ExpectAnyValueSource. Sinks that hold text or bytes can implement this
// to avoid a decode/re-encode round trip; the object builder cannot, since
// it has nowhere to put unparsed text.
type SourceSink interface {
	Sink

	// AddSourceValue splices raw's encoded bytes directly into the
	// output in place of a single value event. The caller is responsible
	// for ensuring raw is valid JSON in the sink's target encoding.
	AddSourceValue(raw Slice)
}
