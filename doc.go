// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package pulljson implements a pull-based JSON scanner and a matching
// event-driven writer.
//
// # Reading
//
// A Reader is a cursor over a sequence of JSON values. Unlike a push
// parser, the caller drives it: each method consumes exactly the next
// token the caller asked for, or reports an error if the input does not
// match.
//
//	r := pulljson.NewTextReader(`{"ok": true, "count": 3}`)
//	if err := r.ExpectObject(); err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    key, ok := r.NextKey()
//	    if !ok {
//	        break
//	    }
//	    switch key {
//	    case "ok":
//	        v, err := r.ExpectBool()
//	        _ = v
//	        _ = err
//	    default:
//	        r.SkipAnyValue()
//	    }
//	}
//
// Three backends implement Reader: NewTextReader and NewByteReader scan
// text or raw bytes directly; NewObjectReader walks an already-parsed
// tree of nil, bool, int64, float64, string, List, and *Map values.
//
// Every typed value has three forms: ExpectX, which fails if the next
// value is not an X; TryX, which reports false instead of failing; and
// CheckX, which only classifies without consuming. TryKey and TryString
// match the next key or string against a sorted candidate list without
// scanning the candidates one at a time.
//
// # Writing
//
// A Sink is the write-side counterpart: it accepts a well-formed
// sequence of AddX/StartX/EndX events and renders them. NewStringWriter
// and NewByteWriter render to text or bytes; NewObjectWriter builds a
// List/*Map tree; NewNullSink discards everything.
//
//	var buf strings.Builder
//	sink := pulljson.NewStringWriter(&buf, "", false)
//	sink.StartObject()
//	sink.AddKey("ok")
//	sink.AddBool(true)
//	sink.EndObject()
//
// # Processing
//
// A Processor walks a Reader and drives a Sink (or any other set of
// per-kind hooks) without the caller having to write the classify/dispatch
// switch by hand:
//
//	sink := pulljson.NewObjectWriter(nil)
//	if err := pulljson.ProcessValue(pulljson.NewSinkProcessor(sink), r); err != nil {
//	    log.Fatal(err)
//	}
//
// # Validation
//
// Readers and sinks do not validate call order by default, to keep the
// hot path allocation-free. ValidateReader and ValidateSink wrap either
// side with a shared structural finite state machine that panics with a
// StateError the moment a caller violates the grammar — useful in tests
// and anywhere a programming error should fail loudly rather than
// produce silently wrong output.
package pulljson
