// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

// validatingSink wraps a Sink and enforces the same structural grammar
// as validatingReader, but from the writing side: addKey outside an
// object, a second top-level value on a non-reusable sink, or an
// unbalanced end* call all panic with a StateError rather than reaching
// the wrapped sink in a state it never promised to handle.
type validatingSink struct {
	s Sink
	v *validator
}

// ValidateSink wraps s so that a malformed event sequence panics with a
// StateError instead of producing undefined output. allowReuse permits
// more than one top-level value to be written in sequence, matching the
// sink's own "created reusable" lifecycle (§3).
func ValidateSink(s Sink, allowReuse bool) Sink {
	return &validatingSink{s: s, v: newValidator(allowReuse)}
}

func (v *validatingSink) checkValue() {
	if err := v.v.value(); err != nil {
		panic(err)
	}
}

func (v *validatingSink) AddNull() {
	v.checkValue()
	v.s.AddNull()
}

func (v *validatingSink) AddBool(b bool) {
	v.checkValue()
	v.s.AddBool(b)
}

func (v *validatingSink) AddNumber(n Number) {
	v.checkValue()
	v.s.AddNumber(n)
}

func (v *validatingSink) AddString(s string) {
	v.checkValue()
	v.s.AddString(s)
}

func (v *validatingSink) StartArray() {
	if err := v.v.startArray(); err != nil {
		panic(err)
	}
	v.s.StartArray()
}

func (v *validatingSink) EndArray() {
	if err := v.v.endArray(); err != nil {
		panic(err)
	}
	v.s.EndArray()
}

func (v *validatingSink) StartObject() {
	if err := v.v.startObject(); err != nil {
		panic(err)
	}
	v.s.StartObject()
}

func (v *validatingSink) AddKey(key string) {
	if err := v.v.key(); err != nil {
		panic(err)
	}
	v.s.AddKey(key)
}

func (v *validatingSink) EndObject() {
	if err := v.v.endObject(); err != nil {
		panic(err)
	}
	v.s.EndObject()
}

// AddSourceValue is always present on the wrapper, so a validated sink
// always satisfies SourceSink. It panics with a StateError if the wrapped
// sink does not implement SourceSink; otherwise it is validated exactly
// like any other value event.
func (v *validatingSink) AddSourceValue(raw Slice) {
	ss, ok := v.s.(SourceSink)
	if !ok {
		panic(&StateError{Message: "wrapped sink does not support AddSourceValue"})
	}
	v.checkValue()
	ss.AddSourceValue(raw)
}

var _ SourceSink = (*validatingSink)(nil)
