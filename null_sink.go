// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

// nullSink discards every event it receives. It is useful for timing or
// exercising a Reader's decode path (ExpectAnyValue, Processor) without
// paying for a rendering backend.
type nullSink struct{}

// NewNullSink returns a Sink whose methods are all no-ops.
func NewNullSink() Sink { return nullSink{} }

func (nullSink) AddNull()          {}
func (nullSink) AddBool(bool)      {}
func (nullSink) AddNumber(Number)  {}
func (nullSink) AddString(string)  {}
func (nullSink) StartArray()       {}
func (nullSink) EndArray()         {}
func (nullSink) StartObject()      {}
func (nullSink) AddKey(string)     {}
func (nullSink) EndObject()        {}

// AddSourceValue discards raw along with everything else, so nullSink
// also satisfies SourceSink.
func (nullSink) AddSourceValue(Slice) {}

var _ SourceSink = nullSink{}
