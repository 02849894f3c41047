// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import (
	"io"
	"strconv"
)

// stringSinkFrame tracks whether the sink has already written a member
// or element at the current nesting depth, so it knows whether the next
// one needs a leading comma.
type stringSinkFrame struct {
	isObject bool
	n        int // number of elements/members already written
}

// stringSink is the Sink backend that renders text to an io.Writer,
// either compact or pretty-printed depending on whether indent is empty.
type stringSink struct {
	w         io.Writer
	indent    string
	asciiOnly bool
	depth     int
	stack     []stringSinkFrame
	afterKey  bool
	err       error
}

// NewStringWriter returns a Sink that renders JSON text to w. An empty
// indent produces compact output with no inter-token whitespace; a
// non-empty indent is repeated once per nesting level to pretty-print,
// with a single space after each ':' and a newline after each ',' and
// after each non-empty composite's opening bracket. asciiOnly forces
// every code point above 0x7F to be \uXXXX-escaped, matching the ASCII
// encode limit
// a byte writer would use; when false, output is UTF-8 and only control
// characters, '"', and '\\' are escaped.
func NewStringWriter(w io.Writer, indent string, asciiOnly bool) Sink {
	return &stringSink{w: w, indent: indent, asciiOnly: asciiOnly}
}

func (s *stringSink) pretty() bool { return s.indent != "" }

func (s *stringSink) write(p []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(p)
}

func (s *stringSink) writeString(str string) { s.write([]byte(str)) }

// beforeValue writes the separator (comma, indentation) needed before
// the next array element or top-level value. Object member values are
// exempt: AddKey already claimed the comma/indent slot for the member,
// so beforeValue just clears the flag AddKey left behind.
func (s *stringSink) beforeValue() {
	if s.afterKey {
		s.afterKey = false
		return
	}
	if len(s.stack) == 0 {
		return
	}
	f := &s.stack[len(s.stack)-1]
	if f.n > 0 {
		s.write([]byte{','})
	}
	f.n++
	s.newlineIndent()
}

func (s *stringSink) newlineIndent() {
	if !s.pretty() {
		return
	}
	s.write([]byte{'\n'})
	for i := 0; i < s.depth; i++ {
		s.writeString(s.indent)
	}
}

func (s *stringSink) limit() rune {
	if s.asciiOnly {
		return limitASCII
	}
	return limitUTF8
}

func (s *stringSink) AddNull() {
	s.beforeValue()
	s.writeString("null")
}

func (s *stringSink) AddBool(b bool) {
	s.beforeValue()
	if b {
		s.writeString("true")
	} else {
		s.writeString("false")
	}
}

func (s *stringSink) AddNumber(n Number) {
	s.beforeValue()
	if n.IsInt() {
		s.writeString(strconv.FormatInt(n.i, 10))
	} else {
		s.writeString(strconv.FormatFloat(n.f, 'g', -1, 64))
	}
}

func (s *stringSink) AddString(str string) {
	s.beforeValue()
	s.write(appendQuoted(nil, str, s.limit(), false))
}

func (s *stringSink) startComposite(isObject bool, open byte) {
	s.beforeValue()
	s.write([]byte{open})
	s.stack = append(s.stack, stringSinkFrame{isObject: isObject})
	s.depth++
}

func (s *stringSink) endComposite(close byte) {
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.depth--
	if f.n > 0 {
		s.newlineIndent()
	}
	s.write([]byte{close})
}

func (s *stringSink) StartArray()  { s.startComposite(false, '[') }
func (s *stringSink) EndArray()    { s.endComposite(']') }
func (s *stringSink) StartObject() { s.startComposite(true, '{') }
func (s *stringSink) EndObject()   { s.endComposite('}') }

// AddKey claims the comma/indent slot for the whole key:value member; the
// value event that follows is exempted from writing its own via afterKey.
func (s *stringSink) AddKey(key string) {
	f := &s.stack[len(s.stack)-1]
	if f.n > 0 {
		s.write([]byte{','})
	}
	f.n++
	s.newlineIndent()
	s.write(appendQuoted(nil, key, s.limit(), false))
	if s.pretty() {
		s.writeString(": ")
	} else {
		s.write([]byte{':'})
	}
	s.afterKey = true
}

// AddSourceValue splices raw's text directly into the output, still
// respecting comma/indent placement as for any other value event.
func (s *stringSink) AddSourceValue(raw Slice) {
	s.beforeValue()
	s.writeString(raw.String())
}

var _ SourceSink = (*stringSink)(nil)
