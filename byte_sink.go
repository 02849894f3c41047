// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import (
	"io"
	"strconv"
)

// Encoding selects the target character encoding a byte writer commits
// to, which in turn sets the threshold above which a code point must be
// \uXXXX-escaped rather than written literally (§4.3, §6).
type Encoding byte

const (
	// EncodingUTF8 escapes only control characters, '"', and '\\';
	// every other code point is written as UTF-8.
	EncodingUTF8 Encoding = iota
	// EncodingASCII escapes every code point above 0x7F.
	EncodingASCII
	// EncodingLatin1 escapes every code point above 0xFF; code points in
	// 0x80-0xFF are written as a single Latin-1 byte.
	EncodingLatin1
)

func (e Encoding) limit() rune {
	switch e {
	case EncodingASCII:
		return limitASCII
	case EncodingLatin1:
		return limitLatin1
	default:
		return limitUTF8
	}
}

func (e Encoding) rawByte() bool { return e == EncodingASCII || e == EncodingLatin1 }

// byteSink is the Sink backend that renders compact JSON bytes, encoded
// per its Encoding, to an io.Writer. It never pretty-prints:
// NewByteWriter takes no indent, and pretty-printing is available only
// from NewStringWriter.
type byteSink struct {
	w        io.Writer
	encoding Encoding
	stack    []stringSinkFrame
	afterKey bool
	err      error
}

// NewByteWriter returns a Sink that renders compact JSON to w, encoding
// string content per encoding.
func NewByteWriter(w io.Writer, encoding Encoding) Sink {
	return &byteSink{w: w, encoding: encoding}
}

func (s *byteSink) write(p []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(p)
}

func (s *byteSink) beforeValue() {
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
}

func (s *byteSink) AddNull() {
	s.beforeValue()
	s.write([]byte("null"))
}

func (s *byteSink) AddBool(b bool) {
	s.beforeValue()
	if b {
		s.write([]byte("true"))
	} else {
		s.write([]byte("false"))
	}
}

func (s *byteSink) AddNumber(n Number) {
	s.beforeValue()
	if n.IsInt() {
		s.write([]byte(strconv.FormatInt(n.i, 10)))
	} else {
		s.write([]byte(strconv.FormatFloat(n.f, 'g', -1, 64)))
	}
}

func (s *byteSink) AddString(str string) {
	s.beforeValue()
	s.write(appendQuoted(nil, str, s.encoding.limit(), s.encoding.rawByte()))
}

func (s *byteSink) StartArray() {
	s.beforeValue()
	s.write([]byte{'['})
	s.stack = append(s.stack, stringSinkFrame{isObject: false})
}

func (s *byteSink) EndArray() {
	s.stack = s.stack[:len(s.stack)-1]
	s.write([]byte{']'})
}

func (s *byteSink) StartObject() {
	s.beforeValue()
	s.write([]byte{'{'})
	s.stack = append(s.stack, stringSinkFrame{isObject: true})
}

func (s *byteSink) EndObject() {
	s.stack = s.stack[:len(s.stack)-1]
	s.write([]byte{'}'})
}

func (s *byteSink) AddKey(key string) {
	f := &s.stack[len(s.stack)-1]
	if f.n > 0 {
		s.write([]byte{','})
	}
	f.n++
	s.write(appendQuoted(nil, key, s.encoding.limit(), s.encoding.rawByte()))
	s.write([]byte{':'})
	s.afterKey = true
}

func (s *byteSink) AddSourceValue(raw Slice) {
	s.beforeValue()
	s.write(raw.Bytes())
}

var _ SourceSink = (*byteSink)(nil)
