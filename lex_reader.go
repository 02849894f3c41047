// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import (
	"strconv"
	"unicode/utf8"

	"go4.org/mem"
)

// lexReader is the shared lexing core behind TextReader and ByteReader.
// Both backends wrap the source in a go4.org/mem.RO value and share every
// scanning algorithm; the only behavioral difference between them is that
// the byte backend additionally validates multi-byte UTF-8 sequences
// inside string content, since its source is raw bytes rather than a
// pre-validated Go string (§4.1: "For the byte backend, also decode
// multi-byte UTF-8").
type lexReader struct {
	src    mem.RO
	pos    int
	strict bool // validate multi-byte UTF-8 in strings (byte backend only)
}

func newLexReader(src mem.RO, strict bool) *lexReader {
	return &lexReader{src: src, strict: strict}
}

func (r *lexReader) len() int        { return r.src.Len() }
func (r *lexReader) at(i int) byte   { return r.src.At(i) }
func (r *lexReader) atEnd() bool     { return r.pos >= r.len() }
func (r *lexReader) lineColAt(offset int) LineCol {
	line, col := 1, 0
	n := offset
	if n > r.len() {
		n = r.len()
	}
	for i := 0; i < n; i++ {
		if r.src.At(i) == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return LineCol{Line: line, Column: col}
}

func (r *lexReader) fail(offset int, message string) *FormatError {
	return &FormatError{Offset: offset, Message: message, source: r}
}

// Fail satisfies Reader.Fail.
func (r *lexReader) Fail(message string) error { return r.fail(r.pos, message) }

// skipWS advances pos past the four significant whitespace characters.
// Called before every classification and every consume.
func (r *lexReader) skipWS() {
	for r.pos < r.len() && isSpace(r.at(r.pos)) {
		r.pos++
	}
}

// peek returns the next non-whitespace byte without advancing, or
// (0, false) at end of input.
func (r *lexReader) peek() (byte, bool) {
	r.skipWS()
	if r.atEnd() {
		return 0, false
	}
	return r.at(r.pos), true
}

func (r *lexReader) peekKind() Kind {
	b, ok := r.peek()
	if !ok {
		return Unknown
	}
	switch {
	case b == '"':
		return String
	case b == '{':
		return Object
	case b == '[':
		return Array
	case b == 't' || b == 'f':
		return Bool
	case b == 'n':
		return Null
	case b == '-' || b == '+' || isDigit(b):
		k, _ := r.scanNumberSpan(r.pos)
		return k
	default:
		return Unknown
	}
}

// --- classification ---

func (r *lexReader) CheckNull() bool   { return r.peekKind() == Null }
func (r *lexReader) CheckBool() bool   { return r.peekKind() == Bool }
func (r *lexReader) CheckInt() bool    { return r.peekKind() == Int }
func (r *lexReader) CheckDouble() bool { return r.peekKind() == Double }
func (r *lexReader) CheckNum() bool {
	k := r.peekKind()
	return k == Int || k == Double
}
func (r *lexReader) CheckStr() bool    { return r.peekKind() == String }
func (r *lexReader) CheckArray() bool  { return r.peekKind() == Array }
func (r *lexReader) CheckObject() bool { return r.peekKind() == Object }

// --- number scanning ---

// scanNumberSpan scans the number lexeme starting at start (which must
// already be positioned at a sign or digit), without advancing the
// cursor. It reports whether the lexeme is Int- or Double-shaped and the
// offset just past the lexeme. Per the design's non-validating lexer,
// this accepts any well-formed number and does not fully validate
// malformed ones (§1 Non-goals).
func (r *lexReader) scanNumberSpan(start int) (kind Kind, end int) {
	i, n := start, r.len()
	kind = Int
	if i < n && (r.at(i) == '+' || r.at(i) == '-') {
		i++
	}
	for i < n && isDigit(r.at(i)) {
		i++
	}
	if i < n && (r.at(i) == '.' || r.at(i) == 'e' || r.at(i) == 'E') {
		kind = Double
		for i < n {
			c := r.at(i)
			if isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
				i++
			} else {
				break
			}
		}
	}
	return kind, i
}

func (r *lexReader) lexeme(start, end int) string {
	return r.src.SliceFrom(start).SliceTo(end - start).StringCopy()
}

func (r *lexReader) scanNumber() (Number, error) {
	start := r.pos
	kind, end := r.scanNumberSpan(start)
	lex := r.lexeme(start, end)
	r.pos = end
	if kind == Int {
		v, err := strconv.ParseInt(lex, 10, 64)
		if err != nil {
			fe := newNumberError(start, lex, err)
			fe.source = r
			return Number{}, fe
		}
		return Number{isInt: true, i: v}, nil
	}
	v, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		fe := newNumberError(start, lex, err)
		fe.source = r
		return Number{}, fe
	}
	return Number{f: v}, nil
}

// --- literal scanning ---

func (r *lexReader) consumeLiteral(word string) bool {
	if r.pos+len(word) > r.len() {
		return false
	}
	for k := 0; k < len(word); k++ {
		if r.at(r.pos+k) != word[k] {
			return false
		}
	}
	r.pos += len(word)
	return true
}

// --- string scanning ---

// scanString scans a string value starting with the opening quote at
// r.pos. It returns the unescaped content, the raw source slice
// (including quotes), and advances the cursor past the closing quote.
func (r *lexReader) scanString() (value string, raw Slice, err error) {
	start := r.pos
	i := start + 1
	segStart := i
	var buf []byte
	escaped := false

	for {
		if i >= r.len() {
			return "", Slice{}, r.fail(start, "unterminated string")
		}
		c := r.at(i)
		if c == '"' {
			break
		}
		if c == '\\' {
			escaped = true
			buf = mem.Append(buf, r.src.SliceFrom(segStart).SliceTo(i-segStart))
			i++
			if i >= r.len() {
				return "", Slice{}, r.fail(start, "unterminated escape sequence")
			}
			e := r.at(i)
			switch e {
			case '"', '\\', '/':
				buf = append(buf, e)
				i++
			case 'b':
				buf = append(buf, '\b')
				i++
			case 'f':
				buf = append(buf, '\f')
				i++
			case 'n':
				buf = append(buf, '\n')
				i++
			case 'r':
				buf = append(buf, '\r')
				i++
			case 't':
				buf = append(buf, '\t')
				i++
			case 'u':
				i++
				if i+4 > r.len() {
					return "", Slice{}, r.fail(start, "incomplete unicode escape")
				}
				v := 0
				for k := 0; k < 4; k++ {
					h := r.at(i + k)
					if !isHexDigit(h) {
						return "", Slice{}, r.fail(start, "invalid hex digit in unicode escape")
					}
					v = v<<4 | hexVal(h)
				}
				i += 4
				var rbuf [utf8.UTFMax]byte
				n := utf8.EncodeRune(rbuf[:], rune(v))
				buf = append(buf, rbuf[:n]...)
			default:
				return "", Slice{}, r.fail(start, "invalid escape character")
			}
			segStart = i
			continue
		}
		if c < 0x20 {
			return "", Slice{}, r.fail(start, "unescaped control character in string")
		}
		if c >= 0x80 && r.strict {
			n, ok := r.validUTF8SeqLen(i)
			if !ok {
				return "", Slice{}, r.fail(start, "invalid utf-8 sequence in string")
			}
			i += n
			continue
		}
		i++
	}

	raw = newSlice(r.src.SliceFrom(start).SliceTo(i+1-start), start)
	if !escaped {
		value = r.src.SliceFrom(start + 1).SliceTo(i-start-1).StringCopy()
	} else {
		buf = mem.Append(buf, r.src.SliceFrom(segStart).SliceTo(i-segStart))
		value = string(buf)
	}
	r.pos = i + 1
	return value, raw, nil
}

// validUTF8SeqLen validates the multi-byte UTF-8 sequence starting at i
// (where src[i] >= 0x80) and returns its length in bytes. It rejects
// truncated sequences, missing continuation bytes, overlong encodings,
// and code points beyond U+10FFFF.
func (r *lexReader) validUTF8SeqLen(i int) (int, bool) {
	b0 := r.at(i)
	var n int
	var min rune
	var v rune
	switch {
	case b0&0xE0 == 0xC0:
		n, min, v = 2, 0x80, rune(b0&0x1F)
	case b0&0xF0 == 0xE0:
		n, min, v = 3, 0x800, rune(b0&0x0F)
	case b0&0xF8 == 0xF0:
		n, min, v = 4, 0x10000, rune(b0&0x07)
	default:
		return 0, false
	}
	if i+n > r.len() {
		return 0, false
	}
	for k := 1; k < n; k++ {
		c := r.at(i + k)
		if c&0xC0 != 0x80 {
			return 0, false
		}
		v = v<<6 | rune(c&0x3F)
	}
	if v < min || v > utf8.MaxRune {
		return 0, false
	}
	return n, true
}

// --- skip-value ---

// skipValue discards one value starting at r.pos, which must already be
// positioned at the value's first non-whitespace byte.
func (r *lexReader) skipValue() error {
	b, ok := r.peek()
	if !ok {
		return r.fail(r.pos, "unexpected end of input")
	}
	switch {
	case b == '"':
		_, _, err := r.scanString()
		return err
	case b == '{':
		r.pos++
		return r.skipUntil('}')
	case b == '[':
		r.pos++
		return r.skipUntil(']')
	case b == 't':
		if !r.consumeLiteral("true") {
			return r.fail(r.pos, "invalid literal, expected true")
		}
		return nil
	case b == 'f':
		if !r.consumeLiteral("false") {
			return r.fail(r.pos, "invalid literal, expected false")
		}
		return nil
	case b == 'n':
		if !r.consumeLiteral("null") {
			return r.fail(r.pos, "invalid literal, expected null")
		}
		return nil
	case b == '-' || b == '+' || isDigit(b):
		// Only the lexeme's extent is needed, so an integer too large for
		// int64 is skipped (and captured by ExpectAnyValueSource) intact.
		_, end := r.scanNumberSpan(r.pos)
		r.pos = end
		return nil
	default:
		return r.fail(r.pos, "unexpected character")
	}
}

// skipUntil scans flat content until the unescaped, unnested endChar,
// transparently recursing into nested strings, braces and brackets.
// Precondition: r.pos is just past the opening bracket.
func (r *lexReader) skipUntil(endChar byte) error {
	for {
		b, ok := r.peek()
		if !ok {
			return r.fail(r.pos, "unexpected end of input inside composite")
		}
		if b == endChar {
			r.pos++
			return nil
		}
		if b == ',' || b == ':' {
			r.pos++
			continue
		}
		if err := r.skipValue(); err != nil {
			return err
		}
	}
}
