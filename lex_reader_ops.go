// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import "strconv"

// This file implements the typed consume operations, composite iteration,
// and candidate matching declared by the Reader interface, in terms of
// the lexing primitives in lex_reader.go.

// --- typed consume ---

func (r *lexReader) ExpectNull() error {
	b, ok := r.peek()
	if !ok || b != 'n' {
		return r.fail(r.pos, "expected null")
	}
	if !r.consumeLiteral("null") {
		return r.fail(r.pos, "invalid literal, expected null")
	}
	return nil
}

func (r *lexReader) TryNull() bool {
	b, ok := r.peek()
	if !ok || b != 'n' {
		return false
	}
	return r.consumeLiteral("null")
}

func (r *lexReader) ExpectBool() (bool, error) {
	b, ok := r.peek()
	if !ok || (b != 't' && b != 'f') {
		return false, r.fail(r.pos, "expected bool")
	}
	if b == 't' {
		if !r.consumeLiteral("true") {
			return false, r.fail(r.pos, "invalid literal, expected true")
		}
		return true, nil
	}
	if !r.consumeLiteral("false") {
		return false, r.fail(r.pos, "invalid literal, expected false")
	}
	return false, nil
}

func (r *lexReader) TryBool() (bool, bool) {
	b, ok := r.peek()
	if !ok {
		return false, false
	}
	if b == 't' && r.consumeLiteral("true") {
		return true, true
	}
	if b == 'f' && r.consumeLiteral("false") {
		return false, true
	}
	return false, false
}

func (r *lexReader) ExpectInt() (int64, error) {
	if !r.CheckNum() {
		return 0, r.fail(r.pos, "expected int")
	}
	start := r.pos
	kind, end := r.scanNumberSpan(start)
	if kind != Int {
		return 0, r.fail(start, "expected int, got number with fraction or exponent")
	}
	lex := r.lexeme(start, end)
	r.pos = end
	v, err := strconv.ParseInt(lex, 10, 64)
	if err != nil {
		fe := newNumberError(start, lex, err)
		fe.source = r
		return 0, fe
	}
	return v, nil
}

func (r *lexReader) TryInt() (int64, bool) {
	if !r.CheckInt() {
		return 0, false
	}
	v, err := r.ExpectInt()
	if err != nil {
		return 0, false
	}
	return v, true
}

func (r *lexReader) ExpectDouble() (float64, error) {
	if !r.CheckNum() {
		return 0, r.fail(r.pos, "expected double")
	}
	start := r.pos
	_, end := r.scanNumberSpan(start)
	lex := r.lexeme(start, end)
	r.pos = end
	v, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		fe := newNumberError(start, lex, err)
		fe.source = r
		return 0, fe
	}
	return v, nil
}

func (r *lexReader) TryDouble() (float64, bool) {
	if !r.CheckNum() {
		return 0, false
	}
	v, err := r.ExpectDouble()
	if err != nil {
		return 0, false
	}
	return v, true
}

func (r *lexReader) ExpectNum() (Number, error) {
	if !r.CheckNum() {
		return Number{}, r.fail(r.pos, "expected number")
	}
	return r.scanNumber()
}

func (r *lexReader) TryNum() (Number, bool) {
	if !r.CheckNum() {
		return Number{}, false
	}
	n, err := r.scanNumber()
	if err != nil {
		return Number{}, false
	}
	return n, true
}

func (r *lexReader) ExpectStr() (string, error) {
	if !r.CheckStr() {
		return "", r.fail(r.pos, "expected string")
	}
	v, _, err := r.scanString()
	return v, err
}

func (r *lexReader) TryStr() (string, bool) {
	if !r.CheckStr() {
		return "", false
	}
	v, _, err := r.scanString()
	if err != nil {
		return "", false
	}
	return v, true
}

func (r *lexReader) ExpectArray() error {
	if !r.CheckArray() {
		return r.fail(r.pos, "expected array")
	}
	r.pos++
	return nil
}

func (r *lexReader) TryArray() bool {
	if !r.CheckArray() {
		return false
	}
	r.pos++
	return true
}

func (r *lexReader) ExpectObject() error {
	if !r.CheckObject() {
		return r.fail(r.pos, "expected object")
	}
	r.pos++
	return nil
}

func (r *lexReader) TryObject() bool {
	if !r.CheckObject() {
		return false
	}
	r.pos++
	return true
}

// --- composite iteration ---
//
// No explicit state field is stored for array/object iteration; the
// source position itself encodes whether the cursor is freshly inside a
// composite or sits just after an element (§4.1).

func (r *lexReader) HasNext() bool {
	b, ok := r.peek()
	if !ok {
		return false
	}
	if b == ']' {
		r.pos++
		return false
	}
	if b == ',' {
		r.pos++
		return true
	}
	return true
}

func (r *lexReader) NextKey() (string, bool) {
	b, ok := r.peek()
	if !ok {
		return "", false
	}
	if b == '}' {
		r.pos++
		return "", false
	}
	if b == ',' {
		r.pos++
		if _, ok = r.peek(); !ok {
			return "", false
		}
	}
	key, _, err := r.scanString()
	if err != nil {
		return "", false
	}
	if c, ok2 := r.peek(); ok2 && c == ':' {
		r.pos++
	}
	return key, true
}

func (r *lexReader) HasNextKey() (string, bool) {
	b, ok := r.peek()
	if !ok {
		return "", false
	}
	if b == '}' {
		r.pos++
		return "", false
	}
	if b == ',' {
		r.pos++
	}
	save := r.pos
	key, _, err := r.scanString()
	r.pos = save
	if err != nil {
		return "", false
	}
	return key, true
}

func (r *lexReader) NextKeySource() (Slice, bool) {
	b, ok := r.peek()
	if !ok {
		return Slice{}, false
	}
	if b == '}' {
		r.pos++
		return Slice{}, false
	}
	if b == ',' {
		r.pos++
	}
	_, raw, err := r.scanString()
	if err != nil {
		return Slice{}, false
	}
	if c, ok2 := r.peek(); ok2 && c == ':' {
		r.pos++
	}
	return raw, true
}

func (r *lexReader) SkipObjectEntry() bool {
	b, ok := r.peek()
	if !ok {
		return false
	}
	if b == '}' {
		r.pos++
		return false
	}
	if b == ',' {
		r.pos++
	}
	if err := r.skipValue(); err != nil { // the key, a string
		return false
	}
	if c, ok2 := r.peek(); ok2 && c == ':' {
		r.pos++
	}
	if err := r.skipValue(); err != nil { // the value
		return false
	}
	return true
}

func (r *lexReader) EndArray() {
	for r.HasNext() {
		r.SkipAnyValue()
	}
}

func (r *lexReader) EndObject() {
	for r.SkipObjectEntry() {
	}
}

// --- candidate matching ---

// matchCandidate runs the sorted-candidate prefix algorithm over the
// string literal at the cursor (a key if isKey, else a string value),
// without decoding escapes: any escape sequence in the literal aborts
// the match. On success the cursor advances past the literal (and its
// trailing colon, if isKey); on failure the cursor is left untouched.
//
// A key literal may be preceded by the comma separating it from the
// prior member: reading a member's value (or SkipObjectEntry) leaves the
// cursor on that comma, so matchCandidate crosses it to reach the key,
// as NextKey and SkipObjectEntry do.
func (r *lexReader) matchCandidate(candidates []string, isKey bool) (idx int, value string, ok bool) {
	origPos := r.pos
	if isKey {
		if b, atOK := r.peek(); atOK && b == ',' {
			r.pos++
		}
	}
	b, atOK := r.peek()
	if !atOK || b != '"' {
		r.pos = origPos
		return -1, "", false
	}
	start := r.pos
	i := start + 1
	m := newCandidateMatcher(candidates)
	for {
		if i >= r.len() {
			r.pos = origPos
			return -1, "", false
		}
		c := r.at(i)
		if c == '"' {
			break
		}
		if c == '\\' {
			r.pos = origPos
			return -1, "", false
		}
		if !m.feed(c) {
			r.pos = origPos
			return -1, "", false
		}
		i++
	}
	idx, matched := m.finish()
	if !matched {
		r.pos = origPos
		return -1, "", false
	}
	r.pos = i + 1
	if isKey {
		if c, ok2 := r.peek(); ok2 && c == ':' {
			r.pos++
		}
	}
	return idx, candidates[idx], true
}

func (r *lexReader) TryKey(candidates []string) (string, bool) {
	checkCandidates(candidates, true)
	_, key, ok := r.matchCandidate(candidates, true)
	return key, ok
}

func (r *lexReader) TryKeyIndex(candidates []string) (int, bool) {
	checkCandidates(candidates, true)
	idx, _, ok := r.matchCandidate(candidates, true)
	return idx, ok
}

func (r *lexReader) TryString(candidates []string) (string, bool) {
	checkCandidates(candidates, true)
	_, v, ok := r.matchCandidate(candidates, false)
	return v, ok
}

func (r *lexReader) TryStringIndex(candidates []string) (int, bool) {
	checkCandidates(candidates, true)
	idx, _, ok := r.matchCandidate(candidates, false)
	return idx, ok
}

func (r *lexReader) ExpectString(candidates []string) (string, error) {
	checkCandidates(candidates, false)
	_, v, ok := r.matchCandidate(candidates, false)
	if !ok {
		if !r.CheckStr() {
			return "", r.fail(r.pos, "expected string")
		}
		return "", r.fail(r.pos, "string does not match any candidate")
	}
	return v, nil
}

func (r *lexReader) ExpectStringIndex(candidates []string) (int, error) {
	checkCandidates(candidates, false)
	idx, _, ok := r.matchCandidate(candidates, false)
	if !ok {
		if !r.CheckStr() {
			return 0, r.fail(r.pos, "expected string")
		}
		return 0, r.fail(r.pos, "string does not match any candidate")
	}
	return idx, nil
}

// --- whole-value operations ---

func (r *lexReader) SkipAnyValue() {
	_ = r.skipValue() // non-validating: malformed input is undefined, not reported
}

func (r *lexReader) ExpectAnyValueSource() (Slice, error) {
	if _, ok := r.peek(); !ok {
		return Slice{}, r.fail(r.pos, "unexpected end of input")
	}
	start := r.pos
	if err := r.skipValue(); err != nil {
		return Slice{}, err
	}
	return newSlice(r.src.SliceFrom(start).SliceTo(r.pos-start), start), nil
}

func (r *lexReader) ExpectAnyValue(sink Sink) error {
	return emitValue(r, sink)
}

func (r *lexReader) Copy() Reader {
	return &lexReader{src: r.src, pos: r.pos, strict: r.strict}
}
