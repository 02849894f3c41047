// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import "fmt"

// A FormatError reports malformed JSON input, or a typed-consume operation
// (expectX) applied to a value of the wrong kind. The reader that produced
// a FormatError must not be used further; its cursor may be left mid-token.
type FormatError struct {
	Offset  int    // byte offset into the source where the error was detected
	Message string

	source lineColumnSource
}

// Error satisfies the error interface.
func (e *FormatError) Error() string {
	lc := e.Location()
	return fmt.Sprintf("at line %d, column %d (offset %d): %s", lc.Line, lc.Column, e.Offset, e.Message)
}

// Location computes the line and column of the error offset within the
// full source. This is computed lazily, on demand, so that constructing a
// FormatError never costs anything on the hot lexing path beyond recording
// the offset.
func (e *FormatError) Location() LineCol {
	if e.source == nil {
		return LineCol{Line: 1, Column: e.Offset}
	}
	return e.source.lineColAt(e.Offset)
}

func (e *FormatError) Unwrap() error { return nil }

// A StateError reports misuse of the reader or sink protocol, such as
// calling AddKey outside an object, or consuming a value the structural
// validator does not believe is available. StateError is only ever raised
// by the validating decorators (ValidateReader, ValidateSink); the
// unvalidated components trust the caller and never raise it.
type StateError struct {
	Message string
}

// Error satisfies the error interface.
func (e *StateError) Error() string { return "pulljson: " + e.Message }

// lineColumnSource computes a LineCol for a byte offset into some source.
// Implemented by the lexing backends; the object-tree reader has no
// underlying text and so never attaches one (see Location above).
type lineColumnSource interface {
	lineColAt(offset int) LineCol
}

func newNumberError(offset int, lexeme string, err error) *FormatError {
	return &FormatError{Offset: offset, Message: fmt.Sprintf("invalid number %q: %v", lexeme, err)}
}
