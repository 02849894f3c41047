// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

// A Number is the result of a Num-kind read: a JSON number that may be
// either an integer lexeme or a floating-point lexeme. Per §9's open
// question on number representation, this package never silently widens
// an integer result to a wider type; callers wanting arbitrary precision
// must use ExpectAnyValueSource and parse the lexeme themselves.
type Number struct {
	isInt bool
	i     int64
	f     float64
}

// IsInt reports whether the number was written without a fraction or
// exponent.
func (n Number) IsInt() bool { return n.isInt }

// Int64 returns the number as an int64. If the number was written with a
// fraction or exponent, it is truncated toward zero.
func (n Number) Int64() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.f)
}

// Float64 returns the number as a float64.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// A Reader is a pull cursor over JSON-structured input. Three backends
// implement this interface: a text reader (NewTextReader), a byte reader
// (NewByteReader), and an object-tree reader (NewObjectReader). All three
// produce identical observable behavior for well-formed input.
//
// A Reader is a mutable cursor with no internal synchronization; it must
// not be used from more than one goroutine at a time. Operations on a
// non-validating Reader that misuse the protocol (for example, calling
// NextKey outside an object) produce undefined results rather than an
// error; wrap the reader with ValidateReader to get protocol-violation
// diagnostics during testing.
type Reader interface {
	// CheckNull reports whether the next value is the null literal,
	// without consuming it.
	CheckNull() bool
	// CheckBool reports whether the next value is a boolean literal,
	// without consuming it.
	CheckBool() bool
	// CheckInt reports whether the next value is an integer-shaped
	// number (no fraction or exponent), without consuming it.
	CheckInt() bool
	// CheckDouble reports whether the next value is a number with a
	// fraction or exponent, without consuming it.
	CheckDouble() bool
	// CheckNum reports whether the next value is any number, without
	// consuming it.
	CheckNum() bool
	// CheckStr reports whether the next value is a string, without
	// consuming it.
	CheckStr() bool
	// CheckArray reports whether the next value is an array, without
	// consuming it.
	CheckArray() bool
	// CheckObject reports whether the next value is an object, without
	// consuming it.
	CheckObject() bool

	// ExpectNull consumes a value asserted to be null.
	ExpectNull() error
	// ExpectBool consumes a value asserted to be a boolean.
	ExpectBool() (bool, error)
	// ExpectInt consumes a value asserted to be an integer. A lexeme
	// that does not fit in an int64 is reported as a FormatError; the
	// result is never widened. ExpectAnyValueSource returns such a
	// lexeme unparsed.
	ExpectInt() (int64, error)
	// ExpectDouble consumes a value asserted to be a number and returns
	// it as a float64; an integer-shaped number is converted.
	ExpectDouble() (float64, error)
	// ExpectNum consumes a value asserted to be any number.
	ExpectNum() (Number, error)
	// ExpectStr consumes a value asserted to be a string, returning its
	// unescaped content.
	ExpectStr() (string, error)
	// ExpectArray consumes the opening bracket of an array. The caller
	// must then drive HasNext to iterate elements.
	ExpectArray() error
	// ExpectObject consumes the opening brace of an object. The caller
	// must then drive NextKey (or TryKey) to iterate members.
	ExpectObject() error

	// TryNull consumes a null value and returns true, or leaves the
	// cursor untouched and returns false.
	TryNull() bool
	// TryBool consumes a boolean value if present.
	TryBool() (value, ok bool)
	// TryInt consumes an integer-shaped number if present.
	TryInt() (value int64, ok bool)
	// TryDouble consumes any number if present, returning it as a
	// float64.
	TryDouble() (value float64, ok bool)
	// TryNum consumes any number if present.
	TryNum() (value Number, ok bool)
	// TryStr consumes a string if present, returning its unescaped
	// content.
	TryStr() (value string, ok bool)
	// TryArray consumes the opening bracket of an array if present.
	TryArray() bool
	// TryObject consumes the opening brace of an object if present.
	TryObject() bool

	// HasNext reports whether another array element follows, consuming
	// the separating comma if so, or exiting the array if not.
	// Precondition: the cursor is inside an array.
	HasNext() bool
	// NextKey returns the next object key and positions the cursor at
	// its value, or returns ("", false) and exits the object when no
	// member remains. Precondition: the cursor is inside an object.
	NextKey() (key string, ok bool)
	// HasNextKey behaves like NextKey but does not consume the key; a
	// subsequent NextKey/TryKey call is still required to advance past
	// it. It still exits the object when none remains.
	HasNextKey() (key string, ok bool)
	// NextKeySource behaves like NextKey but returns the source slice of
	// the key, quotes included, instead of its unescaped value.
	NextKeySource() (key Slice, ok bool)
	// TryKey consumes the next key and its colon if it byte-matches one
	// of the sorted candidates with no escapes, returning that candidate
	// string (never allocating). Otherwise the cursor is left
	// positioned at the key.
	TryKey(candidates []string) (key string, ok bool)
	// TryKeyIndex behaves like TryKey but returns the index of the
	// matched candidate.
	TryKeyIndex(candidates []string) (index int, ok bool)
	// SkipObjectEntry skips one key-value pair, reporting false (and
	// exiting the object) if none remains.
	SkipObjectEntry() bool
	// EndArray fast-forwards over any remaining content of the current
	// array.
	EndArray()
	// EndObject fast-forwards over any remaining content of the current
	// object.
	EndObject()

	// TryString consumes the next value if it is a string that
	// byte-matches one of the sorted candidates, returning that
	// candidate string. Otherwise the cursor is left untouched.
	TryString(candidates []string) (value string, ok bool)
	// ExpectString consumes a value asserted to be a string matching one
	// of the sorted candidates.
	ExpectString(candidates []string) (value string, err error)
	// TryStringIndex behaves like TryString but returns the index of the
	// matched candidate.
	TryStringIndex(candidates []string) (index int, ok bool)
	// ExpectStringIndex behaves like ExpectString but returns the index
	// of the matched candidate.
	ExpectStringIndex(candidates []string) (index int, err error)

	// SkipAnyValue discards the next value, recursing through
	// composites.
	SkipAnyValue()
	// ExpectAnyValueSource skips the next value and returns the source
	// slice covering exactly its text, including quotes for strings and
	// brackets for composites.
	ExpectAnyValueSource() (Slice, error)
	// ExpectAnyValue walks the next value, emitting a faithful sequence
	// of events to sink.
	ExpectAnyValue(sink Sink) error
	// Copy snapshots the cursor so the original can continue
	// independently of the returned copy.
	Copy() Reader
	// Fail constructs a FormatError at the reader's current position.
	Fail(message string) error
}
