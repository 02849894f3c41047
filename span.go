// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import "go4.org/mem"

// A Span describes a contiguous span of a source input, as a pair of
// 0-based, end-exclusive byte offsets.
type Span struct {
	Pos int
	End int
}

// A LineCol describes the line number and column offset of a location in
// source text. Line numbers are 1-based; columns are 0-based byte offsets.
type LineCol struct {
	Line   int
	Column int
}

// A Slice is a zero-copy reference into the source text or bytes a Reader
// was constructed from. It never copies its contents on construction;
// materializing its contents (via String or Bytes) is the only operation
// that may allocate. The zero Slice is empty.
type Slice struct {
	ro  mem.RO
	pos int // offset of ro.At(0) within the original source, for Span
}

func newSlice(ro mem.RO, pos int) Slice { return Slice{ro: ro, pos: pos} }

// Len reports the number of bytes in the slice.
func (s Slice) Len() int { return s.ro.Len() }

// String materializes the full contents of the slice as a string. This may
// allocate; the original source is never mutated or consumed.
func (s Slice) String() string { return s.ro.StringCopy() }

// Bytes materializes the full contents of the slice as a byte slice.
func (s Slice) Bytes() []byte { return mem.Append(nil, s.ro) }

// Span reports the byte offsets of the slice within its original source.
func (s Slice) Span() Span { return Span{Pos: s.pos, End: s.pos + s.ro.Len()} }

// Slice returns the sub-slice [i:j) of s. It panics if the bounds are out
// of range, same as a Go slice expression.
func (s Slice) Slice(i, j int) Slice {
	if i < 0 || j < i || j > s.ro.Len() {
		panic("pulljson: Slice bounds out of range")
	}
	return Slice{ro: s.ro.SliceFrom(i).SliceTo(j - i), pos: s.pos + i}
}

// Find reports the offset of the first occurrence of needle within s, or
// (-1, false) if it does not occur.
func (s Slice) Find(needle string) (int, bool) {
	n := len(needle)
	if n == 0 {
		return 0, true
	}
	for i := 0; i+n <= s.ro.Len(); i++ {
		if sliceHasPrefixAt(s.ro, i, needle) {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether needle occurs within s.
func (s Slice) Contains(needle string) bool {
	_, ok := s.Find(needle)
	return ok
}

func sliceHasPrefixAt(ro mem.RO, at int, needle string) bool {
	for k := 0; k < len(needle); k++ {
		if ro.At(at+k) != needle[k] {
			return false
		}
	}
	return true
}
