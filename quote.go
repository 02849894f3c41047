// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import (
	"unicode/utf8"

	"go4.org/mem"
)

// Encode limits, per §6: the highest code point a writer may emit
// literally; everything above is \uXXXX-escaped.
const (
	limitASCII  rune = 0x7F
	limitLatin1 rune = 0xFF
	limitUTF8   rune = utf8.MaxRune
)

// appendQuoted appends the JSON string encoding of s (including the
// surrounding quotes) to buf. Control characters below 0x20, '"', and
// '\\' are always escaped; code points above limit are \uXXXX-escaped
// (as a UTF-16 surrogate pair if above 0xFFFF, matching the escape the
// grammar documents in §6). rawByte selects how a literal (unescaped)
// code point under the limit is appended: true for single-byte targets
// (ASCII, Latin-1), false for UTF-8 multi-byte passthrough.
func appendQuoted(buf []byte, s string, limit rune, rawByte bool) []byte {
	buf = append(buf, '"')
	for _, r := range s {
		switch {
		case r < 0x20:
			if e := controlEscape[r]; e != 0 {
				buf = append(buf, '\\', e)
			} else {
				buf = appendUnicodeEscape(buf, r)
			}
		case r == '"' || r == '\\':
			buf = append(buf, '\\', byte(r))
		case r > limit:
			buf = appendUnicodeEscape(buf, r)
		case rawByte:
			buf = append(buf, byte(r))
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	buf = append(buf, '"')
	return buf
}

func appendUnicodeEscape(buf []byte, r rune) []byte {
	if r > 0xFFFF {
		r -= 0x10000
		hi := 0xD800 + (r >> 10)
		lo := 0xDC00 + (r & 0x3FF)
		buf = appendHex4(buf, hi)
		return appendHex4(buf, lo)
	}
	return appendHex4(buf, r)
}

func appendHex4(buf []byte, r rune) []byte {
	buf = append(buf, '\\', 'u')
	buf = append(buf, hexDigitLower[(r>>12)&0xF], hexDigitLower[(r>>8)&0xF], hexDigitLower[(r>>4)&0xF], hexDigitLower[r&0xF])
	return buf
}

// rawSlice wraps already-serialized JSON text (not further quoted) as a
// Slice backed by synthesized, rather than borrowed, memory. Used by the
// object-tree reader, which has no original source text to borrow from.
func rawSlice(text string) Slice { return newSlice(mem.S(text), 0) }

// quoteKeySlice wraps the JSON-quoted form of key as a Slice backed by
// synthesized memory, for NextKeySource on the object-tree reader.
func quoteKeySlice(key string) Slice {
	return rawSlice(string(appendQuoted(nil, key, limitUTF8, false)))
}
