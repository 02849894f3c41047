// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

// isSpace reports whether b is one of the four whitespace characters
// recognized by the JSON grammar: tab, newline, carriage return, space.
// No other Unicode whitespace is significant.
func isSpace(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r' || b == ' '
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

var hexDigitLower = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// controlEscape maps a control byte below 0x20 to its short escape letter,
// or 0 if the byte has no short form and must be \u-escaped.
var controlEscape = [0x20]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}
