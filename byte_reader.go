// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import "go4.org/mem"

// NewByteReader constructs a Reader over the raw bytes of source. Unlike
// NewTextReader, multi-byte UTF-8 sequences encountered inside string
// content are validated (continuation bytes, overlong-encoding rejection,
// code point range), since the byte slice carries no prior guarantee of
// well-formedness. Creating a reader does not consume or copy source; its
// lifetime must outlive the reader.
func NewByteReader(source []byte) Reader {
	return newLexReader(mem.B(source), true)
}
