// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import "go4.org/mem"

// NewTextReader constructs a Reader over the UTF-8 text of source. The
// source is assumed to already be valid UTF-8 (the Go string invariant);
// no multi-byte validation is performed inside string content. Creating a
// reader does not consume or copy source; its lifetime must outlive the
// reader.
func NewTextReader(source string) Reader {
	return newLexReader(mem.S(source), false)
}
