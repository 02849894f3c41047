// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

// Kind classifies the next JSON value a Reader is positioned at, or the
// type of value an expect/try operation targets.
type Kind byte

// Constants defining the valid Kind values.
const (
	Unknown Kind = iota
	Null
	Bool
	Int
	Double
	Num // either Int or Double; used by expectNum/tryNum/checkNum
	String
	Array
	Object
)

var kindStr = [...]string{
	Unknown: "unknown",
	Null:    "null",
	Bool:    "bool",
	Int:     "int",
	Double:  "double",
	Num:     "number",
	String:  "string",
	Array:   "array",
	Object:  "object",
}

func (k Kind) String() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return kindStr[Unknown]
}
