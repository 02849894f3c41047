// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

// validatingReader wraps a Reader and enforces correct query ordering
// against the shared structural validator. Expect, Skip and
// ExpectAnyValue calls are checked before they reach the underlying
// reader; Try calls and the iteration calls (HasNext, NextKey,
// SkipObjectEntry, EndArray, EndObject) are checked after the
// underlying call, against what it reports. It exists for testing
// against malformed call sequences; the non-validating backends
// deliberately omit these checks on their hot paths.
type validatingReader struct {
	r Reader
	v *validator
}

// ValidateReader wraps r so that every operation that would violate the
// structural grammar (entering a second top-level value, requesting a
// key outside an object, and so on) panics with a StateError instead of
// producing undefined behavior.
func ValidateReader(r Reader) Reader {
	return &validatingReader{r: r, v: newValidator(false)}
}

func (v *validatingReader) checkValue() {
	if err := v.v.value(); err != nil {
		panic(err)
	}
}

func (v *validatingReader) checkKey() {
	if err := v.v.key(); err != nil {
		panic(err)
	}
}

func (v *validatingReader) Fail(message string) error { return v.r.Fail(message) }

func (v *validatingReader) CheckNull() bool   { return v.r.CheckNull() }
func (v *validatingReader) CheckBool() bool   { return v.r.CheckBool() }
func (v *validatingReader) CheckInt() bool    { return v.r.CheckInt() }
func (v *validatingReader) CheckDouble() bool { return v.r.CheckDouble() }
func (v *validatingReader) CheckNum() bool    { return v.r.CheckNum() }
func (v *validatingReader) CheckStr() bool    { return v.r.CheckStr() }
func (v *validatingReader) CheckArray() bool  { return v.r.CheckArray() }
func (v *validatingReader) CheckObject() bool { return v.r.CheckObject() }

func (v *validatingReader) ExpectNull() error {
	v.checkValue()
	return v.r.ExpectNull()
}

func (v *validatingReader) TryNull() bool {
	ok := v.r.TryNull()
	if ok {
		v.checkValue()
	}
	return ok
}

func (v *validatingReader) ExpectBool() (bool, error) {
	v.checkValue()
	return v.r.ExpectBool()
}

func (v *validatingReader) TryBool() (bool, bool) {
	b, ok := v.r.TryBool()
	if ok {
		v.checkValue()
	}
	return b, ok
}

func (v *validatingReader) ExpectInt() (int64, error) {
	v.checkValue()
	return v.r.ExpectInt()
}

func (v *validatingReader) TryInt() (int64, bool) {
	n, ok := v.r.TryInt()
	if ok {
		v.checkValue()
	}
	return n, ok
}

func (v *validatingReader) ExpectDouble() (float64, error) {
	v.checkValue()
	return v.r.ExpectDouble()
}

func (v *validatingReader) TryDouble() (float64, bool) {
	n, ok := v.r.TryDouble()
	if ok {
		v.checkValue()
	}
	return n, ok
}

func (v *validatingReader) ExpectNum() (Number, error) {
	v.checkValue()
	return v.r.ExpectNum()
}

func (v *validatingReader) TryNum() (Number, bool) {
	n, ok := v.r.TryNum()
	if ok {
		v.checkValue()
	}
	return n, ok
}

func (v *validatingReader) ExpectStr() (string, error) {
	v.checkValue()
	return v.r.ExpectStr()
}

func (v *validatingReader) TryStr() (string, bool) {
	s, ok := v.r.TryStr()
	if ok {
		v.checkValue()
	}
	return s, ok
}

func (v *validatingReader) ExpectArray() error {
	if err := v.v.startArray(); err != nil {
		panic(err)
	}
	return v.r.ExpectArray()
}

func (v *validatingReader) TryArray() bool {
	ok := v.r.TryArray()
	if ok {
		if err := v.v.startArray(); err != nil {
			panic(err)
		}
	}
	return ok
}

func (v *validatingReader) ExpectObject() error {
	if err := v.v.startObject(); err != nil {
		panic(err)
	}
	return v.r.ExpectObject()
}

func (v *validatingReader) TryObject() bool {
	ok := v.r.TryObject()
	if ok {
		if err := v.v.startObject(); err != nil {
			panic(err)
		}
	}
	return ok
}

func (v *validatingReader) HasNext() bool {
	ok := v.r.HasNext()
	if !ok {
		if err := v.v.endArray(); err != nil {
			panic(err)
		}
	}
	return ok
}

func (v *validatingReader) NextKey() (string, bool) {
	k, ok := v.r.NextKey()
	if ok {
		v.checkKey()
	} else if err := v.v.endObject(); err != nil {
		panic(err)
	}
	return k, ok
}

func (v *validatingReader) HasNextKey() (string, bool) { return v.r.HasNextKey() }

func (v *validatingReader) NextKeySource() (Slice, bool) {
	s, ok := v.r.NextKeySource()
	if ok {
		v.checkKey()
	} else if err := v.v.endObject(); err != nil {
		panic(err)
	}
	return s, ok
}

func (v *validatingReader) SkipObjectEntry() bool {
	ok := v.r.SkipObjectEntry()
	if ok {
		v.checkKey()
		v.checkValue()
	} else if err := v.v.endObject(); err != nil {
		panic(err)
	}
	return ok
}

func (v *validatingReader) EndArray() {
	v.r.EndArray()
	if err := v.v.endArray(); err != nil {
		panic(err)
	}
}

func (v *validatingReader) EndObject() {
	v.r.EndObject()
	if err := v.v.endObject(); err != nil {
		panic(err)
	}
}

func (v *validatingReader) TryKey(candidates []string) (string, bool) {
	k, ok := v.r.TryKey(candidates)
	if ok {
		v.checkKey()
	}
	return k, ok
}

func (v *validatingReader) TryKeyIndex(candidates []string) (int, bool) {
	i, ok := v.r.TryKeyIndex(candidates)
	if ok {
		v.checkKey()
	}
	return i, ok
}

func (v *validatingReader) TryString(candidates []string) (string, bool) {
	s, ok := v.r.TryString(candidates)
	if ok {
		v.checkValue()
	}
	return s, ok
}

func (v *validatingReader) TryStringIndex(candidates []string) (int, bool) {
	i, ok := v.r.TryStringIndex(candidates)
	if ok {
		v.checkValue()
	}
	return i, ok
}

func (v *validatingReader) ExpectString(candidates []string) (string, error) {
	v.checkValue()
	return v.r.ExpectString(candidates)
}

func (v *validatingReader) ExpectStringIndex(candidates []string) (int, error) {
	v.checkValue()
	return v.r.ExpectStringIndex(candidates)
}

func (v *validatingReader) SkipAnyValue() {
	v.checkValue()
	v.r.SkipAnyValue()
}

func (v *validatingReader) ExpectAnyValueSource() (Slice, error) {
	v.checkValue()
	return v.r.ExpectAnyValueSource()
}

func (v *validatingReader) ExpectAnyValue(sink Sink) error {
	v.checkValue()
	return v.r.ExpectAnyValue(sink)
}

func (v *validatingReader) Copy() Reader {
	cp := *v.v
	cp.stack = append([]flags(nil), v.v.stack...)
	return &validatingReader{r: v.r.Copy(), v: &cp}
}
