// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

// A Processor dispatches the values produced by a Reader to a set of
// per-kind hooks, in the fixed classification order array, object,
// string, number, bool, null, unknown (§4.5). Go has no subclassing, so
// "subclasses can override individual hooks" is realized as a struct of
// function fields: set the fields you care about and leave the rest nil
// to fall back to the generic walk-and-discard default.
//
// The Array and Object hooks are responsible only for consuming (or
// rejecting) the opening bracket and reporting whether the dispatcher
// should descend into the composite's children; the dispatcher itself
// drives the HasNext/NextKey loop and then calls ArrayEnd/ObjectEnd once
// the composite is exhausted. This mirrors the Begin/End pairing of the
// teacher package's event Handler interface.
type Processor struct {
	Array    func(p *Processor, r Reader, key string, hasKey bool) (descend bool, err error)
	ArrayEnd func(p *Processor, r Reader) error
	Object   func(p *Processor, r Reader, key string, hasKey bool) (descend bool, err error)
	ObjectEnd func(p *Processor, r Reader) error
	Str      func(p *Processor, r Reader, key string, hasKey bool) error
	Num      func(p *Processor, r Reader, key string, hasKey bool) error
	Bool     func(p *Processor, r Reader, key string, hasKey bool) error
	Null     func(p *Processor, r Reader, key string, hasKey bool) error
	Unknown  func(p *Processor, r Reader, key string, hasKey bool) error
}

func defaultArrayHook(p *Processor, r Reader, key string, hasKey bool) (bool, error) {
	if err := r.ExpectArray(); err != nil {
		return false, err
	}
	return true, nil
}

func defaultObjectHook(p *Processor, r Reader, key string, hasKey bool) (bool, error) {
	if err := r.ExpectObject(); err != nil {
		return false, err
	}
	return true, nil
}

func defaultEndHook(p *Processor, r Reader) error { return nil }

func defaultStrHook(p *Processor, r Reader, key string, hasKey bool) error {
	_, err := r.ExpectStr()
	return err
}

func defaultNumHook(p *Processor, r Reader, key string, hasKey bool) error {
	_, err := r.ExpectNum()
	return err
}

func defaultBoolHook(p *Processor, r Reader, key string, hasKey bool) error {
	_, err := r.ExpectBool()
	return err
}

func defaultNullHook(p *Processor, r Reader, key string, hasKey bool) error {
	return r.ExpectNull()
}

func defaultUnknownHook(p *Processor, r Reader, key string, hasKey bool) error {
	return r.Fail("unknown value kind")
}

func (p *Processor) arrayHook() func(*Processor, Reader, string, bool) (bool, error) {
	if p.Array != nil {
		return p.Array
	}
	return defaultArrayHook
}

func (p *Processor) arrayEndHook() func(*Processor, Reader) error {
	if p.ArrayEnd != nil {
		return p.ArrayEnd
	}
	return defaultEndHook
}

func (p *Processor) objectHook() func(*Processor, Reader, string, bool) (bool, error) {
	if p.Object != nil {
		return p.Object
	}
	return defaultObjectHook
}

func (p *Processor) objectEndHook() func(*Processor, Reader) error {
	if p.ObjectEnd != nil {
		return p.ObjectEnd
	}
	return defaultEndHook
}

func (p *Processor) strHook() func(*Processor, Reader, string, bool) error {
	if p.Str != nil {
		return p.Str
	}
	return defaultStrHook
}

func (p *Processor) numHook() func(*Processor, Reader, string, bool) error {
	if p.Num != nil {
		return p.Num
	}
	return defaultNumHook
}

func (p *Processor) boolHook() func(*Processor, Reader, string, bool) error {
	if p.Bool != nil {
		return p.Bool
	}
	return defaultBoolHook
}

func (p *Processor) nullHook() func(*Processor, Reader, string, bool) error {
	if p.Null != nil {
		return p.Null
	}
	return defaultNullHook
}

func (p *Processor) unknownHook() func(*Processor, Reader, string, bool) error {
	if p.Unknown != nil {
		return p.Unknown
	}
	return defaultUnknownHook
}

// ProcessValue classifies the next value available from r with checkX in
// the fixed order array, object, string, number, bool, null, unknown, and
// dispatches to the matching hook of p.
func ProcessValue(p *Processor, r Reader) error {
	return processOne(p, r, "", false)
}

func processOne(p *Processor, r Reader, key string, hasKey bool) error {
	switch {
	case r.CheckArray():
		descend, err := p.arrayHook()(p, r, key, hasKey)
		if err != nil {
			return err
		}
		if descend {
			for r.HasNext() {
				if err := processOne(p, r, "", false); err != nil {
					return err
				}
			}
		}
		return p.arrayEndHook()(p, r)

	case r.CheckObject():
		descend, err := p.objectHook()(p, r, key, hasKey)
		if err != nil {
			return err
		}
		if descend {
			for {
				k, ok := r.NextKey()
				if !ok {
					break
				}
				if err := processOne(p, r, k, true); err != nil {
					return err
				}
			}
		}
		return p.objectEndHook()(p, r)

	case r.CheckStr():
		return p.strHook()(p, r, key, hasKey)
	case r.CheckNum():
		return p.numHook()(p, r, key, hasKey)
	case r.CheckBool():
		return p.boolHook()(p, r, key, hasKey)
	case r.CheckNull():
		return p.nullHook()(p, r, key, hasKey)
	default:
		return p.unknownHook()(p, r, key, hasKey)
	}
}

// NewSinkProcessor returns a Processor whose hooks forward every value
// read from the paired Reader to sink, emitting AddKey(key) immediately
// before each non-null-key child, as described in §4.5.
func NewSinkProcessor(sink Sink) *Processor {
	emitKey := func(key string, hasKey bool) {
		if hasKey {
			sink.AddKey(key)
		}
	}
	return &Processor{
		Array: func(p *Processor, r Reader, key string, hasKey bool) (bool, error) {
			if err := r.ExpectArray(); err != nil {
				return false, err
			}
			emitKey(key, hasKey)
			sink.StartArray()
			return true, nil
		},
		ArrayEnd: func(p *Processor, r Reader) error {
			sink.EndArray()
			return nil
		},
		Object: func(p *Processor, r Reader, key string, hasKey bool) (bool, error) {
			if err := r.ExpectObject(); err != nil {
				return false, err
			}
			emitKey(key, hasKey)
			sink.StartObject()
			return true, nil
		},
		ObjectEnd: func(p *Processor, r Reader) error {
			sink.EndObject()
			return nil
		},
		Str: func(p *Processor, r Reader, key string, hasKey bool) error {
			v, err := r.ExpectStr()
			if err != nil {
				return err
			}
			emitKey(key, hasKey)
			sink.AddString(v)
			return nil
		},
		Num: func(p *Processor, r Reader, key string, hasKey bool) error {
			v, err := r.ExpectNum()
			if err != nil {
				return err
			}
			emitKey(key, hasKey)
			sink.AddNumber(v)
			return nil
		},
		Bool: func(p *Processor, r Reader, key string, hasKey bool) error {
			v, err := r.ExpectBool()
			if err != nil {
				return err
			}
			emitKey(key, hasKey)
			sink.AddBool(v)
			return nil
		},
		Null: func(p *Processor, r Reader, key string, hasKey bool) error {
			if err := r.ExpectNull(); err != nil {
				return err
			}
			emitKey(key, hasKey)
			sink.AddNull()
			return nil
		},
	}
}

// emitValue walks the next value available from r and emits a faithful
// sequence of events to sink. It backs Reader.ExpectAnyValue on every
// backend.
func emitValue(r Reader, sink Sink) error {
	return ProcessValue(NewSinkProcessor(sink), r)
}
