// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

// objBuildFrame mirrors objFrame but for construction rather than
// traversal: a list being appended to, or a map being assigned into,
// plus the pending key for the next value assigned into a map.
type objBuildFrame struct {
	isMap bool
	list  List
	obj   *Map
	key   string
}

// objectSink is the Sink backend that builds an in-memory List/*Map tree
// and reports the finished root value to a callback, since a sink has no
// return value of its own to hand the root back through.
type objectSink struct {
	stack  []objBuildFrame
	result func(any)
	root   any
	rootOK bool
}

// NewObjectWriter returns a Sink that builds a List/*Map tree from the
// events it receives and invokes result with the finished root value
// once the top-level value is complete. result may be nil if the caller
// only needs Result.
func NewObjectWriter(result func(any)) Sink {
	if result == nil {
		result = func(any) {}
	}
	return &objectSink{result: result}
}

// Result returns the finished root value built by sink, or reports ok
// false if the top-level value is not yet complete. sink must have been
// constructed by NewObjectWriter.
func Result(sink Sink) (any, bool) {
	s, ok := sink.(*objectSink)
	if !ok {
		return nil, false
	}
	return s.root, s.rootOK
}

func (s *objectSink) top() *objBuildFrame {
	if len(s.stack) == 0 {
		return nil
	}
	return &s.stack[len(s.stack)-1]
}

// place assigns v as the next list element, the value for the pending
// map key, or the completed root value if the stack is empty.
func (s *objectSink) place(v any) {
	f := s.top()
	if f == nil {
		s.root, s.rootOK = v, true
		s.result(v)
		return
	}
	if f.isMap {
		f.obj.Set(f.key, v)
	} else {
		f.list = append(f.list, v)
		s.stack[len(s.stack)-1] = *f
	}
}

func (s *objectSink) AddNull()          { s.place(nil) }
func (s *objectSink) AddBool(b bool)    { s.place(b) }
func (s *objectSink) AddString(v string) { s.place(v) }

func (s *objectSink) AddNumber(n Number) {
	if n.IsInt() {
		s.place(n.i)
	} else {
		s.place(n.f)
	}
}

func (s *objectSink) StartArray() {
	s.stack = append(s.stack, objBuildFrame{isMap: false})
}

func (s *objectSink) EndArray() {
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.place(List(f.list))
}

func (s *objectSink) StartObject() {
	s.stack = append(s.stack, objBuildFrame{isMap: true, obj: NewMap()})
}

func (s *objectSink) EndObject() {
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.place(f.obj)
}

func (s *objectSink) AddKey(key string) {
	f := s.top()
	f.key = key
	s.stack[len(s.stack)-1] = *f
}

// objectSink deliberately does not implement SourceSink: there is no
// "unparsed text" slot in a List/*Map to splice raw bytes into. Callers
// that need to preserve an unparsed source value must target a text or
// byte sink instead.
