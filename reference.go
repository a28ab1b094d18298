package jserial

// reference is a decoded record as stored in the handle table. Edges
// between records are handles, never pointers, so cyclic graphs are
// representable.
type reference interface {
	isReference()
}

type classOutline struct {
	name        string
	serialUID   uint64
	superClass  Handle // NullHandle if none
	fields      []fieldDesc
	annotations []annotation
	flags       ClassFlag
}

type proxyOutline struct {
	interfaces  []string
	annotations []annotation
	class       Handle
}

type nullRef struct{}

type stringRef string

type arrayRef []Handle

type primitiveArrayRef []Primitive

type classObjectRef Handle

type objectRef struct {
	class  Handle
	fields map[string]field
	// One list per class in the hierarchy that wrote annotations.
	annotations [][]annotation
}

type enumRef struct {
	class    Handle
	constant Handle
}

func (*classOutline) isReference()     {}
func (*proxyOutline) isReference()     {}
func (nullRef) isReference()           {}
func (stringRef) isReference()         {}
func (arrayRef) isReference()          {}
func (primitiveArrayRef) isReference() {}
func (classObjectRef) isReference()    {}
func (*objectRef) isReference()        {}
func (enumRef) isReference()           {}

type fieldDesc struct {
	name     string
	typeCode byte
}

// field is the value of one field of an object being read.
type field interface {
	isField()
}

type primitiveField struct{ Primitive }

type referenceField Handle

// loopField refers to an object that was still being read when the field
// was, identified by its index in the stack of pending handles counted from
// the outermost.
type loopField int

func (primitiveField) isField() {}
func (referenceField) isField() {}
func (loopField) isField()      {}

// annotation is one element of data written by a custom writeObject or
// writeExternal method.
type annotation interface {
	isAnnotation()
}

type refAnnotation Handle

type blockAnnotation []byte

func (refAnnotation) isAnnotation()   {}
func (blockAnnotation) isAnnotation() {}

// readStep is one step of reading an object's serial data.
type readStep struct {
	fields      []fieldDesc
	annotations bool
}

func asString(ref reference) (string, error) {
	s, ok := ref.(stringRef)
	if !ok {
		return "", invalidReference("string")
	}
	return string(s), nil
}

func asClassOutline(ref reference) (*classOutline, error) {
	c, ok := ref.(*classOutline)
	if !ok {
		return nil, invalidReference("class outline")
	}
	return c, nil
}
