package jserial

import (
	"sort"
)

// Value is a decoded Java value. It is one of Null, *Object, String, Enum,
// a Primitive, Array, PrimitiveArray, Class or Loop.
//
// Values are owned trees: a reference back to an object that contains it is
// represented by Loop instead of sharing the object.
type Value interface {
	isValue()
}

// Null is a Java null reference.
type Null struct{}

// String is a java.lang.String.
type String string

// Enum is an enum constant. Only the class and constant names are available.
type Enum struct {
	Class    string
	Constant string
}

// Array is an array of objects.
type Array []Value

// PrimitiveArray is an array of primitives.
type PrimitiveArray []Primitive

// Class is a serialized java.lang.Class, eg String.class. Only the name is
// recorded.
type Class struct {
	Name string
}

// Loop is a reference to an object or array that encloses this value. The
// magnitude is the depth of the target counted from the outermost enclosing
// container, which is at depth 0; the value itself is zero or negative. In
// outer.next = inner, inner.next = outer the inner field is Loop(0), and
// inner.next = inner would be Loop(-1).
type Loop int32

func (Null) isValue()           {}
func (*Object) isValue()        {}
func (String) isValue()         {}
func (Enum) isValue()           {}
func (Array) isValue()          {}
func (PrimitiveArray) isValue() {}
func (Class) isValue()          {}
func (Loop) isValue()           {}

// Object is a serialized Java object: its class, its field values and any
// data added by custom writeObject/writeExternal methods.
type Object struct {
	class  string
	fields map[string]Value
	// One list per class in the hierarchy, superclass first.
	annotations [][]Content
}

// NewObject builds an Object, mostly for tests of code that consumes values.
func NewObject(class string, fields map[string]Value, annotations ...[]Content) *Object {
	if fields == nil {
		fields = make(map[string]Value)
	}
	return &Object{class: class, fields: fields, annotations: annotations}
}

// ClassName returns the fully qualified class name of the object.
func (o *Object) ClassName() string {
	return o.class
}

// Field returns the value of a field. A field holding null is returned as
// Null{}, true; a field that was not written returns false.
func (o *Object) Field(name string) (Value, bool) {
	v, ok := o.fields[name]
	return v, ok
}

// FieldNames returns the names of all fields in sorted order.
func (o *Object) FieldNames() []string {
	names := make([]string, 0, len(o.fields))
	for name := range o.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FieldCount returns the number of fields written for the object.
func (o *Object) FieldCount() int {
	return len(o.fields)
}

// Annotation returns an iterator over the annotations written by the class at
// level i of the hierarchy. If Child extends Parent, level 0 holds what Parent
// wrote and level 1 what Child wrote.
func (o *Object) Annotation(i int) (*AnnotationIter, bool) {
	if i < 0 || i >= len(o.annotations) {
		return nil, false
	}
	return NewAnnotationIter(o.annotations[i]), true
}

// Annotations returns the raw annotations of every level.
func (o *Object) Annotations() [][]Content {
	return o.annotations
}

// AnnotationCount returns the number of levels of the hierarchy that wrote
// at least one annotation.
func (o *Object) AnnotationCount() int {
	n := 0
	for _, a := range o.annotations {
		if len(a) > 0 {
			n++
		}
	}
	return n
}

// IsNull reports whether v is a null reference.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok
}
