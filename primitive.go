package jserial

import (
	"fmt"
	"strconv"
)

// Primitive is one of Java's eight primitive values. Boxed primitives such as
// java.lang.Integer are decoded as objects, not as primitives.
type Primitive interface {
	Value
	// TypeCode returns the field type code of the primitive, eg 'I' for int.
	TypeCode() byte
	String() string
}

type (
	// Byte is a Java byte. Like the original wire value it is unsigned.
	Byte uint8
	// Char is a Java char.
	Char rune
	// Double is a Java double.
	Double float64
	// Float is a Java float.
	Float float32
	// Int is a Java int.
	Int int32
	// Long is a Java long.
	Long int64
	// Short is a Java short.
	Short int16
	// Boolean is a Java boolean.
	Boolean bool
)

func (Byte) TypeCode() byte    { return 'B' }
func (Char) TypeCode() byte    { return 'C' }
func (Double) TypeCode() byte  { return 'D' }
func (Float) TypeCode() byte   { return 'F' }
func (Int) TypeCode() byte     { return 'I' }
func (Long) TypeCode() byte    { return 'J' }
func (Short) TypeCode() byte   { return 'S' }
func (Boolean) TypeCode() byte { return 'Z' }

func (b Byte) String() string    { return fmt.Sprintf("%X", uint8(b)) }
func (c Char) String() string    { return string(rune(c)) }
func (d Double) String() string  { return strconv.FormatFloat(float64(d), 'f', -1, 64) }
func (f Float) String() string   { return strconv.FormatFloat(float64(f), 'f', -1, 32) }
func (i Int) String() string     { return strconv.FormatInt(int64(i), 10) }
func (l Long) String() string    { return strconv.FormatInt(int64(l), 10) }
func (s Short) String() string   { return strconv.FormatInt(int64(s), 10) }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

func (Byte) isValue()    {}
func (Char) isValue()    {}
func (Double) isValue()  {}
func (Float) isValue()   {}
func (Int) isValue()     {}
func (Long) isValue()    {}
func (Short) isValue()   {}
func (Boolean) isValue() {}

// isPrimitiveCode reports whether c is the type code of a primitive.
func isPrimitiveCode(c byte) bool {
	switch c {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		return true
	}
	return false
}
