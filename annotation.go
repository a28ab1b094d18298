package jserial

import (
	"encoding/binary"
	"math"
	"unicode/utf16"
)

type annotationState int

const (
	annotationComplete annotationState = iota
	annotationValue
	annotationBlock
)

// AnnotationIter reads the data a class wrote with a custom writeObject or
// writeExternal method, in the manner of java.io.ObjectInputStream: numeric
// reads consume block data, ReadObject consumes one object.
type AnnotationIter struct {
	queue    []Content
	state    annotationState
	value    Value
	consumed bool
	block    []byte
}

// NewAnnotationIter returns an iterator over contents.
func NewAnnotationIter(contents []Content) *AnnotationIter {
	a := &AnnotationIter{}
	if len(contents) > 0 {
		a.switchTo(contents[0])
		a.queue = contents[1:]
	}
	return a
}

func (a *AnnotationIter) switchTo(c Content) {
	switch c := c.(type) {
	case BlockContent:
		a.state, a.block, a.value = annotationBlock, c, nil
	case ObjectContent:
		a.state, a.value, a.consumed, a.block = annotationValue, c.Value, false, nil
	default:
		a.state = annotationComplete
	}
}

// advance moves to the next content once the current block is exhausted or
// the current object has been read.
func (a *AnnotationIter) advance() {
	for {
		done := a.state == annotationValue && a.consumed ||
			a.state == annotationBlock && len(a.block) == 0
		if !done {
			return
		}
		if len(a.queue) == 0 {
			a.state, a.value, a.block = annotationComplete, nil, nil
			return
		}
		a.switchTo(a.queue[0])
		a.queue = a.queue[1:]
	}
}

func (a *AnnotationIter) readBytes(n int) ([]byte, error) {
	a.advance()
	switch a.state {
	case annotationBlock:
		if len(a.block) < n {
			return nil, invalidType("not enough data")
		}
		p := a.block[:n]
		a.block = a.block[n:]
		return p, nil
	case annotationValue:
		return nil, invalidType("expected block data")
	default:
		return nil, invalidType("end of annotations")
	}
}

// ReadU8 reads a byte, as ObjectInputStream.readByte.
func (a *AnnotationIter) ReadU8() (uint8, error) {
	p, err := a.readBytes(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// ReadBoolean reads a boolean, as ObjectInputStream.readBoolean.
func (a *AnnotationIter) ReadBoolean() (bool, error) {
	b, err := a.ReadU8()
	return b == 1, err
}

// ReadI16 reads a short, as ObjectInputStream.readShort.
func (a *AnnotationIter) ReadI16() (int16, error) {
	p, err := a.readBytes(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(p)), nil
}

// ReadI32 reads an int, as ObjectInputStream.readInt.
func (a *AnnotationIter) ReadI32() (int32, error) {
	p, err := a.readBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}

// ReadI64 reads a long, as ObjectInputStream.readLong.
func (a *AnnotationIter) ReadI64() (int64, error) {
	p, err := a.readBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

// ReadF32 reads a float, as ObjectInputStream.readFloat.
func (a *AnnotationIter) ReadF32() (float32, error) {
	p, err := a.readBytes(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(p)), nil
}

// ReadF64 reads a double, as ObjectInputStream.readDouble.
func (a *AnnotationIter) ReadF64() (float64, error) {
	p, err := a.readBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(p)), nil
}

// ReadChar reads a char, as ObjectInputStream.readChar. Unpaired surrogates
// are rejected.
func (a *AnnotationIter) ReadChar() (rune, error) {
	p, err := a.readBytes(2)
	if err != nil {
		return 0, err
	}
	c := rune(binary.BigEndian.Uint16(p))
	if utf16.IsSurrogate(c) {
		return 0, invalidType("valid character")
	}
	return c, nil
}

// ReadObject reads the next object, as ObjectInputStream.readObject.
func (a *AnnotationIter) ReadObject() (Value, error) {
	a.advance()
	switch a.state {
	case annotationValue:
		a.consumed = true
		return a.value, nil
	case annotationBlock:
		return nil, unexpectedBlockData(append([]byte(nil), a.block...))
	default:
		return nil, nullPointer()
	}
}

// ReadObjectInto reads the next object and converts it with dst.FromJava.
func (a *AnnotationIter) ReadObjectInto(dst FromJava) error {
	v, err := a.ReadObject()
	if err != nil {
		return err
	}
	return dst.FromJava(v)
}

// ReadObjectAs reads the next object from a and converts it with c.
func ReadObjectAs[T any](a *AnnotationIter, c Converter[T]) (T, error) {
	v, err := a.ReadObject()
	if err != nil {
		var zero T
		return zero, err
	}
	return c(v)
}
