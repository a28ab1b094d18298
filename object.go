package jserial

import (
	"math"
	"unicode/utf16"
)

func (dec *Decoder) readObject() (Handle, error) {
	rec, err := dec.readRecord()
	if err != nil {
		return 0, err
	}
	class, err := rec.ref()
	if err != nil {
		return 0, err
	}
	h := dec.handles.assign()
	steps, err := dec.buildReadList(class)
	if err != nil {
		return 0, err
	}
	obj := &objectRef{
		class:  class,
		fields: make(map[string]field),
	}
	for _, step := range steps {
		if step.annotations {
			annotations, err := dec.readAnnotations()
			if err != nil {
				return 0, err
			}
			obj.annotations = append(obj.annotations, annotations)
			continue
		}
		for _, fd := range step.fields {
			f, err := dec.readField(fd.typeCode)
			if err != nil {
				return 0, err
			}
			obj.fields[fd.name] = f
		}
	}
	return h, dec.handles.register(h, obj)
}

func (dec *Decoder) readField(typeCode byte) (field, error) {
	if typeCode != 'L' && typeCode != '[' {
		p, err := dec.readPrimitive(typeCode)
		if err != nil {
			return nil, err
		}
		return primitiveField{p}, nil
	}
	rec, err := dec.readRecord()
	if err != nil {
		return nil, err
	}
	if rec.kind != recordHandle {
		return nil, invalidReference("object")
	}
	if _, err := dec.handles.lookup(rec.handle); err == nil {
		return referenceField(rec.handle), nil
	}
	// Not registered yet: the field refers to an object that is itself
	// still being read.
	pos, ok := dec.handles.position(rec.handle)
	if !ok {
		return nil, unknownReference(rec.handle)
	}
	return loopField(pos), nil
}

func (dec *Decoder) readPrimitive(typeCode byte) (Primitive, error) {
	switch typeCode {
	case 'B':
		v, err := dec.s.readU8()
		return Byte(v), err
	case 'C':
		v, err := dec.s.readU16()
		if err != nil {
			return nil, err
		}
		if utf16.IsSurrogate(rune(v)) {
			return nil, invalidStream("invalid character")
		}
		return Char(v), nil
	case 'D':
		v, err := dec.s.readU64()
		return Double(math.Float64frombits(v)), err
	case 'F':
		v, err := dec.s.readU32()
		return Float(math.Float32frombits(v)), err
	case 'I':
		v, err := dec.s.readU32()
		return Int(int32(v)), err
	case 'J':
		v, err := dec.s.readU64()
		return Long(int64(v)), err
	case 'S':
		v, err := dec.s.readU16()
		return Short(int16(v)), err
	case 'Z':
		v, err := dec.s.readU8()
		return Boolean(v == 1), err
	default:
		return nil, unrecognisedType(rune(typeCode))
	}
}

func (dec *Decoder) readArray() (Handle, error) {
	rec, err := dec.readRecord()
	if err != nil {
		return 0, err
	}
	classHandle, err := rec.ref()
	if err != nil {
		return 0, err
	}
	h := dec.handles.assign()
	l, err := dec.s.readU32()
	if err != nil {
		return 0, err
	}
	n := int32(l)
	if n < 0 {
		return 0, invalidStream("negative array length")
	}
	class, err := dec.classFrom(classHandle)
	if err != nil {
		return 0, err
	}
	// Array class names are field descriptors: "[I", "[Ljava.lang.String;".
	if len(class.name) < 2 {
		return 0, unrecognisedType(' ')
	}
	capacity := int(n)
	if capacity > 1024 {
		capacity = 1024
	}
	switch elem := class.name[1]; {
	case elem == 'L' || elem == '[':
		data := make(arrayRef, 0, capacity)
		for i := int32(0); i < n; i++ {
			rec, err := dec.readRecord()
			if err != nil {
				return 0, err
			}
			eh, err := rec.ref()
			if err != nil {
				return 0, err
			}
			data = append(data, eh)
		}
		return h, dec.handles.register(h, data)
	case isPrimitiveCode(elem):
		data := make(primitiveArrayRef, 0, capacity)
		for i := int32(0); i < n; i++ {
			p, err := dec.readPrimitive(elem)
			if err != nil {
				return 0, err
			}
			data = append(data, p)
		}
		return h, dec.handles.register(h, data)
	default:
		return 0, unrecognisedType(rune(elem))
	}
}

func (dec *Decoder) readEnum() (Handle, error) {
	rec, err := dec.readRecord()
	if err != nil {
		return 0, err
	}
	class, err := rec.ref()
	if err != nil {
		return 0, err
	}
	h := dec.handles.assign()
	rec, err = dec.readRecord()
	if err != nil {
		return 0, err
	}
	constant, err := rec.ref()
	if err != nil {
		return 0, err
	}
	return h, dec.handles.register(h, enumRef{class: class, constant: constant})
}

// readClass reads a serialized java.lang.Class such as String.class, not the
// descriptor of an object's class.
func (dec *Decoder) readClass() (Handle, error) {
	rec, err := dec.readRecord()
	if err != nil {
		return 0, err
	}
	class, err := rec.ref()
	if err != nil {
		return 0, err
	}
	h := dec.handles.assign()
	return h, dec.handles.register(h, classObjectRef(class))
}
