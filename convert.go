package jserial

// FromJava is implemented by types that can populate themselves from a
// decoded value.
type FromJava interface {
	FromJava(v Value) error
}

// Converter converts a decoded value into a Go value of type T.
type Converter[T any] func(v Value) (T, error)

// ToString converts a java.lang.String. Null is a NullPointer error rather
// than a type mismatch.
func ToString(v Value) (string, error) {
	switch v := v.(type) {
	case String:
		return string(v), nil
	case Null:
		return "", nullPointer()
	default:
		return "", invalidType("string")
	}
}

// unbox accepts either the primitive P or the boxed java.lang.<boxed> object
// wrapping it in its value field.
func unbox[P Primitive](v Value, boxed, goType string) (P, error) {
	var zero P
	if p, ok := v.(P); ok {
		return p, nil
	}
	obj, ok := v.(*Object)
	if !ok {
		return zero, invalidType(boxed)
	}
	class := "java.lang." + boxed
	if obj.ClassName() != class {
		return zero, invalidType(class)
	}
	f, ok := obj.Field("value")
	if !ok {
		return zero, fieldNotFound("value")
	}
	p, ok := f.(P)
	if !ok {
		return zero, invalidType(goType)
	}
	return p, nil
}

// ToByte converts a byte or java.lang.Byte.
func ToByte(v Value) (uint8, error) {
	p, err := unbox[Byte](v, "Byte", "uint8")
	return uint8(p), err
}

// ToShort converts a short or java.lang.Short.
func ToShort(v Value) (int16, error) {
	p, err := unbox[Short](v, "Short", "int16")
	return int16(p), err
}

// ToInt converts an int or java.lang.Integer.
func ToInt(v Value) (int32, error) {
	p, err := unbox[Int](v, "Integer", "int32")
	return int32(p), err
}

// ToLong converts a long or java.lang.Long.
func ToLong(v Value) (int64, error) {
	p, err := unbox[Long](v, "Long", "int64")
	return int64(p), err
}

// ToFloat converts a float or java.lang.Float.
func ToFloat(v Value) (float32, error) {
	p, err := unbox[Float](v, "Float", "float32")
	return float32(p), err
}

// ToDouble converts a double or java.lang.Double.
func ToDouble(v Value) (float64, error) {
	p, err := unbox[Double](v, "Double", "float64")
	return float64(p), err
}

// ToChar converts a char or java.lang.Character.
func ToChar(v Value) (rune, error) {
	p, err := unbox[Char](v, "Character", "rune")
	return rune(p), err
}

// ToBool converts a boolean or java.lang.Boolean.
func ToBool(v Value) (bool, error) {
	p, err := unbox[Boolean](v, "Boolean", "bool")
	return bool(p), err
}

// ToObject requires v to be an object.
func ToObject(v Value) (*Object, error) {
	switch v := v.(type) {
	case *Object:
		return v, nil
	case Null:
		return nil, nullPointer()
	default:
		return nil, invalidType("object")
	}
}

// Optional maps null to a nil pointer and converts anything else with c.
func Optional[T any](c Converter[T]) Converter[*T] {
	return func(v Value) (*T, error) {
		if IsNull(v) {
			return nil, nil
		}
		t, err := c(v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
}

// Pointer converts with c and returns the result boxed.
func Pointer[T any](c Converter[T]) Converter[*T] {
	return func(v Value) (*T, error) {
		t, err := c(v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
}

// SliceOf converts an array element by element. Elements of a primitive
// array are passed to c as primitive values.
func SliceOf[T any](c Converter[T]) Converter[[]T] {
	return func(v Value) ([]T, error) {
		switch v := v.(type) {
		case Array:
			out := make([]T, 0, len(v))
			for _, item := range v {
				t, err := c(item)
				if err != nil {
					return nil, err
				}
				out = append(out, t)
			}
			return out, nil
		case PrimitiveArray:
			out := make([]T, 0, len(v))
			for _, item := range v {
				t, err := c(item)
				if err != nil {
					return nil, err
				}
				out = append(out, t)
			}
			return out, nil
		default:
			return nil, invalidType("array")
		}
	}
}

// Into returns a converter for a type implementing FromJava through its
// pointer.
func Into[T any, PT interface {
	*T
	FromJava
}]() Converter[T] {
	return func(v Value) (T, error) {
		var t T
		err := PT(&t).FromJava(v)
		return t, err
	}
}

// FieldAs converts the named field of obj with c.
func FieldAs[T any](obj *Object, name string, c Converter[T]) (T, error) {
	v, ok := obj.Field(name)
	if !ok {
		var zero T
		return zero, fieldNotFound(name)
	}
	return c(v)
}

// ReadAs reads the next object from dec and converts it with c.
func ReadAs[T any](dec *Decoder, c Converter[T]) (T, error) {
	v, err := dec.ReadValue()
	if err != nil {
		var zero T
		return zero, err
	}
	return c(v)
}

// ExpectClass returns an IncorrectClass error unless obj is of class name.
func ExpectClass(obj *Object, name string) error {
	if obj.ClassName() != name {
		return &ConversionError{Kind: KindIncorrectClass, Expected: name, Found: obj.ClassName()}
	}
	return nil
}

// UnexpectedClass returns the error for a class no conversion accepts, such
// as an unknown subclass or enum type.
func UnexpectedClass(name string) error {
	return &ConversionError{Kind: KindUnexpectedClass, Found: name}
}

// RequireAnnotation returns the iterator for annotation level i of obj or a
// MissingAnnotations error.
func RequireAnnotation(obj *Object, i int) (*AnnotationIter, error) {
	a, ok := obj.Annotation(i)
	if !ok {
		return nil, &ConversionError{Kind: KindMissingAnnotations, Index: i}
	}
	return a, nil
}
