package jserial

// materializer copies records out of the handle table into an owned Value
// tree.
type materializer struct {
	dec *Decoder
	// Handles of the arrays and objects currently being copied.
	stack  []Handle
	budget int
}

func (dec *Decoder) valueFrom(h Handle) (Value, error) {
	m := &materializer{dec: dec, budget: dec.maxValues}
	return m.value(h)
}

func (m *materializer) value(h Handle) (Value, error) {
	if h == NullHandle {
		return Null{}, nil
	}
	// Arrays and annotations may contain an enclosing container, which the
	// field loop check does not cover. The loop is its depth from the root,
	// as for fields.
	for i, enclosing := range m.stack {
		if enclosing == h {
			return Loop(-int32(i)), nil
		}
	}
	if m.budget--; m.budget < 0 {
		return nil, invalidStream("too many values")
	}
	if len(m.stack) >= m.dec.maxDepth {
		return nil, invalidStream("maximum nesting depth exceeded")
	}
	ref, err := m.dec.handles.lookup(h)
	if err != nil {
		return nil, err
	}
	switch r := ref.(type) {
	case nullRef:
		return Null{}, nil
	case stringRef:
		return String(r), nil
	case primitiveArrayRef:
		return append(make(PrimitiveArray, 0, len(r)), r...), nil
	case arrayRef:
		m.stack = append(m.stack, h)
		values := make(Array, 0, len(r))
		for _, eh := range r {
			v, err := m.value(eh)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		m.stack = m.stack[:len(m.stack)-1]
		return values, nil
	case enumRef:
		classRef, err := m.dec.handles.lookup(r.class)
		if err != nil {
			return nil, err
		}
		class, err := asClassOutline(classRef)
		if err != nil {
			return nil, err
		}
		constRef, err := m.dec.handles.lookup(r.constant)
		if err != nil {
			return nil, err
		}
		constant, err := asString(constRef)
		if err != nil {
			return nil, err
		}
		return Enum{Class: class.name, Constant: constant}, nil
	case classObjectRef:
		classRef, err := m.dec.handles.lookup(Handle(r))
		if err != nil {
			return nil, err
		}
		class, err := asClassOutline(classRef)
		if err != nil {
			return nil, err
		}
		return Class{Name: class.name}, nil
	case *objectRef:
		return m.object(h, r)
	default:
		return nil, notImplemented("value from reference")
	}
}

func (m *materializer) object(h Handle, r *objectRef) (Value, error) {
	class, err := m.dec.classFrom(r.class)
	if err != nil {
		return nil, err
	}
	m.stack = append(m.stack, h)
	obj := &Object{
		class:  class.name,
		fields: make(map[string]Value, len(r.fields)),
	}
	for name, f := range r.fields {
		var v Value
		switch f := f.(type) {
		case primitiveField:
			v = f.Primitive
		case loopField:
			v = Loop(-int32(f))
		case referenceField:
			if v, err = m.value(Handle(f)); err != nil {
				return nil, err
			}
		}
		obj.fields[name] = v
	}
	for _, level := range r.annotations {
		contents := make([]Content, 0, len(level))
		for _, a := range level {
			switch a := a.(type) {
			case refAnnotation:
				v, err := m.value(Handle(a))
				if err != nil {
					return nil, err
				}
				contents = append(contents, ObjectContent{Value: v})
			case blockAnnotation:
				contents = append(contents, BlockContent(append([]byte(nil), a...)))
			}
		}
		obj.annotations = append(obj.annotations, contents)
	}
	m.stack = m.stack[:len(m.stack)-1]
	return obj, nil
}
