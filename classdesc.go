package jserial

func (dec *Decoder) readClassDesc() (Handle, error) {
	name, err := dec.s.readUTF()
	if err != nil {
		return 0, err
	}
	suid, err := dec.s.readU64()
	if err != nil {
		return 0, err
	}
	// The handle is assigned before the rest of the descriptor so fields
	// may refer back to the class being described.
	h := dec.handles.assign()
	flagByte, err := dec.s.readU8()
	if err != nil {
		return 0, err
	}
	flags, err := classFlagFrom(flagByte)
	if err != nil {
		return 0, err
	}
	numFields, err := dec.s.readU16()
	if err != nil {
		return 0, err
	}
	fields := make([]fieldDesc, 0, int(numFields))
	for i := 0; i < int(numFields); i++ {
		tcode, err := dec.s.readU8()
		if err != nil {
			return 0, err
		}
		fname, err := dec.s.readUTF()
		if err != nil {
			return 0, err
		}
		if tcode == 'L' || tcode == '[' {
			// Object and array fields are followed by their type as a
			// string record, eg "Ljava/lang/String;".
			rec, err := dec.readRecord()
			if err != nil {
				return 0, err
			}
			if rec.kind != recordHandle {
				return 0, invalidReference("reference handle")
			}
		}
		fields = append(fields, fieldDesc{name: fname, typeCode: tcode})
	}
	annotations, err := dec.readAnnotations()
	if err != nil {
		return 0, err
	}
	rec, err := dec.readRecord()
	if err != nil {
		return 0, err
	}
	if rec.kind != recordHandle {
		return 0, invalidStream("super class is neither a class descriptor nor null")
	}
	outline := &classOutline{
		name:        name,
		serialUID:   suid,
		superClass:  rec.handle,
		fields:      fields,
		annotations: annotations,
		flags:       flags,
	}
	return h, dec.handles.register(h, outline)
}

func (dec *Decoder) readProxyClassDesc() (Handle, error) {
	h := dec.handles.assign()
	count, err := dec.s.readU32()
	if err != nil {
		return 0, err
	}
	var interfaces []string
	for i := uint32(0); i < count; i++ {
		name, err := dec.s.readUTF()
		if err != nil {
			return 0, err
		}
		interfaces = append(interfaces, name)
	}
	annotations, err := dec.readAnnotations()
	if err != nil {
		return 0, err
	}
	rec, err := dec.readRecord()
	if err != nil {
		return 0, err
	}
	class, err := rec.ref()
	if err != nil {
		return 0, err
	}
	proxy := &proxyOutline{
		interfaces:  interfaces,
		annotations: annotations,
		class:       class,
	}
	return h, dec.handles.register(h, proxy)
}

// readAnnotations reads records up to the next TC_ENDBLOCKDATA.
func (dec *Decoder) readAnnotations() ([]annotation, error) {
	var annotations []annotation
	for {
		rec, err := dec.readRecord()
		if err != nil {
			return nil, err
		}
		switch rec.kind {
		case recordHandle:
			annotations = append(annotations, refAnnotation(rec.handle))
		case recordBlock:
			annotations = append(annotations, blockAnnotation(rec.data))
		case recordEnd:
			return annotations, nil
		}
	}
}

// classFrom resolves h to a class outline, following proxy descriptors to
// the class they wrap.
func (dec *Decoder) classFrom(h Handle) (*classOutline, error) {
	for hops := 0; ; hops++ {
		if hops > dec.maxDepth {
			return nil, invalidStream("cyclic proxy class descriptor")
		}
		ref, err := dec.handles.lookup(h)
		if err != nil {
			return nil, err
		}
		switch r := ref.(type) {
		case *classOutline:
			return r, nil
		case *proxyOutline:
			h = r.class
		default:
			return nil, invalidReference("class")
		}
	}
}

// buildReadList returns the order in which the serial data of an instance
// of class h is written: superclass fields first. A class written in
// externalizable block mode contributes only annotations, and its ancestors
// contribute nothing.
func (dec *Decoder) buildReadList(h Handle) ([]readStep, error) {
	var chain []*classOutline
	for {
		if len(chain) > dec.maxDepth {
			return nil, invalidStream("cyclic class hierarchy")
		}
		class, err := dec.classFrom(h)
		if err != nil {
			return nil, err
		}
		chain = append(chain, class)
		if class.flags == FlagExtBlock || class.superClass == NullHandle {
			break
		}
		h = class.superClass
	}
	steps := make([]readStep, 0, 2*len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		class := chain[i]
		if class.flags == FlagExtBlock {
			steps = append(steps, readStep{annotations: true})
			continue
		}
		steps = append(steps, readStep{fields: class.fields})
		if class.flags == FlagWrite {
			steps = append(steps, readStep{annotations: true})
		}
	}
	return steps, nil
}
