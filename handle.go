package jserial

// handleTable assigns handles to records as they are read and keeps every
// registered record for later back references. Handles of records still
// being read are kept on a stack; a record may only be registered once
// everything it contains has been.
type handleTable struct {
	refs    map[Handle]reference
	next    Handle
	pending []Handle
}

func newHandleTable() *handleTable {
	return &handleTable{
		refs: make(map[Handle]reference),
		next: baseWireHandle,
	}
}

// assign returns the next handle and marks it as under construction.
func (t *handleTable) assign() Handle {
	h := t.next
	t.pending = append(t.pending, h)
	t.next++
	return h
}

func (t *handleTable) register(h Handle, ref reference) error {
	n := len(t.pending)
	if n == 0 || t.pending[n-1] != h {
		return invalidStream("object was registered before something it references")
	}
	t.pending = t.pending[:n-1]
	t.refs[h] = ref
	return nil
}

func (t *handleTable) lookup(h Handle) (reference, error) {
	if h == NullHandle {
		return nullRef{}, nil
	}
	ref, ok := t.refs[h]
	if !ok {
		return nil, unknownReference(h)
	}
	return ref, nil
}

// position returns the index of h in the stack of handles under
// construction.
func (t *handleTable) position(h Handle) (int, bool) {
	for i, p := range t.pending {
		if p == h {
			return i, true
		}
	}
	return 0, false
}

// reset forgets every registered record and restarts numbering. Records
// still under construction stay pending.
func (t *handleTable) reset() {
	t.refs = make(map[Handle]reference)
	t.next = baseWireHandle
}
