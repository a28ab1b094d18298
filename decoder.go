package jserial

import (
	"bytes"
	"io"

	"go.uber.org/zap"
)

// Decoder reads Java objects from a serialization stream. Each Decoder owns
// its handle table; it is not safe for concurrent use, but independent
// decoders need no coordination.
type Decoder struct {
	s         *streamReader
	handles   *handleTable
	logger    *zap.Logger
	version   uint16
	maxDepth  int
	maxValues int
	depth     int
}

// NewDecoder checks the stream header and returns a decoder positioned at
// the first record.
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	dec := &Decoder{
		s:         newStreamReader(r),
		handles:   newHandleTable(),
		logger:    zap.NewNop(),
		maxDepth:  defaultMaxDepth,
		maxValues: defaultMaxValues,
	}
	for _, opt := range opts {
		opt(dec)
	}
	if err := dec.readHeader(); err != nil {
		return nil, err
	}
	return dec, nil
}

// Unmarshal decodes the first record of a serialized stream held in data.
func Unmarshal(data []byte, opts ...Option) (Content, error) {
	dec, err := NewDecoder(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}
	return dec.Read()
}

func (dec *Decoder) readHeader() error {
	magic, err := dec.s.readU16()
	if err != nil {
		return err
	}
	version, err := dec.s.readU16()
	if err != nil {
		return err
	}
	if magic != StreamMagic {
		return &StreamError{Kind: KindNonJavaObject, Magic: magic}
	}
	if version != StreamVersion {
		return &StreamError{Kind: KindUnknownVersion, Version: version}
	}
	dec.version = version
	return nil
}

// Version returns the protocol version of the stream.
func (dec *Decoder) Version() uint16 {
	return dec.version
}

// Read reads the next top-level item from the stream. Any error aborts the
// item; no partially read object is returned.
func (dec *Decoder) Read() (Content, error) {
	rec, err := dec.readRecord()
	if err != nil {
		return nil, err
	}
	switch rec.kind {
	case recordBlock:
		return BlockContent(rec.data), nil
	case recordEnd:
		return nil, invalidStream("unexpected end block data mark")
	}
	v, err := dec.valueFrom(rec.handle)
	if err != nil {
		return nil, err
	}
	return ObjectContent{Value: v}, nil
}

// ReadValue reads the next item and requires it to be an object rather than
// block data.
func (dec *Decoder) ReadValue() (Value, error) {
	c, err := dec.Read()
	if err != nil {
		return nil, err
	}
	switch c := c.(type) {
	case ObjectContent:
		return c.Value, nil
	case BlockContent:
		return nil, unexpectedBlockData(c)
	}
	return nil, invalidType("object")
}

// ReadInto reads the next object and converts it with dst.FromJava.
func (dec *Decoder) ReadInto(dst FromJava) error {
	v, err := dec.ReadValue()
	if err != nil {
		return err
	}
	return dst.FromJava(v)
}

// ReadAll reads items until the stream ends cleanly between two records.
func (dec *Decoder) ReadAll() ([]Content, error) {
	var contents []Content
	for {
		if _, err := dec.s.r.Peek(1); err == io.EOF {
			return contents, nil
		}
		c, err := dec.Read()
		if err != nil {
			return contents, err
		}
		contents = append(contents, c)
	}
}

type recordKind int

const (
	recordHandle recordKind = iota
	recordBlock
	recordEnd
)

// record is the result of reading one marker and whatever follows it.
type record struct {
	kind   recordKind
	handle Handle
	data   []byte
}

func handleRecord(h Handle) record {
	return record{kind: recordHandle, handle: h}
}

func (r record) ref() (Handle, error) {
	if r.kind != recordHandle {
		return 0, invalidReference("reference handle")
	}
	return r.handle, nil
}

func (dec *Decoder) readRecord() (record, error) {
	if dec.depth >= dec.maxDepth {
		return record{}, invalidStream("maximum nesting depth exceeded")
	}
	dec.depth++
	defer func() { dec.depth-- }()

	for {
		m, err := dec.s.readMarker()
		if err != nil {
			return record{}, err
		}
		if m != MarkerReset {
			return dec.dispatch(m)
		}
		dec.logger.Debug("stream reset", zap.Uint32("next_handle", uint32(dec.handles.next)))
		dec.handles.reset()
	}
}

func (dec *Decoder) dispatch(m Marker) (record, error) {
	var (
		h   Handle
		err error
	)
	switch m {
	case MarkerNull:
		return handleRecord(NullHandle), nil
	case MarkerReference:
		h, err = dec.readPrevObject()
	case MarkerObject:
		h, err = dec.readObject()
	case MarkerArray:
		h, err = dec.readArray()
	case MarkerEnum:
		h, err = dec.readEnum()
	case MarkerClassDesc:
		h, err = dec.readClassDesc()
	case MarkerProxyClassDesc:
		h, err = dec.readProxyClassDesc()
	case MarkerString:
		h, err = dec.readString(false)
	case MarkerLongString:
		h, err = dec.readString(true)
	case MarkerClass:
		h, err = dec.readClass()
	case MarkerException:
		h, err = dec.readException()
	case MarkerBlockData:
		return dec.readBlockData(false)
	case MarkerBlockDataLong:
		return dec.readBlockData(true)
	case MarkerEndBlockData:
		return record{kind: recordEnd}, nil
	default:
		return record{}, &StreamError{Kind: KindUnknownMark, Mark: byte(m)}
	}
	if err != nil {
		return record{}, err
	}
	return handleRecord(h), nil
}

func (dec *Decoder) readPrevObject() (Handle, error) {
	h, err := dec.s.readU32()
	return Handle(h), err
}

func (dec *Decoder) readBlockData(long bool) (record, error) {
	var n uint64
	if long {
		l, err := dec.s.readU32()
		if err != nil {
			return record{}, err
		}
		n = uint64(l)
	} else {
		l, err := dec.s.readU8()
		if err != nil {
			return record{}, err
		}
		n = uint64(l)
	}
	data, err := dec.s.readBytes(n)
	if err != nil {
		return record{}, err
	}
	return record{kind: recordBlock, data: data}, nil
}

func (dec *Decoder) readString(long bool) (Handle, error) {
	h := dec.handles.assign()
	var (
		text string
		err  error
	)
	if long {
		text, err = dec.s.readLongUTF()
	} else {
		text, err = dec.s.readUTF()
	}
	if err != nil {
		return 0, err
	}
	return h, dec.handles.register(h, stringRef(text))
}

// readException reads an exception that aborted the writer. The exception
// object lives in a table that is discarded again once it has been read, so
// it cannot be handed to the caller.
func (dec *Decoder) readException() (Handle, error) {
	dec.handles.reset()
	rec, err := dec.readRecord()
	if err != nil {
		return 0, err
	}
	h, err := rec.ref()
	if err != nil {
		return 0, err
	}
	if class, err := dec.className(h); err == nil {
		dec.logger.Debug("exception record in stream", zap.String("class", class))
	}
	dec.handles.reset()
	return 0, notImplemented("reading exceptions written to the stream")
}

// className returns the class name of an object handle, for logging.
func (dec *Decoder) className(h Handle) (string, error) {
	ref, err := dec.handles.lookup(h)
	if err != nil {
		return "", err
	}
	obj, ok := ref.(*objectRef)
	if !ok {
		return "", invalidReference("object")
	}
	class, err := dec.classFrom(obj.class)
	if err != nil {
		return "", err
	}
	return class.name, nil
}
