package jserial

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf8"
)

// streamReader reads the big-endian primitives the protocol is built from.
// Every short read is an error.
type streamReader struct {
	r *bufio.Reader
}

func newStreamReader(r io.Reader) *streamReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &streamReader{r: br}
	}
	return &streamReader{r: bufio.NewReader(r)}
}

func (s *streamReader) readFull(p []byte) error {
	if _, err := io.ReadFull(s.r, p); err != nil {
		return endOfStream(err)
	}
	return nil
}

func (s *streamReader) readU8() (uint8, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, endOfStream(err)
	}
	return b, nil
}

func (s *streamReader) readU16() (uint16, error) {
	var p [2]byte
	if err := s.readFull(p[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p[:]), nil
}

func (s *streamReader) readU32() (uint32, error) {
	var p [4]byte
	if err := s.readFull(p[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p[:]), nil
}

func (s *streamReader) readU64() (uint64, error) {
	var p [8]byte
	if err := s.readFull(p[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p[:]), nil
}

// readBytes reads exactly n bytes. The buffer grows with the data actually
// read so a corrupt length cannot force a huge allocation.
func (s *streamReader) readBytes(n uint64) ([]byte, error) {
	if n > 1<<62 {
		return nil, endOfStream(io.ErrUnexpectedEOF)
	}
	var buf bytes.Buffer
	if n <= 4096 {
		buf.Grow(int(n))
	}
	read, err := io.CopyN(&buf, s.r, int64(n))
	if uint64(read) != n {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, endOfStream(err)
	}
	return buf.Bytes(), nil
}

func (s *streamReader) readUTF() (string, error) {
	l, err := s.readU16()
	if err != nil {
		return "", err
	}
	return s.readString(uint64(l))
}

func (s *streamReader) readLongUTF() (string, error) {
	l, err := s.readU64()
	if err != nil {
		return "", err
	}
	return s.readString(l)
}

func (s *streamReader) readString(n uint64) (string, error) {
	p, err := s.readBytes(n)
	if err != nil {
		return "", &StreamError{Kind: KindInvalidStream, Msg: "could not read full string", Err: err}
	}
	if !utf8.Valid(p) {
		return "", invalidStream("string is not valid UTF-8")
	}
	return string(p), nil
}

func (s *streamReader) readMarker() (Marker, error) {
	b, err := s.readU8()
	if err != nil {
		return 0, err
	}
	return markerFrom(b)
}
