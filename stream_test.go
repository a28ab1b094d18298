package jserial

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demoStream = []byte{0x00, 0x0A, 0x68, 0x65, 0x6C, 0x6C, 0x6F, 0x57, 0x6F, 0x72, 0x6C, 0x64}

func demoReader() *streamReader {
	return newStreamReader(bytes.NewReader(demoStream))
}

func TestStreamReader_Integers(t *testing.T) {
	u8, err := demoReader().readU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), u8)

	u16, err := demoReader().readU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(10), u16)

	u32, err := demoReader().readU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(682085), u32)

	u64, err := demoReader().readU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(2929534587137879), u64)
}

func TestStreamReader_ReadUTF(t *testing.T) {
	s, err := demoReader().readUTF()
	require.NoError(t, err)
	assert.Equal(t, "helloWorld", s)
}

func TestStreamReader_ReadLongUTF(t *testing.T) {
	data := append([]byte{0, 0, 0, 0, 0, 0, 0, 2}, 'h', 'i')
	s, err := newStreamReader(bytes.NewReader(data)).readLongUTF()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	huge := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 'h'}
	_, err = newStreamReader(bytes.NewReader(huge)).readLongUTF()
	assert.True(t, errors.Is(err, ErrInvalidStream))
}

func TestStreamReader_IncompleteString(t *testing.T) {
	data := []byte{0x00, 0x10, 0x68, 0x65, 0x6C, 0x6C, 0x6F, 0x57}
	_, err := newStreamReader(bytes.NewReader(data)).readUTF()
	var se *StreamError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, KindInvalidStream, se.Kind)
	assert.Equal(t, "could not read full string", se.Msg)
	// truncation, not corruption
	assert.True(t, errors.Is(err, ErrEndOfStream))
}

func TestStreamReader_InvalidUTF8(t *testing.T) {
	data := []byte{
		0x00, 0x0A,
		0xff, 0xfd, 0xff, 0xfd, 0xff, 0xfd, 0xff, 0xfd, 0xff, 0xfd,
	}
	_, err := newStreamReader(bytes.NewReader(data)).readUTF()
	var se *StreamError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, KindInvalidStream, se.Kind)
	assert.Equal(t, "string is not valid UTF-8", se.Msg)
}

func TestStreamReader_ShortRead(t *testing.T) {
	_, err := newStreamReader(bytes.NewReader([]byte{0x01})).readU32()
	assert.True(t, errors.Is(err, ErrEndOfStream))
	assert.NotNil(t, errors.Unwrap(err))

	_, err = newStreamReader(bytes.NewReader(nil)).readU8()
	assert.True(t, errors.Is(err, ErrEndOfStream))

	_, err = newStreamReader(bytes.NewReader([]byte{1, 2})).readBytes(3)
	assert.True(t, errors.Is(err, ErrEndOfStream))
}

func TestStreamReader_ReadMarker(t *testing.T) {
	m, err := newStreamReader(bytes.NewReader([]byte{0x74})).readMarker()
	require.NoError(t, err)
	assert.Equal(t, MarkerString, m)
}
