package jserial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockIter(p ...byte) *AnnotationIter {
	return NewAnnotationIter([]Content{BlockContent(p)})
}

func TestAnnotationIter_ReadBoolean(t *testing.T) {
	a := blockIter(1, 0)
	b, err := a.ReadBoolean()
	require.NoError(t, err)
	assert.True(t, b)
	b, err = a.ReadBoolean()
	require.NoError(t, err)
	assert.False(t, b)
}

func TestAnnotationIter_ReadBytes(t *testing.T) {
	a := blockIter(1, 2, 3, 4, 5)
	for i := uint8(1); i <= 5; i++ {
		b, err := a.ReadU8()
		require.NoError(t, err)
		assert.Equal(t, i, b)
	}
}

func TestAnnotationIter_ReadI16(t *testing.T) {
	a := blockIter(1, 2, 3, 4, 255, 5)
	for _, want := range []int16{258, 772, -251} {
		v, err := a.ReadI16()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestAnnotationIter_ReadI32(t *testing.T) {
	a := blockIter(1, 2, 3, 4, 255, 255, 3, 4)
	v, err := a.ReadI32()
	require.NoError(t, err)
	assert.Equal(t, int32(16_909_060), v)
	v, err = a.ReadI32()
	require.NoError(t, err)
	assert.Equal(t, int32(-64764), v)

	_, err = a.ReadI32()
	assert.True(t, errors.Is(err, ErrInvalidType))
}

func TestAnnotationIter_ReadI64(t *testing.T) {
	a := blockIter(1, 2, 3, 4, 5, 6, 7, 8, 255, 255, 255, 255, 1, 2, 3, 4)
	v, err := a.ReadI64()
	require.NoError(t, err)
	assert.Equal(t, int64(72_623_859_790_382_856), v)
	v, err = a.ReadI64()
	require.NoError(t, err)
	assert.Equal(t, int64(-4278058236), v)
}

func TestAnnotationIter_ReadFloats(t *testing.T) {
	a := blockIter(0x42, 0x28, 0x00, 0x00, 0xc2, 0x28, 0x00, 0x00)
	f, err := a.ReadF32()
	require.NoError(t, err)
	assert.Equal(t, float32(42), f)
	f, err = a.ReadF32()
	require.NoError(t, err)
	assert.Equal(t, float32(-42), f)

	d, err := blockIter(0x40, 0x45, 0, 0, 0, 0, 0, 0).ReadF64()
	require.NoError(t, err)
	assert.Equal(t, float64(42), d)
}

func TestAnnotationIter_ReadChar(t *testing.T) {
	a := blockIter(0, 102, 0, 111, 0, 111, 0, 98, 0, 97, 0, 114, 0xD8, 0x00)
	var s []rune
	for i := 0; i < 6; i++ {
		c, err := a.ReadChar()
		require.NoError(t, err)
		s = append(s, c)
	}
	assert.Equal(t, "foobar", string(s))

	_, err := a.ReadChar()
	assert.True(t, errors.Is(err, ErrInvalidType))
}

func TestAnnotationIter_Empty(t *testing.T) {
	a := NewAnnotationIter(nil)
	_, err := a.ReadU8()
	assert.True(t, errors.Is(err, ErrInvalidType))
	_, err = a.ReadObject()
	assert.True(t, errors.Is(err, ErrNullPointer))
}

func TestAnnotationIter_NotEnoughData(t *testing.T) {
	a := blockIter(1, 2, 3)
	_, err := a.ReadI32()
	var ce *ConversionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "not enough data", ce.Expected)

	// the failed read consumed nothing
	v, err := a.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)
}

func TestAnnotationIter_MixedContent(t *testing.T) {
	a := NewAnnotationIter([]Content{
		ObjectContent{Value: String("first")},
		BlockContent{0, 7},
		BlockContent{},
		ObjectContent{Value: Int(3)},
	})

	_, err := a.ReadI16()
	var ce *ConversionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "expected block data", ce.Expected)

	s, err := ReadObjectAs(a, ToString)
	require.NoError(t, err)
	assert.Equal(t, "first", s)

	_, err = a.ReadObject()
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, KindUnexpectedBlockData, ce.Kind)
	assert.Equal(t, []byte{0, 7}, ce.Data)

	n, err := a.ReadI16()
	require.NoError(t, err)
	assert.Equal(t, int16(7), n)

	i, err := ReadObjectAs(a, ToInt)
	require.NoError(t, err)
	assert.Equal(t, int32(3), i)

	_, err = a.ReadObject()
	assert.True(t, errors.Is(err, ErrNullPointer))
	_, err = a.ReadU8()
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "end of annotations", ce.Expected)
}

type point struct {
	x, y int32
}

func (p *point) FromJava(v Value) error {
	obj, err := ToObject(v)
	if err != nil {
		return err
	}
	if err := ExpectClass(obj, "com.example.Point"); err != nil {
		return err
	}
	if p.x, err = FieldAs(obj, "x", ToInt); err != nil {
		return err
	}
	p.y, err = FieldAs(obj, "y", ToInt)
	return err
}

func TestAnnotationIter_ReadObjectInto(t *testing.T) {
	obj := NewObject("com.example.Point", map[string]Value{"x": Int(1), "y": Int(2)})
	a := NewAnnotationIter([]Content{ObjectContent{Value: obj}})
	var p point
	require.NoError(t, a.ReadObjectInto(&p))
	assert.Equal(t, point{1, 2}, p)
}
