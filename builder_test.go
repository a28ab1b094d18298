package jserial

import (
	"bytes"
	"encoding/binary"
)

// streamBuilder assembles serialization streams for tests.
type streamBuilder struct {
	buf bytes.Buffer
}

func newStream() *streamBuilder {
	b := &streamBuilder{}
	return b.writeBinary(StreamMagic, StreamVersion)
}

func (b *streamBuilder) writeBinary(values ...interface{}) *streamBuilder {
	for _, value := range values {
		if err := binary.Write(&b.buf, binary.BigEndian, value); err != nil {
			panic(err)
		}
	}
	return b
}

func (b *streamBuilder) writeUTF(s string) *streamBuilder {
	p := []byte(s)
	return b.writeBinary(uint16(len(p)), p)
}

func (b *streamBuilder) null() *streamBuilder {
	return b.writeBinary(TcNull)
}

func (b *streamBuilder) ref(h Handle) *streamBuilder {
	return b.writeBinary(TcReference, uint32(h))
}

func (b *streamBuilder) str(s string) *streamBuilder {
	b.writeBinary(TcString)
	return b.writeUTF(s)
}

func (b *streamBuilder) endBlock() *streamBuilder {
	return b.writeBinary(TcEndblockdata)
}

func (b *streamBuilder) block(p ...byte) *streamBuilder {
	return b.writeBinary(TcBlockdata, uint8(len(p)), p)
}

// classDesc writes the head of a TC_CLASSDESC up to the field count. The
// caller writes fields, then must call endClassDesc.
func (b *streamBuilder) classDesc(name string, suid uint64, flags byte, numFields int) *streamBuilder {
	b.writeBinary(TcClassdesc)
	b.writeUTF(name)
	return b.writeBinary(suid, flags, uint16(numFields))
}

func (b *streamBuilder) primField(code byte, name string) *streamBuilder {
	b.writeBinary(code)
	return b.writeUTF(name)
}

// objField writes an object field; the caller writes the type string record.
func (b *streamBuilder) objField(code byte, name string) *streamBuilder {
	b.writeBinary(code)
	return b.writeUTF(name)
}

func (b *streamBuilder) bytes() []byte {
	return append([]byte(nil), b.buf.Bytes()...)
}

// integerClass writes the descriptor of java.lang.Integer extending
// java.lang.Number. It takes handles base and base+1.
func (b *streamBuilder) integerClass() *streamBuilder {
	b.classDesc("java.lang.Integer", 0x12E2A0A4F7818738, ScSerializable, 1)
	b.primField('I', "value")
	b.endBlock()
	b.classDesc("java.lang.Number", 0x86AC951D0B94E08B, ScSerializable, 0)
	b.endBlock()
	return b.null()
}
