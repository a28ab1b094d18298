package render

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/lujjjh/go-jserial"
)

// Text formats an item in a compact Java-like notation. Annotations follow
// the fields of an object, one bracketed list per class that wrote any.
func Text(c jserial.Content) string {
	var b strings.Builder
	writeContent(&b, c)
	return b.String()
}

func writeContent(b *strings.Builder, c jserial.Content) {
	switch c := c.(type) {
	case jserial.ObjectContent:
		writeValue(b, c.Value)
	case jserial.BlockContent:
		b.WriteString("<block ")
		b.WriteString(hex.EncodeToString(c))
		b.WriteByte('>')
	}
}

func writeValue(b *strings.Builder, v jserial.Value) {
	switch v := v.(type) {
	case jserial.Null, nil:
		b.WriteString("null")
	case jserial.String:
		b.WriteString(strconv.Quote(string(v)))
	case *jserial.Object:
		writeObject(b, v)
	case jserial.Enum:
		b.WriteString(v.Class)
		b.WriteByte('.')
		b.WriteString(v.Constant)
	case jserial.Primitive:
		writePrimitive(b, v)
	case jserial.Array:
		b.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, item)
		}
		b.WriteByte(']')
	case jserial.PrimitiveArray:
		b.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writePrimitive(b, item)
		}
		b.WriteByte(']')
	case jserial.Class:
		b.WriteString(v.Name)
		b.WriteString(".class")
	case jserial.Loop:
		b.WriteString("<loop ")
		b.WriteString(strconv.Itoa(int(v)))
		b.WriteByte('>')
	}
}

func writeObject(b *strings.Builder, obj *jserial.Object) {
	b.WriteString(obj.ClassName())
	b.WriteByte('{')
	for i, name := range obj.FieldNames() {
		if i > 0 {
			b.WriteString(", ")
		}
		f, _ := obj.Field(name)
		b.WriteString(name)
		b.WriteByte('=')
		writeValue(b, f)
	}
	b.WriteByte('}')
	for _, level := range obj.Annotations() {
		if len(level) == 0 {
			continue
		}
		b.WriteByte('[')
		for i, c := range level {
			if i > 0 {
				b.WriteString(", ")
			}
			writeContent(b, c)
		}
		b.WriteByte(']')
	}
}

func writePrimitive(b *strings.Builder, p jserial.Primitive) {
	switch p := p.(type) {
	case jserial.Byte:
		b.WriteString("0x")
		b.WriteString(p.String())
	case jserial.Char:
		b.WriteString(strconv.QuoteRune(rune(p)))
	case jserial.Long:
		b.WriteString(p.String())
		b.WriteByte('L')
	case jserial.Float:
		b.WriteString(p.String())
		b.WriteByte('f')
	default:
		b.WriteString(p.String())
	}
}
