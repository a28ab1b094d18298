package render

import (
	"math"

	"github.com/lujjjh/go-jserial"
)

// Tree maps a decoded item onto plain maps and slices that any encoder can
// walk. Every variant is externally tagged, so the shape is
//
//	{"Object": {"Object": {"class": "...", "fields": {...}, "annotations": [[...]]}}}
//	{"Object": {"JavaString": "..."}}
//	{"Block": [1, 2, 3]}
//
// Null is the bare string "Null".
func Tree(c jserial.Content) interface{} {
	switch c := c.(type) {
	case jserial.ObjectContent:
		return tagged("Object", treeValue(c.Value))
	case jserial.BlockContent:
		return tagged("Block", blockTree(c))
	default:
		return nil
	}
}

func tagged(tag string, v interface{}) map[string]interface{} {
	return map[string]interface{}{tag: v}
}

// blockTree renders raw bytes as numbers rather than base64 text.
func blockTree(p []byte) []int {
	out := make([]int, len(p))
	for i, b := range p {
		out[i] = int(b)
	}
	return out
}

func treeValue(v jserial.Value) interface{} {
	switch v := v.(type) {
	case jserial.Null, nil:
		return "Null"
	case *jserial.Object:
		return tagged("Object", treeObject(v))
	case jserial.String:
		return tagged("JavaString", string(v))
	case jserial.Enum:
		return tagged("Enum", []interface{}{v.Class, v.Constant})
	case jserial.Primitive:
		return tagged("Primitive", treePrimitive(v))
	case jserial.Array:
		items := make([]interface{}, len(v))
		for i, item := range v {
			items[i] = treeValue(item)
		}
		return tagged("Array", items)
	case jserial.PrimitiveArray:
		items := make([]interface{}, len(v))
		for i, item := range v {
			items[i] = treePrimitive(item)
		}
		return tagged("PrimitiveArray", items)
	case jserial.Class:
		return tagged("Class", v.Name)
	case jserial.Loop:
		return tagged("Loop", int32(v))
	default:
		return nil
	}
}

func treeObject(obj *jserial.Object) map[string]interface{} {
	fields := make(map[string]interface{}, obj.FieldCount())
	for _, name := range obj.FieldNames() {
		f, _ := obj.Field(name)
		fields[name] = treeValue(f)
	}
	levels := obj.Annotations()
	annotations := make([]interface{}, len(levels))
	for i, level := range levels {
		contents := make([]interface{}, len(level))
		for j, c := range level {
			contents[j] = Tree(c)
		}
		annotations[i] = contents
	}
	return map[string]interface{}{
		"class":       obj.ClassName(),
		"fields":      fields,
		"annotations": annotations,
	}
}

func treePrimitive(p jserial.Primitive) map[string]interface{} {
	switch p := p.(type) {
	case jserial.Byte:
		return tagged("Byte", uint8(p))
	case jserial.Char:
		return tagged("Char", string(rune(p)))
	case jserial.Double:
		return tagged("Double", finite(float64(p), float64(p)))
	case jserial.Float:
		return tagged("Float", finite(float64(p), float32(p)))
	case jserial.Int:
		return tagged("Int", int32(p))
	case jserial.Long:
		return tagged("Long", int64(p))
	case jserial.Short:
		return tagged("Short", int16(p))
	case jserial.Boolean:
		return tagged("Boolean", bool(p))
	default:
		return nil
	}
}

// finite returns v, or the Java name of f when f is NaN or infinite, which
// JSON cannot represent.
func finite(f float64, v interface{}) interface{} {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return v
}
