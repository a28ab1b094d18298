package render

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/lujjjh/go-jserial"
)

// Source records which interpretation of the input produced a Result.
type Source int

const (
	SourceEmpty Source = iota
	// SourceJava: the input is a Java serialization stream.
	SourceJava
	// SourceText: the input is valid UTF-8 and is returned as is.
	SourceText
	// SourceProtobuf: the input parses as protobuf wire data.
	SourceProtobuf
	// SourceBinary: none of the above; non-ASCII bytes are escaped.
	SourceBinary
)

func (s Source) String() string {
	switch s {
	case SourceEmpty:
		return "empty"
	case SourceJava:
		return "java"
	case SourceText:
		return "text"
	case SourceProtobuf:
		return "protobuf"
	case SourceBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Options controls how Bytes interprets its input.
type Options struct {
	// Format is used for Java and protobuf input.
	Format Format
	// Fallback enables the text, protobuf and binary interpretations. When
	// false, input that is not a Java stream is an error.
	Fallback bool
	// Decoder options for the Java decoder.
	Decoder []jserial.Option
	Logger  *zap.Logger
}

// Result is the rendering of a byte string.
type Result struct {
	Text   string
	Source Source
	// Format is the notation of Text; empty for SourceText and SourceBinary.
	Format Format
}

// Bytes renders data trying, in order, a Java serialization stream, UTF-8
// text, protobuf wire data, and finally the raw bytes with every non-ASCII
// byte written as \xNN.
func Bytes(data []byte, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(data) == 0 {
		return Result{Source: SourceEmpty}, nil
	}

	decOpts := append([]jserial.Option{jserial.WithLogger(logger)}, opts.Decoder...)
	c, err := jserial.Unmarshal(data, decOpts...)
	if err == nil {
		var text string
		if text, err = Render(c, opts.Format); err == nil {
			return Result{Text: text, Source: SourceJava, Format: formatOrDefault(opts.Format)}, nil
		}
		if !opts.Fallback {
			return Result{}, err
		}
		logger.Debug("java render failed, falling back", zap.Error(err), zap.Int("size", len(data)))
	} else if !opts.Fallback {
		return Result{}, errors.Wrap(err, "decode java stream")
	} else {
		logger.Debug("java decode failed, falling back", zap.Error(err), zap.Int("size", len(data)))
	}

	if utf8.Valid(data) {
		return Result{Text: string(data), Source: SourceText}, nil
	}

	fields, err := protobufFields(data)
	if err == nil {
		text, err := renderFields(fields, opts.Format)
		if err != nil {
			return Result{}, err
		}
		return Result{Text: text, Source: SourceProtobuf, Format: formatOrDefault(opts.Format)}, nil
	}
	logger.Debug("protobuf decode failed, falling back", zap.Error(err))

	return Result{Text: escapeBytes(data), Source: SourceBinary}, nil
}

func formatOrDefault(f Format) Format {
	if f == "" {
		return FormatJSON
	}
	return f
}

// pbField is one field of a protobuf message parsed without a schema.
type pbField struct {
	num  protowire.Number
	kind string
	// uint32, uint64 or string
	value interface{}
}

// protobufFields parses data as a protobuf message. Length delimited values
// must be UTF-8. A field repeated in the input keeps its last value.
func protobufFields(p []byte) ([]pbField, error) {
	byNum := make(map[protowire.Number]pbField)
	for len(p) > 0 {
		num, typ, n := protowire.ConsumeTag(p)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		p = p[n:]
		f := pbField{num: num}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(p)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			f.kind, f.value, p = "Varint", v, p[n:]
		case protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(p)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			f.kind, f.value, p = "Fixed32", v, p[n:]
		case protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(p)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			f.kind, f.value, p = "Fixed64", v, p[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(p)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			if !utf8.Valid(v) {
				return nil, errors.Errorf("field %d is not valid UTF-8", num)
			}
			f.kind, f.value, p = "LengthDelimited", string(v), p[n:]
		default:
			return nil, errors.Errorf("field %d has unsupported wire type %d", num, typ)
		}
		byNum[num] = f
	}
	fields := make([]pbField, 0, len(byNum))
	for _, f := range byNum {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].num < fields[j].num })
	return fields, nil
}

func renderFields(fields []pbField, f Format) (string, error) {
	if f != FormatText {
		tree := make(map[string]interface{}, len(fields))
		for _, field := range fields {
			tree[strconv.Itoa(int(field.num))] = tagged(field.kind, field.value)
		}
		return encode(tree, f)
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, field := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(field.num)))
		b.WriteString(": ")
		b.WriteString(field.kind)
		b.WriteByte('(')
		if s, ok := field.value.(string); ok {
			b.WriteString(strconv.Quote(s))
		} else {
			b.WriteString(strconv.FormatUint(toUint64(field.value), 10))
		}
		b.WriteByte(')')
	}
	b.WriteByte('}')
	return b.String(), nil
}

func toUint64(v interface{}) uint64 {
	switch v := v.(type) {
	case uint32:
		return uint64(v)
	case uint64:
		return v
	}
	return 0
}

const hexDigits = "0123456789abcdef"

// escapeBytes keeps ASCII bytes and writes all others as \xNN.
func escapeBytes(p []byte) string {
	var b strings.Builder
	b.Grow(len(p))
	for _, c := range p {
		if c < utf8.RuneSelf {
			b.WriteByte(c)
			continue
		}
		b.WriteString(`\x`)
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xF])
	}
	return b.String()
}

// EscapeString escapes backslashes, tabs and line breaks so s fits on one
// line.
func EscapeString(s string) string {
	return escaper.Replace(s)
}

var escaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)
