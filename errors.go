package jserial

import (
	"fmt"
)

// Error is implemented by every error this package returns. It is either a
// *StreamError, which aborts the decode, or a *ConversionError, which is
// local to a single value.
type Error interface {
	error
	jserialError()
}

// StreamErrorKind classifies a *StreamError.
type StreamErrorKind int

const (
	// KindEndOfStream: the stream ended while more data was expected.
	KindEndOfStream StreamErrorKind = iota + 1
	// KindNonJavaObject: the stream does not start with the Java magic.
	KindNonJavaObject
	// KindUnknownVersion: the stream uses a protocol version other than 5.
	KindUnknownVersion
	// KindUnknownMark: a record started with a byte that is not a TC_* value.
	KindUnknownMark
	// KindUnrecognisedType: a field or array used an unknown type code.
	KindUnrecognisedType
	// KindUnknownReference: a back reference to a handle never assigned.
	KindUnknownReference
	// KindInvalidReference: a handle refers to a record of the wrong kind.
	KindInvalidReference
	// KindInvalidStream: the stream is malformed in some other way.
	KindInvalidStream
	// KindNotImplemented: a protocol feature this package cannot decode.
	KindNotImplemented
)

// StreamError reports a structural problem with the serialized stream.
// Only the fields relevant to Kind are set.
type StreamError struct {
	Kind StreamErrorKind
	// Magic is the magic number read for KindNonJavaObject.
	Magic uint16
	// Version is the version read for KindUnknownVersion.
	Version uint16
	// Mark is the offending byte for KindUnknownMark.
	Mark byte
	// TypeCode is the offending type code for KindUnrecognisedType.
	TypeCode rune
	// Handle is the unresolved handle for KindUnknownReference.
	Handle Handle
	// Msg is the expected kind for KindInvalidReference, the problem for
	// KindInvalidStream and the feature for KindNotImplemented.
	Msg string
	// Err is the underlying I/O error for KindEndOfStream, or the
	// end-of-stream error behind a truncated string.
	Err error
}

func (e *StreamError) jserialError() {}

func (e *StreamError) Error() string {
	switch e.Kind {
	case KindEndOfStream:
		if e.Err != nil {
			return fmt.Sprintf("unexpected end of stream: %v", e.Err)
		}
		return "unexpected end of stream"
	case KindNonJavaObject:
		return fmt.Sprintf("not a java object stream - magic number: %X", e.Magic)
	case KindUnknownVersion:
		return fmt.Sprintf("unknown serialization version: %d", e.Version)
	case KindUnknownMark:
		return fmt.Sprintf("unknown mark: %02X", e.Mark)
	case KindUnrecognisedType:
		return fmt.Sprintf("unknown type marker: %q", e.TypeCode)
	case KindUnknownReference:
		return fmt.Sprintf("unknown reference handle: %#x", uint32(e.Handle))
	case KindInvalidReference:
		return fmt.Sprintf("invalid reference, expected %s", e.Msg)
	case KindInvalidStream:
		return fmt.Sprintf("invalid stream: %s", e.Msg)
	case KindNotImplemented:
		return fmt.Sprintf("%s is not implemented", e.Msg)
	default:
		return fmt.Sprintf("stream error (kind %d)", int(e.Kind))
	}
}

// Unwrap returns the error behind e, if any.
func (e *StreamError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *StreamError of the same kind, so the
// Err* values below can be used with errors.Is.
func (e *StreamError) Is(target error) bool {
	t, ok := target.(*StreamError)
	return ok && t.Kind == e.Kind
}

// ConversionErrorKind classifies a *ConversionError.
type ConversionErrorKind int

const (
	// KindFieldNotFound: a required field is absent from the object.
	KindFieldNotFound ConversionErrorKind = iota + 1
	// KindNullPointer: a non-optional value is null.
	KindNullPointer
	// KindInvalidType: the value is not of the kind required.
	KindInvalidType
	// KindUnexpectedBlockData: raw block data was found instead of an object.
	KindUnexpectedBlockData
	// KindMissingAnnotations: the requested annotation level does not exist.
	KindMissingAnnotations
	// KindIncorrectClass: the object has a different class than expected.
	KindIncorrectClass
	// KindUnexpectedClass: a class that no conversion accepts.
	KindUnexpectedClass
)

// ConversionError reports that a decoded value could not be converted into
// the requested Go value. The decoder remains usable after one.
type ConversionError struct {
	Kind ConversionErrorKind
	// Field is the missing field for KindFieldNotFound.
	Field string
	// Expected is the expected type or class name.
	Expected string
	// Found is the class found for KindIncorrectClass and KindUnexpectedClass.
	Found string
	// Data is the block data found for KindUnexpectedBlockData.
	Data []byte
	// Index is the annotation level for KindMissingAnnotations.
	Index int
}

func (e *ConversionError) jserialError() {}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case KindFieldNotFound:
		return fmt.Sprintf("field '%s' does not exist", e.Field)
	case KindNullPointer:
		return "no object found"
	case KindInvalidType:
		return fmt.Sprintf("expected '%s'", e.Expected)
	case KindUnexpectedBlockData:
		return fmt.Sprintf("unexpected block data (%d bytes)", len(e.Data))
	case KindMissingAnnotations:
		return fmt.Sprintf("missing annotation: %d", e.Index)
	case KindIncorrectClass:
		return fmt.Sprintf("expected class '%s', found '%s'", e.Expected, e.Found)
	case KindUnexpectedClass:
		return fmt.Sprintf("class '%s' was not expected", e.Found)
	default:
		return fmt.Sprintf("conversion error (kind %d)", int(e.Kind))
	}
}

// Is reports whether target is a *ConversionError of the same kind.
func (e *ConversionError) Is(target error) bool {
	t, ok := target.(*ConversionError)
	return ok && t.Kind == e.Kind
}

// Values for use with errors.Is.
var (
	ErrEndOfStream      = &StreamError{Kind: KindEndOfStream}
	ErrNonJavaObject    = &StreamError{Kind: KindNonJavaObject}
	ErrUnknownVersion   = &StreamError{Kind: KindUnknownVersion}
	ErrUnknownMark      = &StreamError{Kind: KindUnknownMark}
	ErrUnrecognisedType = &StreamError{Kind: KindUnrecognisedType}
	ErrUnknownReference = &StreamError{Kind: KindUnknownReference}
	ErrInvalidReference = &StreamError{Kind: KindInvalidReference}
	ErrInvalidStream    = &StreamError{Kind: KindInvalidStream}
	ErrNotImplemented   = &StreamError{Kind: KindNotImplemented}

	ErrFieldNotFound       = &ConversionError{Kind: KindFieldNotFound}
	ErrNullPointer         = &ConversionError{Kind: KindNullPointer}
	ErrInvalidType         = &ConversionError{Kind: KindInvalidType}
	ErrUnexpectedBlockData = &ConversionError{Kind: KindUnexpectedBlockData}
	ErrMissingAnnotations  = &ConversionError{Kind: KindMissingAnnotations}
	ErrIncorrectClass      = &ConversionError{Kind: KindIncorrectClass}
	ErrUnexpectedClass     = &ConversionError{Kind: KindUnexpectedClass}
)

func endOfStream(err error) *StreamError {
	return &StreamError{Kind: KindEndOfStream, Err: err}
}

func invalidStream(msg string) *StreamError {
	return &StreamError{Kind: KindInvalidStream, Msg: msg}
}

func invalidReference(expected string) *StreamError {
	return &StreamError{Kind: KindInvalidReference, Msg: expected}
}

func unknownReference(h Handle) *StreamError {
	return &StreamError{Kind: KindUnknownReference, Handle: h}
}

func unrecognisedType(c rune) *StreamError {
	return &StreamError{Kind: KindUnrecognisedType, TypeCode: c}
}

func notImplemented(feature string) *StreamError {
	return &StreamError{Kind: KindNotImplemented, Msg: feature}
}

func invalidType(expected string) *ConversionError {
	return &ConversionError{Kind: KindInvalidType, Expected: expected}
}

func fieldNotFound(name string) *ConversionError {
	return &ConversionError{Kind: KindFieldNotFound, Field: name}
}

func nullPointer() *ConversionError {
	return &ConversionError{Kind: KindNullPointer}
}

func unexpectedBlockData(data []byte) *ConversionError {
	return &ConversionError{Kind: KindUnexpectedBlockData, Data: data}
}
