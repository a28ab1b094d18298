package jserial

// Content is a top-level item read from a stream, or one element of an
// annotation: either an ObjectContent or a BlockContent.
//
// Primitives written directly to an ObjectOutputStream are not distinguished
// in the stream; writing (short)1 twice and (int)65537 once produce the same
// block. Interpreting block data is left to the caller.
type Content interface {
	isContent()
}

// ObjectContent is a deserialized value.
type ObjectContent struct {
	Value Value
}

// BlockContent is raw block data.
type BlockContent []byte

func (ObjectContent) isContent() {}
func (BlockContent) isContent()  {}
