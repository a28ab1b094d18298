package jserial

import (
	"go.uber.org/zap"
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used to trace resets and exception records.
// The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(dec *Decoder) {
		if logger != nil {
			dec.logger = logger
		}
	}
}

// WithMaxDepth bounds how deeply records may nest. Streams nesting deeper
// fail with KindInvalidStream.
func WithMaxDepth(depth int) Option {
	return func(dec *Decoder) {
		if depth > 0 {
			dec.maxDepth = depth
		}
	}
}

// WithMaxValues bounds the number of values materialized for one top-level
// record. Shared references are copied into every place they are used, so
// a small stream can describe a very large tree.
func WithMaxValues(n int) Option {
	return func(dec *Decoder) {
		if n > 0 {
			dec.maxValues = n
		}
	}
}
