package uvarint

import "errors"

// Decoding and encoding failures are reported as these sentinel values.
// They are deliberately distinct: ErrIncomplete means "feed me more
// bytes", ErrBufferTooSmall is a caller sizing bug, and ErrOverflow
// means the data itself does not fit the requested width.
var (
	// ErrIncomplete is returned when the source ends before a byte with
	// a clear continuation bit. The data seen so far is not malformed;
	// supplying more bytes can still succeed.
	ErrIncomplete = errors.New("uvarint: incomplete varint data")

	// ErrOverflow is returned when the accumulated value does not fit
	// the target width. The current decode cannot be salvaged.
	ErrOverflow = errors.New("uvarint: varint overflows target width")

	// ErrBufferTooSmall is returned by the Put functions when the
	// destination cannot hold the full encoding. The destination is
	// left untouched, so the caller can retry with a larger buffer.
	ErrBufferTooSmall = errors.New("uvarint: destination buffer too small")

	// ErrNonCanonical is returned by Canonical-mode decodes for input
	// that carries superfluous trailing zero groups.
	ErrNonCanonical = errors.New("uvarint: non-canonical varint encoding")
)
