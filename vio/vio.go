// Package vio binds the uvarint codec to io byte streams.
//
// Readers pull bytes one at a time so that no byte belonging to the
// next varint is ever consumed; callers who care about throughput
// should hand in a buffered reader. Failures of the underlying stream
// are wrapped in StreamError and never alias codec errors.
package vio

import (
	"fmt"
	"io"

	"github.com/aoikurokawa/uvarint"
)

// StreamError reports a failure of the underlying byte stream, as
// opposed to a malformed or oversized varint.
type StreamError struct {
	Op  string
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("vio: %s: %v", e.Op, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// read drives a streaming decoder one byte at a time.
//
// io.EOF before the first byte is a clean end of stream and passes
// through; io.EOF mid-varint is the codec's ErrIncomplete. Any other
// read failure becomes a StreamError.
func read(r io.ByteReader, w uvarint.Width, m uvarint.Mode) (uvarint.Uint128, error) {
	d := uvarint.NewStreamDecoder(w, m)
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				if d.Buffered() == 0 {
					return uvarint.Uint128{}, io.EOF
				}
				return uvarint.Uint128{}, uvarint.ErrIncomplete
			}
			return uvarint.Uint128{}, &StreamError{Op: "read", Err: err}
		}
		_, done, err := d.Feed([]byte{b})
		if err != nil {
			return uvarint.Uint128{}, err
		}
		if done {
			return d.Value(), nil
		}
	}
}

// ReadUint32 reads one varint from r.
func ReadUint32(r io.ByteReader, m uvarint.Mode) (uint32, error) {
	v, err := read(r, uvarint.Width32, m)
	return uint32(v.Lo), err
}

// ReadUint64 reads one varint from r.
func ReadUint64(r io.ByteReader, m uvarint.Mode) (uint64, error) {
	v, err := read(r, uvarint.Width64, m)
	return v.Lo, err
}

// ReadUint128 reads one varint from r.
func ReadUint128(r io.ByteReader, m uvarint.Mode) (uvarint.Uint128, error) {
	return read(r, uvarint.Width128, m)
}

// write sends an already-encoded varint to w, turning short writes and
// stream failures into StreamErrors.
func write(w io.Writer, buf []byte) (int, error) {
	n, err := w.Write(buf)
	if err != nil {
		return n, &StreamError{Op: "write", Err: err}
	}
	if n < len(buf) {
		return n, &StreamError{Op: "write", Err: io.ErrShortWrite}
	}
	return n, nil
}

// WriteUint32 writes the encoding of v to w, returning the number of
// bytes written.
func WriteUint32(w io.Writer, v uint32) (int, error) {
	var scratch [uvarint.MaxLen32]byte
	n, _ := uvarint.PutUint32(scratch[:], v)
	return write(w, scratch[:n])
}

// WriteUint64 writes the encoding of v to w, returning the number of
// bytes written.
func WriteUint64(w io.Writer, v uint64) (int, error) {
	var scratch [uvarint.MaxLen64]byte
	n, _ := uvarint.PutUint64(scratch[:], v)
	return write(w, scratch[:n])
}

// WriteUint128 writes the encoding of v to w, returning the number of
// bytes written.
func WriteUint128(w io.Writer, v uvarint.Uint128) (int, error) {
	var scratch [uvarint.MaxLen128]byte
	n, _ := uvarint.PutUint128(scratch[:], v)
	return write(w, scratch[:n])
}
