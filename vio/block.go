package vio

import (
	"errors"
	"io"

	"github.com/aoikurokawa/uvarint"
)

// Length-prefixed blocks: a varint byte count followed by that many
// bytes. This is the framing storage formats build record logs and
// tables out of.

// MaxBlockSize is the largest payload ReadBlock will allocate. The
// length prefix comes off the wire, so it is validated before any
// allocation; callers with bigger (or much smaller) framing should use
// ReadBlockLimit.
const MaxBlockSize = 1 << 30

// ErrBlockTooLarge is returned when a block's length prefix exceeds
// the caller's limit. The prefix itself has been consumed; the stream
// is positioned at the start of the oversized payload.
var ErrBlockTooLarge = errors.New("vio: block length exceeds limit")

// BlockReader is the stream capability ReadBlock needs: byte-at-a-time
// reads for the length prefix and bulk reads for the payload.
// bufio.Reader and bytes.Reader both satisfy it.
type BlockReader interface {
	io.Reader
	io.ByteReader
}

// WriteBlock writes p prefixed with its varint-encoded length and
// returns the total number of bytes written.
func WriteBlock(w io.Writer, p []byte) (int, error) {
	n, err := WriteUint64(w, uint64(len(p)))
	if err != nil {
		return n, err
	}
	pn, err := write(w, p)
	return n + pn, err
}

// ReadBlock reads one length-prefixed block of at most MaxBlockSize
// bytes from r. An io.EOF at a block boundary passes through; a stream
// that ends inside the length prefix or the payload yields
// uvarint.ErrIncomplete.
func ReadBlock(r BlockReader, m uvarint.Mode) ([]byte, error) {
	return ReadBlockLimit(r, m, MaxBlockSize)
}

// ReadBlockLimit is ReadBlock with a caller-supplied payload limit.
// A length prefix above limit fails with ErrBlockTooLarge before
// anything is allocated.
func ReadBlockLimit(r BlockReader, m uvarint.Mode, limit int) ([]byte, error) {
	length, err := ReadUint64(r, m)
	if err != nil {
		return nil, err
	}
	if limit < 0 || length > uint64(limit) {
		return nil, ErrBlockTooLarge
	}
	p := make([]byte, length)
	if _, err := io.ReadFull(r, p); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, uvarint.ErrIncomplete
		}
		return nil, &StreamError{Op: "read", Err: err}
	}
	return p, nil
}
