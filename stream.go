package uvarint

// StreamDecoder reconstructs one varint at a time from bytes that may
// arrive in arbitrarily small pieces (for example one network read at a
// time). It carries the accumulator, shift and byte count across calls,
// so feeding a buffer byte by byte produces exactly the same results as
// decoding it in one shot.
//
// A StreamDecoder is owned by a single logical stream and must not be
// shared between concurrent callers.
type StreamDecoder struct {
	width Width
	mode  Mode

	// current partial varint
	acc   Uint128
	shift uint
	count int

	// last completed varint
	val Uint128
	n   int

	err error
}

// NewStreamDecoder returns a decoder for varints of the given target
// width, using mode to police non-canonical input.
func NewStreamDecoder(w Width, m Mode) *StreamDecoder {
	return &StreamDecoder{width: w, mode: m}
}

// Reset returns the decoder to its initial empty state, clearing any
// sticky failure.
func (d *StreamDecoder) Reset() {
	d.acc = Uint128{}
	d.shift = 0
	d.count = 0
	d.val = Uint128{}
	d.n = 0
	d.err = nil
}

// Buffered returns the number of bytes absorbed into the varint
// currently being accumulated.
func (d *StreamDecoder) Buffered() int {
	return d.count
}

// Feed consumes bytes from p until one varint completes or p runs out.
// It returns the number of bytes consumed from p and whether a complete
// varint was recognized; on completion the result is available from
// Value, Uint32, Uint64 and Len, and the decoder is immediately ready
// for the next varint. Bytes belonging to the next varint are never
// consumed.
//
// Feeding an empty slice is a no-op reporting an incomplete varint.
// Once a decode fails the error is sticky: Feed keeps returning it
// without consuming input until Reset is called.
func (d *StreamDecoder) Feed(p []byte) (int, bool, error) {
	if d.err != nil {
		return 0, false, d.err
	}
	for i, b := range p {
		done, err := d.feedByte(b)
		if err != nil {
			return i, false, err
		}
		if done {
			return i + 1, true, nil
		}
	}
	return len(p), false, nil
}

// Value returns the last completed varint.
func (d *StreamDecoder) Value() Uint128 {
	return d.val
}

// Uint64 returns the last completed varint as a uint64.
func (d *StreamDecoder) Uint64() uint64 {
	return d.val.Lo
}

// Uint32 returns the last completed varint as a uint32.
func (d *StreamDecoder) Uint32() uint32 {
	return uint32(d.val.Lo)
}

// Len returns the encoded length of the last completed varint.
func (d *StreamDecoder) Len() int {
	return d.n
}

// feedByte runs one step of the accumulation loop. The overflow check
// is on true accumulated payload bits: any set bit at or above the
// target width fails, regardless of how many bytes were consumed.
func (d *StreamDecoder) feedByte(b byte) (bool, error) {
	group := b & 0x7f
	w := uint(d.width)
	switch {
	case d.shift >= w:
		// Every payload bit here is past the width.
		if group != 0 {
			return false, d.fail(ErrOverflow)
		}
		if d.mode.strict {
			return false, d.fail(ErrNonCanonical)
		}
	case d.shift+7 > w:
		// Final group straddles the width boundary; only the low
		// w-shift bits may be set.
		if group>>(w-d.shift) != 0 {
			return false, d.fail(ErrOverflow)
		}
		d.acc = d.acc.orGroup(group, d.shift)
	default:
		d.acc = d.acc.orGroup(group, d.shift)
	}
	d.count++
	if b&0x80 != 0 {
		d.shift += 7
		return false, nil
	}
	if d.mode.strict && d.count > 1 && group == 0 {
		// A terminating zero group means a shorter encoding exists.
		return false, d.fail(ErrNonCanonical)
	}
	d.val = d.acc
	d.n = d.count
	d.acc = Uint128{}
	d.shift = 0
	d.count = 0
	return true, nil
}

func (d *StreamDecoder) fail(err error) error {
	d.err = err
	return err
}
