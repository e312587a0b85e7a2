package uvarint

// Mode fixes the decoder's policy for non-canonical input. Protocols
// that hash or compare encoded bytes want Canonical; anything that must
// interoperate with third-party encoders wants Lenient. The choice is
// made at every call site; there is no package-wide default.
type Mode struct {
	strict bool
}

var (
	// Lenient accepts non-minimal encodings: trailing zero groups past
	// the value's highest set bit are consumed and ignored. Overflow is
	// still enforced on the true accumulated payload bits.
	Lenient = Mode{strict: false}

	// Canonical rejects any encoding longer than the minimal form with
	// ErrNonCanonical.
	Canonical = Mode{strict: true}
)

// decode runs the streaming state machine over all of buf in one shot.
func (m Mode) decode(buf []byte, w Width) (Uint128, int, error) {
	d := StreamDecoder{width: w, mode: m}
	n, done, err := d.Feed(buf)
	if err != nil {
		return Uint128{}, 0, err
	}
	if !done {
		return Uint128{}, 0, ErrIncomplete
	}
	return d.val, n, nil
}

// Uint32 decodes one varint from buf, returning the value and the
// number of bytes consumed.
func (m Mode) Uint32(buf []byte) (uint32, int, error) {
	v, n, err := m.decode(buf, Width32)
	return uint32(v.Lo), n, err
}

// Uint64 decodes one varint from buf, returning the value and the
// number of bytes consumed.
func (m Mode) Uint64(buf []byte) (uint64, int, error) {
	v, n, err := m.decode(buf, Width64)
	return v.Lo, n, err
}

// Uint128 decodes one varint from buf, returning the value and the
// number of bytes consumed.
func (m Mode) Uint128(buf []byte) (Uint128, int, error) {
	return m.decode(buf, Width128)
}
