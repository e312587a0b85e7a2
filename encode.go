package uvarint

// Encoders always emit the canonical minimal form: the Put functions
// check the exact encoded length up front, so a failed Put leaves the
// destination byte-for-byte untouched.

// PutUint64 writes the encoding of v into dst and returns the number of
// bytes written, or ErrBufferTooSmall if dst cannot hold all of it.
func PutUint64(dst []byte, v uint64) (int, error) {
	if len(dst) < Len64(v) {
		return 0, ErrBufferTooSmall
	}
	i := 0
	for v >= 0x80 {
		dst[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	dst[i] = byte(v)
	return i + 1, nil
}

// PutUint32 writes the encoding of v into dst and returns the number of
// bytes written, or ErrBufferTooSmall if dst cannot hold all of it.
func PutUint32(dst []byte, v uint32) (int, error) {
	return PutUint64(dst, uint64(v))
}

// PutUint16 writes the encoding of v into dst and returns the number
// of bytes written, or ErrBufferTooSmall if dst cannot hold all of it.
func PutUint16(dst []byte, v uint16) (int, error) {
	return PutUint64(dst, uint64(v))
}

// PutUint128 writes the encoding of v into dst and returns the number
// of bytes written, or ErrBufferTooSmall if dst cannot hold all of it.
func PutUint128(dst []byte, v Uint128) (int, error) {
	if len(dst) < Len128(v) {
		return 0, ErrBufferTooSmall
	}
	if v.Hi == 0 {
		return PutUint64(dst, v.Lo)
	}
	i := 0
	for {
		b := byte(v.Lo & 0x7f)
		v = v.srl7()
		if v.IsZero() {
			dst[i] = b
			return i + 1, nil
		}
		dst[i] = b | 0x80
		i++
	}
}

// AppendUint64 appends the encoding of v to dst and returns the
// extended slice.
func AppendUint64(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// AppendUint32 appends the encoding of v to dst and returns the
// extended slice.
func AppendUint32(dst []byte, v uint32) []byte {
	return AppendUint64(dst, uint64(v))
}

// AppendUint16 appends the encoding of v to dst and returns the
// extended slice.
func AppendUint16(dst []byte, v uint16) []byte {
	return AppendUint64(dst, uint64(v))
}

// AppendUint128 appends the encoding of v to dst and returns the
// extended slice.
func AppendUint128(dst []byte, v Uint128) []byte {
	if v.Hi == 0 {
		return AppendUint64(dst, v.Lo)
	}
	for {
		b := byte(v.Lo & 0x7f)
		v = v.srl7()
		if v.IsZero() {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}
