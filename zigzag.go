package uvarint

// Zigzag profile for signed integers, compatible with protocol buffers:
// the sign bit moves to bit 0 so small-magnitude values of either sign
// stay short. Selected explicitly at the call site; the unsigned format
// is unaffected.

// Zigzag64 maps a signed value onto the unsigned format.
func Zigzag64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// Unzigzag64 inverts Zigzag64.
func Unzigzag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// Zigzag32 maps a signed value onto the unsigned format.
func Zigzag32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// Unzigzag32 inverts Zigzag32.
func Unzigzag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// PutInt64 writes the zigzag encoding of v into dst.
func PutInt64(dst []byte, v int64) (int, error) {
	return PutUint64(dst, Zigzag64(v))
}

// PutInt32 writes the zigzag encoding of v into dst.
func PutInt32(dst []byte, v int32) (int, error) {
	return PutUint32(dst, Zigzag32(v))
}

// AppendInt64 appends the zigzag encoding of v to dst.
func AppendInt64(dst []byte, v int64) []byte {
	return AppendUint64(dst, Zigzag64(v))
}

// AppendInt32 appends the zigzag encoding of v to dst.
func AppendInt32(dst []byte, v int32) []byte {
	return AppendUint32(dst, Zigzag32(v))
}

// Int64 decodes one zigzag varint from buf.
func (m Mode) Int64(buf []byte) (int64, int, error) {
	u, n, err := m.Uint64(buf)
	return Unzigzag64(u), n, err
}

// Int32 decodes one zigzag varint from buf.
func (m Mode) Int32(buf []byte) (int32, int, error) {
	u, n, err := m.Uint32(buf)
	return Unzigzag32(u), n, err
}
