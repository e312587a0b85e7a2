package uvarint

import "math/bits"

// Width selects the decode target width in bits.
type Width uint

const (
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
)

// Maximum encoded lengths: ceil(width / 7) bytes.
const (
	MaxLen16  = 3
	MaxLen32  = 5
	MaxLen64  = 10
	MaxLen128 = 19
)

// MaxLen returns the maximum encoded length for a width.
func MaxLen(w Width) int {
	return (int(w) + 6) / 7
}

// Len64 returns the exact number of bytes the encoding of v occupies.
func Len64(v uint64) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + 6) / 7
}

// Len32 returns the exact number of bytes the encoding of v occupies.
func Len32(v uint32) int {
	return Len64(uint64(v))
}

// Len16 returns the exact number of bytes the encoding of v occupies.
func Len16(v uint16) int {
	return Len64(uint64(v))
}

// Len128 returns the exact number of bytes the encoding of v occupies.
func Len128(v Uint128) int {
	if v.Hi == 0 {
		return Len64(v.Lo)
	}
	return (v.BitLen() + 6) / 7
}
