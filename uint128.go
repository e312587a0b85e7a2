package uvarint

import "math/bits"

// Uint128 is an unsigned 128-bit integer, kept as two uint64 halves.
// The zero value is 0.
type Uint128 struct {
	Hi, Lo uint64
}

// U128 builds a Uint128 from its high and low halves.
func U128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// From64 widens a uint64.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// MaxUint128 is the largest representable value.
var MaxUint128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// IsZero reports whether u is 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Uint64 returns the low 64 bits of u.
func (u Uint128) Uint64() uint64 {
	return u.Lo
}

// BitLen returns the number of bits required to represent u.
// BitLen(0) is 0.
func (u Uint128) BitLen() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}
	return bits.Len64(u.Lo)
}

// srl7 shifts u right by 7 bits.
func (u Uint128) srl7() Uint128 {
	return Uint128{
		Hi: u.Hi >> 7,
		Lo: u.Lo>>7 | u.Hi<<57,
	}
}

// orGroup ORs a 7-bit payload group into u at bit position shift.
// The caller guarantees shift < 128 and that no set bit of the group
// lands at or above bit 128.
func (u Uint128) orGroup(group byte, shift uint) Uint128 {
	if shift < 64 {
		u.Lo |= uint64(group) << shift
		if shift > 57 {
			u.Hi |= uint64(group) >> (64 - shift)
		}
	} else {
		u.Hi |= uint64(group) << (shift - 64)
	}
	return u
}
