package uvarint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint128BitLen(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, From64(0).BitLen())
	assert.Equal(1, From64(1).BitLen())
	assert.Equal(9, From64(300).BitLen())
	assert.Equal(64, From64(1<<64-1).BitLen())
	assert.Equal(65, U128(1, 0).BitLen())
	assert.Equal(128, MaxUint128.BitLen())
}

func TestUint128Basics(t *testing.T) {
	assert := assert.New(t)
	assert.True(From64(0).IsZero())
	assert.False(U128(1, 0).IsZero())
	assert.Equal(uint64(300), From64(300).Uint64())
	assert.Equal(U128(0, 42), From64(42))
}
