package uvarint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sequences chosen to cross in and out of the single-byte fast path
func batchInputs64() [][]uint64 {
	small := make([]uint64, 20)
	for i := range small {
		small[i] = uint64(i)
	}
	mixed := []uint64{
		0, 1, 2, 3, 4, 5, 6, 7, // full fast-path lane
		300, // breaks the run
		8, 9, 10, 11, 12, 13, 14, 15, 16,
		1<<64 - 1, 127, 128, 0,
	}
	return [][]uint64{
		nil,
		{300},
		{1<<32 - 1, 1<<64 - 1},
		small,
		mixed,
	}
}

func TestAppendBatch64MatchesScalar(t *testing.T) {
	assert := assert.New(t)
	for _, vs := range batchInputs64() {
		var want []byte
		for _, v := range vs {
			want = AppendUint64(want, v)
		}
		assert.Equal(want, AppendBatch64(nil, vs), "values %v", vs)
	}
}

func TestAppendBatch32MatchesScalar(t *testing.T) {
	assert := assert.New(t)
	inputs := [][]uint32{
		nil,
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{300, 0, 1<<32 - 1, 7, 7, 7, 7, 7, 7, 7, 7, 128},
	}
	for _, vs := range inputs {
		var want []byte
		for _, v := range vs {
			want = AppendUint32(want, v)
		}
		assert.Equal(want, AppendBatch32(nil, vs), "values %v", vs)
	}
}

func TestBatch64MatchesScalar(t *testing.T) {
	assert := assert.New(t)
	for _, vs := range batchInputs64() {
		buf := AppendBatch64(nil, vs)

		vals := make([]uint64, len(vs))
		count, n, err := Lenient.Batch64(buf, vals)
		assert.NoError(err)
		assert.Equal(len(vs), count)
		assert.Equal(len(buf), n)
		if len(vs) > 0 {
			assert.Equal(vs, vals[:count])
		}
	}
}

func TestBatch32MatchesScalar(t *testing.T) {
	assert := assert.New(t)
	vs := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 300, 8, 9, 1<<32 - 1}
	buf := AppendBatch32(nil, vs)

	vals := make([]uint32, len(vs))
	count, n, err := Canonical.Batch32(buf, vals)
	assert.NoError(err)
	assert.Equal(len(vs), count)
	assert.Equal(len(buf), n)
	assert.Equal(vs, vals[:count])
}

func TestBatchStopsAtDestination(t *testing.T) {
	assert := assert.New(t)
	buf := AppendBatch64(nil, []uint64{1, 2, 300, 4})

	vals := make([]uint64, 2)
	count, n, err := Lenient.Batch64(buf, vals)
	assert.NoError(err)
	assert.Equal(2, count)
	assert.Equal(2, n)
	assert.Equal([]uint64{1, 2}, vals)

	// the rest decodes from where the batch stopped
	v, _, err := Lenient.Uint64(buf[n:])
	assert.NoError(err)
	assert.Equal(uint64(300), v)
}

func TestBatchErrorsMatchScalar(t *testing.T) {
	assert := assert.New(t)

	// truncated final varint: the two complete values still come out
	buf := AppendBatch64(nil, []uint64{5, 300})
	buf = append(buf, 0x80)
	vals := make([]uint64, 8)
	count, n, err := Lenient.Batch64(buf, vals)
	assert.Equal(ErrIncomplete, err)
	assert.Equal(2, count)
	assert.Equal(3, n)
	assert.Equal([]uint64{5, 300}, vals[:count])

	// overflow mid-batch
	buf32 := AppendBatch32(nil, []uint32{9})
	buf32 = append(buf32, 0xFF, 0xFF, 0xFF, 0xFF, 0x10)
	vals32 := make([]uint32, 8)
	count32, n32, err := Lenient.Batch32(buf32, vals32)
	assert.Equal(ErrOverflow, err)
	assert.Equal(1, count32)
	assert.Equal(1, n32)

	// a clean end of buffer short of len(vals) is not an error
	count, n, err = Lenient.Batch64([]byte{0x05}, make([]uint64, 4))
	assert.NoError(err)
	assert.Equal(1, count)
	assert.Equal(1, n)
}
