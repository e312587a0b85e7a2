package uvarint

import "encoding/binary"

// Batch encode/decode. Output and error behavior are exactly those of
// looping the scalar path; the only difference is a fast path for runs
// of single-byte values, which dominate real workloads (lengths, small
// counters, deltas).

// clearMSBs reports whether none of the 8 bytes in w has its
// continuation bit set.
func clearMSBs(w uint64) bool {
	return w&0x8080808080808080 == 0
}

// AppendBatch64 appends the concatenated encodings of vs to dst.
func AppendBatch64(dst []byte, vs []uint64) []byte {
	i := 0
	for i < len(vs) {
		// run of single-byte values
		j := i
		for j < len(vs) && vs[j] < 0x80 {
			j++
		}
		for ; i < j; i++ {
			dst = append(dst, byte(vs[i]))
		}
		if i < len(vs) {
			dst = AppendUint64(dst, vs[i])
			i++
		}
	}
	return dst
}

// AppendBatch32 appends the concatenated encodings of vs to dst.
func AppendBatch32(dst []byte, vs []uint32) []byte {
	i := 0
	for i < len(vs) {
		j := i
		for j < len(vs) && vs[j] < 0x80 {
			j++
		}
		for ; i < j; i++ {
			dst = append(dst, byte(vs[i]))
		}
		if i < len(vs) {
			dst = AppendUint32(dst, vs[i])
			i++
		}
	}
	return dst
}

// Batch64 decodes up to len(vals) varints from buf into vals. It
// returns the number of values decoded and the number of bytes
// consumed by them. On error, count and n reflect only the values that
// decoded fully, matching a scalar loop that stops at the first error.
//
// A buffer that ends cleanly on a varint boundary before vals is full
// is not an error: count is simply short of len(vals). Callers that
// require exactly len(vals) values should treat count < len(vals) with
// a nil error as insufficient input. Only a buffer that ends inside a
// varint yields ErrIncomplete.
func (m Mode) Batch64(buf []byte, vals []uint64) (count, n int, err error) {
	for count < len(vals) {
		// 8 clear continuation bits means 8 single-byte values.
		for len(vals)-count >= 8 && len(buf)-n >= 8 {
			w := binary.LittleEndian.Uint64(buf[n:])
			if !clearMSBs(w) {
				break
			}
			for k := 0; k < 8; k++ {
				vals[count+k] = uint64(buf[n+k])
			}
			count += 8
			n += 8
		}
		if count == len(vals) {
			break
		}
		if n == len(buf) {
			break
		}
		v, vn, verr := m.Uint64(buf[n:])
		if verr != nil {
			return count, n, verr
		}
		vals[count] = v
		count++
		n += vn
	}
	return count, n, nil
}

// Batch32 decodes up to len(vals) varints from buf into vals, with the
// same contract as Batch64, including the treatment of a buffer that
// ends cleanly before vals is full.
func (m Mode) Batch32(buf []byte, vals []uint32) (count, n int, err error) {
	for count < len(vals) {
		for len(vals)-count >= 8 && len(buf)-n >= 8 {
			w := binary.LittleEndian.Uint64(buf[n:])
			if !clearMSBs(w) {
				break
			}
			for k := 0; k < 8; k++ {
				vals[count+k] = uint32(buf[n+k])
			}
			count += 8
			n += 8
		}
		if count == len(vals) {
			break
		}
		if n == len(buf) {
			break
		}
		v, vn, verr := m.Uint32(buf[n:])
		if verr != nil {
			return count, n, verr
		}
		vals[count] = v
		count++
		n += vn
	}
	return count, n, nil
}
