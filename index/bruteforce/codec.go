package bruteforce

import (
	"encoding/binary"
	"errors"
	"math"
)

// Encode stores: dim(uint32), n(uint32), then for each item:
// idLen(uint32), id bytes, vec(float32[dim]). All values are little-endian.
func Encode(ids []string, vectors [][]float32) []byte {
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	size := 8
	for _, id := range ids {
		size += 4 + len(id) + 4*dim
	}
	out := make([]byte, 0, size)
	out = binary.LittleEndian.AppendUint32(out, uint32(dim))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(ids)))
	for idx, id := range ids {
		out = binary.LittleEndian.AppendUint32(out, uint32(len(id)))
		out = append(out, id...)
		for _, v := range vectors[idx] {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
		}
	}
	return out
}

// Decode restores ids and vectors produced by Encode.
func Decode(data []byte) ([]string, [][]float32, error) {
	if len(data) < 8 {
		return nil, nil, errors.New("bruteforce: invalid data")
	}
	off := 0
	getU32 := func() uint32 { v := binary.LittleEndian.Uint32(data[off : off+4]); off += 4; return v }
	dim := int(getU32())
	n := int(getU32())
	ids := make([]string, 0, min(n, len(data)/4))
	vecs := make([][]float32, 0, cap(ids))
	for idx := 0; idx < n; idx++ {
		if off+4 > len(data) {
			return nil, nil, errors.New("bruteforce: truncated")
		}
		idlen := int(getU32())
		if off+idlen > len(data) {
			return nil, nil, errors.New("bruteforce: truncated id")
		}
		ids = append(ids, string(data[off:off+idlen]))
		off += idlen
		if off+4*dim > len(data) {
			return nil, nil, errors.New("bruteforce: truncated vec")
		}
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = math.Float32frombits(getU32())
		}
		vecs = append(vecs, vec)
	}
	return ids, vecs, nil
}
