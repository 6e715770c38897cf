package wire

import (
	"fmt"
	"math"
)

// PackedSint32 decodes a packed sequence of zigzag-encoded sint32 varints.
func PackedSint32(data []byte) ([]int32, error) {
	var vals []int32
	pos := 0
	for pos < len(data) {
		v, next, err := Uvarint(data, pos)
		if err != nil {
			return nil, err
		}
		n := unzigzag(v)
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%w: sint32 at offset %d", ErrOverflow, pos)
		}
		vals = append(vals, int32(n))
		pos = next
	}
	return vals, nil
}

// DeltaDecode resolves a delta-encoded integer sequence into floats: each
// value is the running sum of the deltas so far, divided by scale. The
// input slice is not modified. scale must be non-zero.
func DeltaDecode(deltas []int32, scale float64) []float64 {
	out := make([]float64, len(deltas))
	var sum int64
	for i, d := range deltas {
		sum += int64(d)
		out[i] = float64(sum) / scale
	}
	return out
}

// Messages splits a stream of varint-length-prefixed messages into the
// individual message payloads. An empty stream yields no messages.
func Messages(data []byte) ([][]byte, error) {
	var msgs [][]byte
	pos := 0
	for pos < len(data) {
		n, next, err := Uvarint(data, pos)
		if err != nil {
			return nil, err
		}
		if n > uint64(len(data)-next) {
			return nil, fmt.Errorf("%w: message of %d bytes at offset %d", ErrTruncated, n, pos)
		}
		msgs = append(msgs, data[next:next+int(n)])
		pos = next + int(n)
	}
	return msgs, nil
}
