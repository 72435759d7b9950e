package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/skailasa/distributed-trees/morton"
)

// WeightSize is the encoded byte size of a single (key, count) weight
// record. balance.Partition does not exchange weight records; it sends
// only block keys.
const WeightSize = KeySize + 8

// PackWeights encodes parallel key/count slices back to back, with no
// length prefix. keys and counts must have equal length.
func PackWeights(keys morton.Keys, counts []uint64) []byte {
	buf := make([]byte, len(keys)*WeightSize)
	for i := range keys {
		off := i * WeightSize
		putKey(buf[off:off+KeySize], keys[i])
		binary.LittleEndian.PutUint64(buf[off+KeySize:off+WeightSize], counts[i])
	}
	return buf
}

// UnpackWeights decodes a flat buffer of back-to-back (key, count)
// records into parallel slices. buf's length must be an exact multiple
// of WeightSize.
func UnpackWeights(buf []byte) (morton.Keys, []uint64, error) {
	if len(buf)%WeightSize != 0 {
		return nil, nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrShortBuffer, len(buf), WeightSize)
	}
	n := len(buf) / WeightSize
	keys := make(morton.Keys, n)
	counts := make([]uint64, n)
	for i := 0; i < n; i++ {
		off := i * WeightSize
		keys[i] = getKey(buf[off : off+KeySize])
		counts[i] = binary.LittleEndian.Uint64(buf[off+KeySize : off+WeightSize])
	}
	return keys, counts, nil
}
