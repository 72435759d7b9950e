package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/skailasa/distributed-trees/morton"
)

// KeySize is the encoded byte size of a single morton.Key.
const KeySize = 32

// PackKey encodes a single key as 4 little-endian uint64 fields:
// AX, AY, AZ, Level.
func PackKey(k morton.Key) []byte {
	buf := make([]byte, KeySize)
	putKey(buf, k)
	return buf
}

func putKey(buf []byte, k morton.Key) {
	binary.LittleEndian.PutUint64(buf[0:8], k.AX)
	binary.LittleEndian.PutUint64(buf[8:16], k.AY)
	binary.LittleEndian.PutUint64(buf[16:24], k.AZ)
	binary.LittleEndian.PutUint64(buf[24:32], k.Level)
}

func getKey(buf []byte) morton.Key {
	return morton.Key{
		AX:    binary.LittleEndian.Uint64(buf[0:8]),
		AY:    binary.LittleEndian.Uint64(buf[8:16]),
		AZ:    binary.LittleEndian.Uint64(buf[16:24]),
		Level: binary.LittleEndian.Uint64(buf[24:32]),
	}
}

// UnpackKey decodes a single KeySize-byte buffer into a morton.Key.
func UnpackKey(buf []byte) (morton.Key, error) {
	if len(buf) != KeySize {
		return morton.Key{}, fmt.Errorf("%w: want %d bytes, got %d", ErrShortBuffer, KeySize, len(buf))
	}
	return getKey(buf), nil
}

// PackKeys encodes a slice of keys back to back, with no length prefix.
func PackKeys(keys morton.Keys) []byte {
	buf := make([]byte, len(keys)*KeySize)
	for i, k := range keys {
		putKey(buf[i*KeySize:(i+1)*KeySize], k)
	}
	return buf
}

// UnpackKeys decodes a flat buffer of back-to-back keys. buf's length
// must be an exact multiple of KeySize.
func UnpackKeys(buf []byte) (morton.Keys, error) {
	if len(buf)%KeySize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrShortBuffer, len(buf), KeySize)
	}
	n := len(buf) / KeySize
	keys := make(morton.Keys, n)
	for i := 0; i < n; i++ {
		keys[i] = getKey(buf[i*KeySize : (i+1)*KeySize])
	}
	return keys, nil
}
