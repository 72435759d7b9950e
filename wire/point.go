package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/skailasa/distributed-trees/morton"
)

// PointSize is the encoded byte size of a single morton.Point: three
// float64 coordinates, a uint64 global index, and an embedded Key.
const PointSize = 8*4 + KeySize

// PackPoints encodes points back to back, with no length prefix.
func PackPoints(points []morton.Point) []byte {
	buf := make([]byte, len(points)*PointSize)
	for i, p := range points {
		putPoint(buf[i*PointSize:(i+1)*PointSize], p)
	}
	return buf
}

func putPoint(buf []byte, p morton.Point) {
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(p.X))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(p.Y))
	binary.LittleEndian.PutUint64(buf[16:24], math.Float64bits(p.Z))
	binary.LittleEndian.PutUint64(buf[24:32], p.GlobalIdx)
	putKey(buf[32:32+KeySize], p.Key)
}

func getPoint(buf []byte) morton.Point {
	return morton.Point{
		X:         math.Float64frombits(binary.LittleEndian.Uint64(buf[0:8])),
		Y:         math.Float64frombits(binary.LittleEndian.Uint64(buf[8:16])),
		Z:         math.Float64frombits(binary.LittleEndian.Uint64(buf[16:24])),
		GlobalIdx: binary.LittleEndian.Uint64(buf[24:32]),
		Key:       getKey(buf[32 : 32+KeySize]),
	}
}

// UnpackPoints decodes a flat buffer of back-to-back points. buf's
// length must be an exact multiple of PointSize.
func UnpackPoints(buf []byte) ([]morton.Point, error) {
	if len(buf)%PointSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrShortBuffer, len(buf), PointSize)
	}
	n := len(buf) / PointSize
	points := make([]morton.Point, n)
	for i := 0; i < n; i++ {
		points[i] = getPoint(buf[i*PointSize : (i+1)*PointSize])
	}
	return points, nil
}
