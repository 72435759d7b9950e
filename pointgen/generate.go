package pointgen

import "github.com/skailasa/distributed-trees/morton"

// Uniform generates n points drawn independently and uniformly from
// [0, 1) on each axis, for rank's deterministic stream derived from seed.
// baseIdx offsets GlobalIdx so that points generated across multiple
// ranks carry globally unique indices; callers typically pass
// rank*n as baseIdx when every rank generates the same count.
func Uniform(n uint64, seed int64, rank int, baseIdx uint64) []morton.Point {
	rng := rngForRank(seed, rank)

	points := make([]morton.Point, n)
	for i := range points {
		points[i] = morton.Point{
			X:         rng.Float64(),
			Y:         rng.Float64(),
			Z:         rng.Float64(),
			GlobalIdx: baseIdx + uint64(i),
		}
	}
	return points
}
