package morton

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Encode computes the Morton key of the level-deep octant enclosing p,
// within a cubic domain centered at x0 with half-side r0. Points must lie
// in [x0-r0, x0+r0) on every axis; Encode does not itself check this (it
// is a pure, precondition-only helper, like the rest of the codec) — use
// EncodePoints for a validated, boundary-facing entry point.
func Encode(p Point, level, depth uint64, x0 Point, r0 float64) Key {
	sideLength := (2 * r0) / float64(uint64(1)<<depth)

	dx := x0.X - r0
	dy := x0.Y - r0
	dz := x0.Z - r0

	return Key{
		AX:    uint64(math.Floor((p.X - dx) / sideLength)),
		AY:    uint64(math.Floor((p.Y - dy) / sideLength)),
		AZ:    uint64(math.Floor((p.Z - dz) / sideLength)),
		Level: level,
	}
}

// EncodePoints assigns each point's Key in place, encoding at the deepest
// level (depth). Per-point work is independent (no ordering requirement
// across elements), so encoding is fanned out across
// runtime.GOMAXPROCS(0) goroutines via errgroup — the Go analogue of the
// reference implementation's rayon par_iter.
//
// Returns ErrDepthTooLarge if depth exceeds the representable maximum, and
// ErrPointOutOfBounds if any point lies outside [x0-r0, x0+r0) on any axis.
func EncodePoints(points []Point, depth uint64, x0 Point, r0 float64) error {
	if depth > maxDepth {
		return ErrDepthTooLarge
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(points) {
		workers = len(points)
	}
	if workers < 1 {
		return nil
	}

	chunk := (len(points) + workers - 1) / workers
	var g errgroup.Group

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= len(points) {
			break
		}
		if end > len(points) {
			end = len(points)
		}

		g.Go(func() error {
			for i := start; i < end; i++ {
				p := &points[i]
				if p.X < x0.X-r0 || p.X >= x0.X+r0 ||
					p.Y < x0.Y-r0 || p.Y >= x0.Y+r0 ||
					p.Z < x0.Z-r0 || p.Z >= x0.Z+r0 {
					return ErrPointOutOfBounds
				}
				p.Key = Encode(*p, depth, depth, x0, r0)
			}
			return nil
		})
	}

	return g.Wait()
}
