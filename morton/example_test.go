package morton_test

import (
	"fmt"

	"github.com/skailasa/distributed-trees/morton"
)

// Example demonstrates encoding a handful of points and walking one of
// their ancestors back to the root.
func Example() {
	x0 := morton.Point{X: 0.5, Y: 0.5, Z: 0.5}
	const r0 = 0.5
	const depth = 2

	points := []morton.Point{
		{X: 0.1, Y: 0.1, Z: 0.1},
		{X: 0.9, Y: 0.9, Z: 0.9},
	}
	if err := morton.EncodePoints(points, depth, x0, r0); err != nil {
		panic(err)
	}

	ancestors := morton.Ancestors(points[0].Key, depth)
	fmt.Println(len(ancestors))
	// Output: 2
}
