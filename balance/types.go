package balance

import "github.com/skailasa/distributed-trees/morton"

// Weight is the number of leaves a given block owns, as found by
// FindBlockWeights.
type Weight struct {
	Block morton.Key
	Count uint64
}
