package balance

import (
	"github.com/skailasa/distributed-trees/leaf"
	"github.com/skailasa/distributed-trees/morton"
)

// FindBlockWeights counts, for each block in blocktree, how many leaves
// are currently assigned to it.
func FindBlockWeights(leaves leaf.Leaves, blocktree morton.Keys) []Weight {
	weights := make([]Weight, len(blocktree))
	for i, b := range blocktree {
		var count uint64
		for _, l := range leaves {
			if l.Block.Equal(b) {
				count++
			}
		}
		weights[i] = Weight{Block: b, Count: count}
	}
	return weights
}
