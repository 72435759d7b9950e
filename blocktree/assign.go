package blocktree

import (
	"github.com/skailasa/distributed-trees/leaf"
	"github.com/skailasa/distributed-trees/morton"
)

// AssignBlocksToLeaves sets each leaf's Block field to the finest block
// in localBlocktree that owns it: the first of the leaf's ancestors
// (searched parent-first, coarsening outward) found in localBlocktree,
// or the leaf's own key when the leaf is itself a block.
func AssignBlocksToLeaves(localLeaves leaf.Leaves, localBlocktree morton.Keys, depth uint64) {
	blockSet := make(map[morton.Key]bool, len(localBlocktree))
	for _, b := range localBlocktree {
		blockSet[b] = true
	}

	for i := range localLeaves {
		ancestors := morton.Ancestors(localLeaves[i].Key, depth)
		for _, anc := range ancestors {
			if blockSet[anc] {
				localLeaves[i].Block = anc
				break
			} else if blockSet[localLeaves[i].Key] {
				localLeaves[i].Block = localLeaves[i].Key
				break
			}
		}
	}
}
