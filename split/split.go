package split

import (
	"fmt"

	"github.com/skailasa/distributed-trees/blocktree"
	"github.com/skailasa/distributed-trees/leaf"
	"github.com/skailasa/distributed-trees/morton"
)

// Split groups leaves by their current Block assignment, then repeatedly
// replaces any block whose leaves together exceed ncrit points with its
// eight children (reassigning leaves among them via
// blocktree.AssignBlocksToLeaves), until every block satisfies ncrit or a
// block at the maximum depth still does not, in which case refinement
// cannot proceed any further and ErrDepthExceeded is returned.
func Split(leaves leaf.Leaves, depth uint64, ncrit uint64) (leaf.Tree, error) {
	blocks := make(leaf.Tree)
	for _, l := range leaves {
		blocks[l.Block] = append(blocks[l.Block], l)
	}

	for {
		var toSplit morton.Keys
		for key, ls := range blocks {
			var npoints uint64
			exceeds := false
			for _, l := range ls {
				npoints += l.NPoints
				if npoints > ncrit {
					exceeds = true
					break
				}
			}
			if exceeds {
				toSplit = append(toSplit, key)
			}
		}

		if len(toSplit) == 0 {
			break
		}

		for _, key := range toSplit {
			if key.Level >= depth {
				return nil, fmt.Errorf("%w: block %v", ErrDepthExceeded, key)
			}

			ls := blocks[key]
			children := morton.Children(key, depth)
			delete(blocks, key)

			blocktree.AssignBlocksToLeaves(ls, children, depth)
			for _, l := range ls {
				blocks[l.Block] = append(blocks[l.Block], l)
			}
		}
	}

	return blocks, nil
}
