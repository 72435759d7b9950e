package region

import (
	"sort"

	"github.com/skailasa/distributed-trees/leaf"
	"github.com/skailasa/distributed-trees/morton"
)

// FindSeeds locates the coarsest keys that locally cover localLeaves: the
// minimal octant completion between this rank's least and greatest leaf,
// plus those two extrema. The seeds are the nodes among that completed
// region whose level equals the minimum level present — the coarsest
// landmarks available to stitch per-rank coverage into a distributed
// blocktree (package blocktree, Algorithm 4).
//
// A rank that sample sort handed no leaves contributes no seeds: this is
// a valid SPMD outcome (spec.md §8 scenario 2 sends every leaf to a
// single rank), not an error, since downstream blocktree stitching must
// keep exchanging boundary keys with every rank regardless of how much
// data it locally owns.
func FindSeeds(localLeaves leaf.Leaves, depth uint64) (morton.Keys, error) {
	if len(localLeaves) == 0 {
		return nil, nil
	}

	min, max := localLeaves[0].Key, localLeaves[0].Key
	for _, l := range localLeaves[1:] {
		if l.Key.Less(min) {
			min = l.Key
		}
		if max.Less(l.Key) {
			max = l.Key
		}
	}

	var complete morton.Keys
	if !min.Equal(max) {
		var err error
		complete, err = CompleteRegion(min, max, depth)
		if err != nil {
			return nil, err
		}
	}
	complete = append(complete, min, max)

	coarsest := depth
	for _, k := range complete {
		if k.Level < coarsest {
			coarsest = k.Level
		}
	}

	seen := make(map[morton.Key]bool, len(complete))
	seeds := make(morton.Keys, 0, len(complete))
	for _, k := range complete {
		if k.Level == coarsest && !seen[k] {
			seen[k] = true
			seeds = append(seeds, k)
		}
	}

	sort.Sort(seeds)
	return seeds, nil
}
