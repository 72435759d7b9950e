package leaf

import (
	"fmt"
	"sort"

	"github.com/skailasa/distributed-trees/morton"
)

// FromPoints groups a (not necessarily sorted) slice of key-encoded points
// into one Leaf per distinct key, counting how many points share each key.
// It performs no NCRIT enforcement — that happens once, after the global
// sample sort, in UniqueLeaves.
func FromPoints(points []morton.Point) Leaves {
	counts := make(map[morton.Key]uint64, len(points))
	order := make(morton.Keys, 0, len(points))

	for _, p := range points {
		if _, seen := counts[p.Key]; !seen {
			order = append(order, p.Key)
		}
		counts[p.Key]++
	}

	leaves := make(Leaves, len(order))
	for i, k := range order {
		leaves[i] = Leaf{Key: k, NPoints: counts[k]}
	}
	return leaves
}

// UniqueLeaves sorts leaves by key if not already sorted, then merges
// consecutive leaves sharing a key by summing NPoints. It returns
// ErrCapacityExceeded, naming the offending key, if a merge would pack
// more than ncrit points into a single leaf: the chosen tree depth is too
// shallow for the point distribution.
//
// An empty leaves is a valid outcome, not an error: a rank that sample
// sort handed no leaves returns an empty Leaves and continues through
// the rest of the pipeline like any other rank.
func UniqueLeaves(leaves Leaves, ncrit uint64, sorted bool) (Leaves, error) {
	if len(leaves) == 0 {
		return Leaves{}, nil
	}

	if !sorted {
		cp := append(Leaves(nil), leaves...)
		sort.Sort(cp)
		leaves = cp
	}

	unique := make(Leaves, 0, len(leaves))
	unique = append(unique, leaves[0])

	for _, next := range leaves[1:] {
		curr := &unique[len(unique)-1]
		if !curr.Key.Equal(next.Key) {
			unique = append(unique, next)
			continue
		}

		merged := curr.NPoints + next.NPoints
		if merged > ncrit {
			return nil, fmt.Errorf("%w: leaf %v npoints=%d", ErrCapacityExceeded, curr.Key, merged)
		}
		curr.NPoints = merged
	}

	return unique, nil
}
