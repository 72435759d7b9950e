package blocktree

import (
	"context"
	"sort"

	"github.com/skailasa/distributed-trees/morton"
	"github.com/skailasa/distributed-trees/region"
	"github.com/skailasa/distributed-trees/transport"
	"github.com/skailasa/distributed-trees/wire"
)

// CompleteBlocktree stitches each rank's seed octants into a single
// distributed blocktree (Algorithm 4 of Sundar, Sampath & Biros 2008).
// Rank 0 augments its seeds with a child of the finest common ancestor
// between the global root's deepest-first descendant and its own minimum
// seed, so the blocktree covers from the very first octant; the last
// rank symmetrically augments with a child covering the last octant. A
// boundary child equal to the seed it was derived from (a seed anchored
// at the first or last corner) is not added twice.
// Every rank but the first then hands its minimum key to the previous
// rank, which appends it as the right boundary for its own region
// completion.
//
// A rank with no seeds of its own (it was handed no leaves by sample
// sort) contributes no octants, but still takes part in the min-key
// relay: it receives its neighbour's boundary and forwards it on
// unchanged, rather than bailing out before the collectives every other
// rank is still waiting on. Rank 0 or the last rank being seedless falls
// back to the root's deepest-first/last descendant directly in place of
// a derived child, since there is no local minimum/maximum to derive one
// from.
func CompleteBlocktree(ctx context.Context, tr transport.Transport, seeds morton.Keys, depth uint64) (morton.Keys, error) {
	rank, size := tr.Rank(), tr.Size()

	working := append(morton.Keys(nil), seeds...)

	if rank == 0 {
		dfdRoot := morton.FindDeepestFirstDescendent(morton.Root, depth)
		var firstBoundary morton.Key
		if len(working) > 0 {
			na := morton.FindFinestCommonAncestor(dfdRoot, minKey(working), depth)
			firstBoundary = na
			firstBoundary.Level++
		} else {
			firstBoundary = dfdRoot
		}
		if len(working) == 0 || !firstBoundary.Equal(minKey(working)) {
			working = append(working, firstBoundary)
		}
		sort.Sort(working)
	}

	if rank == size-1 {
		dldRoot := morton.FindDeepestLastDescendent(morton.Root, depth)
		var lastBoundary morton.Key
		if len(working) > 0 {
			na := morton.FindFinestCommonAncestor(dldRoot, maxKeyOf(working), depth)
			lastBoundary = maxKeyOf(morton.Children(na, depth))
		} else {
			lastBoundary = dldRoot
		}
		if len(working) == 0 || !lastBoundary.Equal(maxKeyOf(working)) {
			working = append(working, lastBoundary)
		}
	}

	// Receive before sending: a seedless middle rank has nothing of its
	// own to contribute, so it must learn its right-hand boundary from
	// the next rank before it can relay anything leftward.
	if rank < size-1 {
		data, _, err := tr.ReceiveAny(ctx)
		if err != nil {
			return nil, err
		}
		k, err := wire.UnpackKey(data)
		if err != nil {
			return nil, err
		}
		// By construction this is the smallest key the next rank holds,
		// which is greater than every key already in working, so the
		// list stays sorted without re-sorting.
		working = append(working, k)
	}

	if rank > 0 {
		// Reachable here only once working is non-empty: either this
		// rank owns seeds, is the last rank with the dldRoot fallback
		// above, or just received a boundary to relay from the rank
		// after it.
		if err := tr.Send(ctx, rank-1, wire.PackKey(minKey(working))); err != nil {
			return nil, err
		}
	}

	var local morton.Keys
	for i := 0; i < len(working)-1; i++ {
		a, b := working[i], working[i+1]
		completed, err := region.CompleteRegion(a, b, depth)
		if err != nil {
			return nil, err
		}
		local = append(local, a)
		local = append(local, completed...)
	}

	if rank == size-1 {
		local = append(local, working[len(working)-1])
	}

	sort.Sort(local)
	return local, nil
}
