package blocktree

import (
	"context"
	"sort"

	"github.com/skailasa/distributed-trees/leaf"
	"github.com/skailasa/distributed-trees/morton"
	"github.com/skailasa/distributed-trees/transport"
	"github.com/skailasa/distributed-trees/wire"
)

// TransferToCoarseBlocktree hands leaves (and their points) that fall
// below this rank's minimum seed to the previous rank, and receives
// whatever the next rank hands down in turn, so that every rank's leaves
// fall entirely within its own seed-bounded region before Algorithm 4
// stitches the coarse blocktree together.
//
// Rank 0 has no seed boundary to respect yet (its minimum seed is derived
// from its own leaves, not the seed set), since find_seeds has not run
// across ranks at this point in the pipeline — only locally.
//
// A rank with no local leaves (and so no seeds either) has nothing to
// filter against a boundary either way: minSeed is left at its zero
// value, which is never consulted because every loop below that uses it
// ranges over localLeaves/points, and both are empty in that case.
func TransferToCoarseBlocktree(
	ctx context.Context,
	tr transport.Transport,
	points []morton.Point,
	localLeaves leaf.Leaves,
	seeds morton.Keys,
) (leaf.Leaves, []morton.Point, error) {
	rank, size := tr.Rank(), tr.Size()

	var minSeed morton.Key
	if rank == 0 {
		if len(localLeaves) > 0 {
			minSeed = localLeaves[0].Key
			for _, l := range localLeaves[1:] {
				if l.Key.Less(minSeed) {
					minSeed = l.Key
				}
			}
		}
	} else if len(seeds) > 0 {
		minSeed = minKey(seeds)
	}

	prevRank := rank - 1

	if rank > 0 {
		var toSend leaf.Leaves
		for _, l := range localLeaves {
			if l.Key.Less(minSeed) {
				toSend = append(toSend, l)
			}
		}
		if err := tr.Send(ctx, prevRank, wire.PackLeaves(toSend)); err != nil {
			return nil, nil, err
		}
	}

	var received leaf.Leaves
	if rank < size-1 {
		data, _, err := tr.ReceiveAny(ctx)
		if err != nil {
			return nil, nil, err
		}
		rl, err := wire.UnpackLeaves(data)
		if err != nil {
			return nil, nil, err
		}
		received = append(received, rl...)
	}

	if rank > 0 {
		var toSend []morton.Point
		for _, p := range points {
			if p.Key.Less(minSeed) {
				toSend = append(toSend, p)
			}
		}
		if err := tr.Send(ctx, prevRank, wire.PackPoints(toSend)); err != nil {
			return nil, nil, err
		}
	}

	var receivedPoints []morton.Point
	if rank < size-1 {
		data, _, err := tr.ReceiveAny(ctx)
		if err != nil {
			return nil, nil, err
		}
		rp, err := wire.UnpackPoints(data)
		if err != nil {
			return nil, nil, err
		}
		receivedPoints = append(receivedPoints, rp...)
	}

	var keptLeaves leaf.Leaves
	for _, l := range localLeaves {
		if !l.Key.Less(minSeed) {
			keptLeaves = append(keptLeaves, l)
		}
	}
	var keptPoints []morton.Point
	for _, p := range points {
		if !p.Key.Less(minSeed) {
			keptPoints = append(keptPoints, p)
		}
	}

	received = append(received, keptLeaves...)
	receivedPoints = append(receivedPoints, keptPoints...)

	sort.Sort(received)
	return received, receivedPoints, nil
}

func minKey(ks morton.Keys) morton.Key {
	m := ks[0]
	for _, k := range ks[1:] {
		if k.Less(m) {
			m = k
		}
	}
	return m
}

func maxKeyOf(ks morton.Keys) morton.Key {
	m := ks[0]
	for _, k := range ks[1:] {
		if m.Less(k) {
			m = k
		}
	}
	return m
}
