package balance

import (
	"context"

	"github.com/skailasa/distributed-trees/leaf"
	"github.com/skailasa/distributed-trees/morton"
	"github.com/skailasa/distributed-trees/transport"
	"github.com/skailasa/distributed-trees/wire"
)

// TransferToFinalBlocktree migrates leaves whose block is in sentBlocks
// (Partition's donation set) to the previous rank, and receives whatever
// the next rank donates in turn, so each rank's leaves match its share
// of the repartitioned blocktree.
//
// With a single rank there is no neighbour to migrate anything to or
// from, so the exchange is skipped and localLeaves is returned unchanged
// rather than self-looped through the transport.
func TransferToFinalBlocktree(ctx context.Context, tr transport.Transport, sentBlocks morton.Keys, localLeaves leaf.Leaves) (leaf.Leaves, error) {
	rank, size := tr.Rank(), tr.Size()
	if size == 1 {
		return localLeaves, nil
	}

	sentSet := make(map[morton.Key]bool, len(sentBlocks))
	for _, b := range sentBlocks {
		sentSet[b] = true
	}

	var msg, kept leaf.Leaves
	for _, l := range localLeaves {
		if sentSet[l.Block] {
			msg = append(msg, l)
		} else {
			kept = append(kept, l)
		}
	}

	prevRank := (rank - 1 + size) % size
	if err := tr.Send(ctx, prevRank, wire.PackLeaves(msg)); err != nil {
		return nil, err
	}

	data, _, err := tr.ReceiveAny(ctx)
	if err != nil {
		return nil, err
	}
	received, err := wire.UnpackLeaves(data)
	if err != nil {
		return nil, err
	}

	return append(kept, received...), nil
}
