package balance

import (
	"context"
	"encoding/binary"

	"github.com/skailasa/distributed-trees/morton"
	"github.com/skailasa/distributed-trees/transport"
	"github.com/skailasa/distributed-trees/wire"
)

// Partition computes a new even split of blocktree's blocks across ranks
// by cumulative weight, exchanges the donated blocks with neighbouring
// ranks, mutates *blocktree in place to reflect the new assignment, and
// returns q, the set of blocks this rank handed away.
//
// With w = ceil(totalWeight/size) and k = totalWeight mod size, the rank
// with 1-based id p targets the global cumulative-weight interval
// [(p-1)(w+1), p(w+1)) when p <= k, and [(p-1)w+k, pw+k) otherwise.
// Blocks whose cumulative weight falls in the previous rank's interval
// form q and are handed to the previous rank; rank 0 has no previous
// rank and donates nothing. With a single rank there is no neighbour to hand blocks to,
// so the donation exchange is skipped and *blocktree is left untouched
// regardless of q's contents, rather than self-looping a no-op send
// through the transport.
func Partition(ctx context.Context, tr transport.Transport, weights []Weight, blocktree *morton.Keys) (morton.Keys, error) {
	rank, size := tr.Rank(), tr.Size()

	var localWeight uint64
	for _, w := range weights {
		localWeight += w.Count
	}
	localNBlocks := uint64(len(*blocktree))

	cumulativeWeight, err := tr.ScanSum(ctx, localWeight)
	if err != nil {
		return nil, err
	}
	if _, err := tr.ScanSum(ctx, localNBlocks); err != nil {
		return nil, err
	}

	totalBuf := make([]byte, 8)
	if rank == size-1 {
		binary.LittleEndian.PutUint64(totalBuf, cumulativeWeight)
	}
	bcast, err := tr.Broadcast(ctx, totalBuf, size-1)
	if err != nil {
		return nil, err
	}
	totalWeight := binary.LittleEndian.Uint64(bcast)

	sz := uint64(size)
	w := (totalWeight + sz - 1) / sz
	k := totalWeight % sz

	localCumulative := make([]uint64, len(weights))
	var sum uint64
	for i, wt := range weights {
		sum += wt.Count
		localCumulative[i] = sum + cumulativeWeight - localWeight
	}

	// p is the previous rank's 1-based id; for rank 0 it is 0 and the
	// interval stays empty (cond1 == cond2 == 0).
	p := uint64(rank)
	var cond1, cond2 uint64
	switch {
	case p == 0:
	case p <= k:
		cond1 = (p - 1) * (w + 1)
		cond2 = p * (w + 1)
	default:
		cond1 = (p-1)*w + k
		cond2 = p*w + k
	}

	var q morton.Keys
	for i, block := range *blocktree {
		if cond1 <= localCumulative[i] && localCumulative[i] < cond2 {
			q = append(q, block)
		}
	}

	if size > 1 {
		prevRank := (rank - 1 + size) % size

		if err := tr.Send(ctx, prevRank, wire.PackKeys(q)); err != nil {
			return nil, err
		}
		data, _, err := tr.ReceiveAny(ctx)
		if err != nil {
			return nil, err
		}
		received, err := wire.UnpackKeys(data)
		if err != nil {
			return nil, err
		}

		qSet := make(map[morton.Key]bool, len(q))
		for _, bk := range q {
			qSet[bk] = true
		}
		remaining := (*blocktree)[:0:0]
		for _, b := range *blocktree {
			if !qSet[b] {
				remaining = append(remaining, b)
			}
		}
		*blocktree = append(remaining, received...)
	}

	return q, nil
}
