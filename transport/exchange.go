package transport

import "context"

// AllToAll exchanges one payload per destination rank: perDest[d] is sent
// to rank d (perDest[Rank()] is handled locally, never sent over the
// wire), and the returned slice holds, per source rank, what that rank
// sent here. It composes Send and ReceiveAny exactly as sample sort's
// bucket exchange and the blocktree transfer stages do: every rank sends
// to every other rank it owes data to, then drains exactly size-1
// incoming messages, tagging each by its sender.
//
// A Barrier after the exchange ensures no rank starts the next collective
// or point-to-point phase before every send in this round has been
// observed as delivered by its receiver's inbox — sends themselves never
// block on delivery, but the protocol's phase ordering does.
func AllToAll(ctx context.Context, t Transport, perDest [][]byte) ([][]byte, error) {
	size := t.Size()
	if len(perDest) != size {
		return nil, ErrSizeMismatch
	}

	rank := t.Rank()
	result := make([][]byte, size)
	result[rank] = perDest[rank]

	for d := 0; d < size; d++ {
		if d == rank {
			continue
		}
		if err := t.Send(ctx, d, perDest[d]); err != nil {
			return nil, err
		}
	}

	for i := 0; i < size-1; i++ {
		data, src, err := t.ReceiveAny(ctx)
		if err != nil {
			return nil, err
		}
		result[src] = data
	}

	if err := t.Barrier(ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// ExchangeWithNeighbor sends data to peer and returns the next message
// this rank receives, from whichever sender delivers it first. The
// pipeline's neighbour exchanges (blocktree.CompleteBlocktree,
// balance.Partition, balance.TransferToFinalBlocktree) call Send and
// ReceiveAny directly and do not use this helper. When
// hasPeer is false (a rank with no previous or no next neighbor), no
// message is sent or expected and a nil slice is returned.
func ExchangeWithNeighbor(ctx context.Context, t Transport, peer int, hasPeer bool, data []byte) ([]byte, error) {
	if !hasPeer {
		return nil, nil
	}
	if err := t.Send(ctx, peer, data); err != nil {
		return nil, err
	}
	recv, _, err := t.ReceiveAny(ctx)
	if err != nil {
		return nil, err
	}
	return recv, nil
}
