package transport

import "context"

// Transport is the collective and point-to-point messaging surface every
// pipeline stage is written against. Implementations own rank identity:
// a Transport value is already bound to a single rank out of Size() peers.
//
// Collectives (AllGather, ScanSum, Broadcast, Barrier) must be called by
// every rank, in the same order, for every call site — exactly as in an
// SPMD MPI program. Calling a collective on a subset of ranks, or calling
// collectives in different orders on different ranks, deadlocks.
type Transport interface {
	// Rank returns this transport's own rank, in [0, Size()).
	Rank() int

	// Size returns the total number of ranks (P).
	Size() int

	// AllGather exchanges send with every other rank and returns one
	// entry per rank, indexed by rank; result[Rank()] == send.
	AllGather(ctx context.Context, send []byte) ([][]byte, error)

	// ScanSum computes the inclusive prefix sum of local across all
	// ranks in rank order: the value returned to rank r is the sum of
	// local values contributed by ranks 0..=r.
	ScanSum(ctx context.Context, local uint64) (uint64, error)

	// Broadcast distributes data from root to every rank. Non-root
	// callers should pass nil; the returned slice is root's data on
	// every rank.
	Broadcast(ctx context.Context, data []byte, root int) ([]byte, error)

	// Barrier blocks until every rank has called Barrier.
	Barrier(ctx context.Context) error

	// Send delivers data to dest's inbox. Send does not block on the
	// receiver consuming the message; messages queue until received.
	Send(ctx context.Context, dest int, data []byte) error

	// ReceiveAny blocks until a message addressed to this rank is
	// available from any sender, and returns it along with the sender's
	// rank. When multiple senders have messages pending, delivery order
	// across senders is unspecified; per-sender order is preserved.
	ReceiveAny(ctx context.Context) (data []byte, src int, err error)
}
