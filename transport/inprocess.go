package transport

import (
	"context"
	"fmt"
	"sync"
)

// hub holds the state shared by every rank's InProcess handle: one inbox
// per rank for point-to-point delivery, and the scratch buffers + barriers
// backing the collectives. Collectives are implemented as two-phase
// rendezvous over a shared buffer: phase one waits for every rank to
// publish into the buffer, phase two waits for every rank to have read it
// before the buffer is reused by the next call.
type hub struct {
	size int

	write *cyclicBarrier
	read  *cyclicBarrier

	mu        sync.Mutex
	gatherBuf [][]byte
	scanBuf   []uint64
	bcastBuf  []byte
	inboxes   []*inbox
}

func newHub(size int) *hub {
	h := &hub{
		size:      size,
		write:     newCyclicBarrier(size),
		read:      newCyclicBarrier(size),
		gatherBuf: make([][]byte, size),
		scanBuf:   make([]uint64, size),
		inboxes:   make([]*inbox, size),
	}
	for i := range h.inboxes {
		h.inboxes[i] = newInbox()
	}
	return h
}

// InProcess implements Transport by simulating P ranks as goroutines
// sharing a hub, for use in tests and in cmd/octreebench's single-process
// benchmark driver.
type InProcess struct {
	hub  *hub
	rank int
}

// NewInProcessGroup builds size InProcess transports, one per rank, all
// sharing the same hub.
func NewInProcessGroup(size int) []*InProcess {
	if size <= 0 {
		return nil
	}
	h := newHub(size)
	group := make([]*InProcess, size)
	for r := range group {
		group[r] = &InProcess{hub: h, rank: r}
	}
	return group
}

func (t *InProcess) Rank() int { return t.rank }
func (t *InProcess) Size() int { return t.hub.size }

func (t *InProcess) checkRank(r int) error {
	if r < 0 || r >= t.hub.size {
		return fmt.Errorf("%w: %d", ErrRankOutOfRange, r)
	}
	return nil
}

func (t *InProcess) AllGather(ctx context.Context, send []byte) ([][]byte, error) {
	h := t.hub
	h.mu.Lock()
	h.gatherBuf[t.rank] = send
	h.mu.Unlock()
	h.write.Wait()

	h.mu.Lock()
	result := make([][]byte, h.size)
	copy(result, h.gatherBuf)
	h.mu.Unlock()
	h.read.Wait()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return result, nil
}

func (t *InProcess) ScanSum(ctx context.Context, local uint64) (uint64, error) {
	h := t.hub
	h.mu.Lock()
	h.scanBuf[t.rank] = local
	h.mu.Unlock()
	h.write.Wait()

	var sum uint64
	h.mu.Lock()
	for r := 0; r <= t.rank; r++ {
		sum += h.scanBuf[r]
	}
	h.mu.Unlock()
	h.read.Wait()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}
	return sum, nil
}

func (t *InProcess) Broadcast(ctx context.Context, data []byte, root int) ([]byte, error) {
	if err := t.checkRank(root); err != nil {
		return nil, err
	}
	h := t.hub
	if t.rank == root {
		h.mu.Lock()
		h.bcastBuf = data
		h.mu.Unlock()
	}
	h.write.Wait()

	h.mu.Lock()
	result := make([]byte, len(h.bcastBuf))
	copy(result, h.bcastBuf)
	h.mu.Unlock()
	h.read.Wait()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return result, nil
}

func (t *InProcess) Barrier(ctx context.Context) error {
	t.hub.write.Wait()
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return nil
}

func (t *InProcess) Send(ctx context.Context, dest int, data []byte) error {
	if err := t.checkRank(dest); err != nil {
		return err
	}
	return t.hub.inboxes[dest].push(ctx, message{data: data, src: t.rank})
}

func (t *InProcess) ReceiveAny(ctx context.Context) ([]byte, int, error) {
	m, err := t.hub.inboxes[t.rank].pop(ctx)
	if err != nil {
		return nil, 0, err
	}
	return m.data, m.src, nil
}
