package transport

import (
	"context"
	"fmt"
)

// Null is the single-rank Transport: every collective is the identity on
// its own input, and point-to-point calls always fail, since there is no
// other rank to exchange with. It lets the pipeline run unmodified for
// P=1 without special-casing the driver.
type Null struct{}

func (Null) Rank() int { return 0 }
func (Null) Size() int { return 1 }

func (Null) AllGather(ctx context.Context, send []byte) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return [][]byte{send}, nil
}

func (Null) ScanSum(ctx context.Context, local uint64) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return local, nil
}

func (Null) Broadcast(ctx context.Context, data []byte, root int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if root != 0 {
		return nil, fmt.Errorf("%w: %d", ErrRankOutOfRange, root)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (Null) Barrier(ctx context.Context) error {
	return ctx.Err()
}

func (Null) Send(ctx context.Context, dest int, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("%w: no peer rank %d in a single-rank transport", ErrRankOutOfRange, dest)
}

func (Null) ReceiveAny(ctx context.Context) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return nil, 0, fmt.Errorf("%w: single-rank transport never receives", ErrClosed)
}
