package transport_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skailasa/distributed-trees/transport"
)

func TestReceiveAnyRespectsContextCancellation(t *testing.T) {
	group := transport.NewInProcessGroup(2)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := group[0].ReceiveAny(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
