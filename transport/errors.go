package transport

import "errors"

// ErrClosed is returned when an operation is attempted on a rank's
// connection after the owning Transport has been torn down.
var ErrClosed = errors.New("transport: connection closed")

// ErrRankOutOfRange is returned when a destination, root, or peer rank
// falls outside [0, Size()).
var ErrRankOutOfRange = errors.New("transport: rank out of range")

// ErrSizeMismatch is returned when AllToAll is called with a per-destination
// payload slice whose length does not equal Size().
var ErrSizeMismatch = errors.New("transport: payload count does not match rank count")
