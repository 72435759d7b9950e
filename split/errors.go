package split

import "errors"

// ErrDepthExceeded is returned when a block at the maximum tree depth
// still holds more than NCRIT points worth of leaves: there is no finer
// level left to split into, so refinement cannot proceed.
var ErrDepthExceeded = errors.New("split: block at maximum depth still exceeds ncrit")
