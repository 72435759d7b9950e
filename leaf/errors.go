package leaf

import "errors"

// ErrCapacityExceeded indicates merging duplicate leaf keys would pack
// more than ncrit points into a single leaf — the chosen tree depth is
// too shallow for the input point distribution.
var ErrCapacityExceeded = errors.New("leaf: npoints would exceed ncrit, increase tree depth")
