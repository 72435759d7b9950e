package region

import "errors"

// ErrKeysNotOrdered indicates CompleteRegion was called with a >= b,
// violating its precondition that a and b are distinct and a < b.
var ErrKeysNotOrdered = errors.New("region: keys must satisfy a < b")
