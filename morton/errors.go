package morton

import "errors"

// Sentinel errors returned by the morton package's boundary-facing
// functions (EncodePoints). The pure per-key helpers (Parent, Children,
// Ancestors, ...) are precondition-only, as in the reference
// implementation, and do not return errors.
var (
	// ErrDepthTooLarge indicates depth exceeds the widest level this Key
	// representation can address (64 bits split three ways per axis).
	ErrDepthTooLarge = errors.New("morton: depth exceeds maximum representable level")

	// ErrLevelExceedsDepth indicates a requested encoding level is deeper
	// than the tree's maximum depth. No function in this package returns
	// it: EncodePoints always encodes at depth itself.
	ErrLevelExceedsDepth = errors.New("morton: level exceeds depth")

	// ErrPointOutOfBounds indicates a point lies outside [x0-r0, x0+r0)
	// on at least one axis and cannot be encoded.
	ErrPointOutOfBounds = errors.New("morton: point outside octree bounds")
)

// maxDepth is the largest depth for which three axis anchors plus a level
// suffix remain comfortably representable as uint64 components (bitwidth/3,
// per spec).
const maxDepth = 64 / 3
