// Package morton implements the anchor-form Morton (Z-order) encoding used
// throughout the distributed octree pipeline.
//
// A Key is a 4-tuple (AX, AY, AZ, Level): the first three components are the
// integer coordinates of an octant's minimum corner at the deepest
// representable level (DEPTH), and Level is the octant's own level of
// discretization (0 == root). Keys compare via the less-msb predicate of
// Chan (2002), which recovers bit-interleaved Morton order without ever
// interleaving the bits of large integers: for two keys with equal anchors
// the coarser one sorts first; otherwise the axis whose XOR'd anchors have
// the highest set bit decides the order.
//
// This package is pure: every function is a deterministic transform over
// Key/Point values with no I/O and no shared state. EncodePoints is the one function
// that fans out across goroutines, since per-point encoding has no
// ordering requirement (spec: "shared-memory data parallelism with no
// ordering requirement across elements").
//
// Reference: Sundar, Sampath & Biros, "Bottom-up construction and 2:1
// balance refinement of linear octrees in parallel", SIAM J. Sci. Comput.
// 30.5 (2008); Chan, "Closest-point problems simplified on the RAM", SODA
// (2002).
package morton
