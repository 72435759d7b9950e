// Package region builds and linearises minimal octree regions between two
// Morton keys — the key algebra that the distributed blocktree pipeline
// (package blocktree) is built on.
//
// CompleteRegion implements Algorithm 3 of Sundar, Sampath & Biros (2008):
// given two distinct keys a < b, it returns the sorted, minimal linear set
// of keys that exactly covers the open interval (a, b), refining only
// where the finest common ancestor of a and b is too coarse.
//
// Linearise implements Algorithm 7 of the same paper: given a sorted list
// of keys, it drops any key that is a proper ancestor of its immediate
// successor, removing ancestor-descendant overlaps.
//
// FindSeeds locates the coarsest keys that locally cover a rank's leaves —
// landmarks used to stitch per-rank blocktrees into a single distributed
// linear octree (package blocktree).
package region
