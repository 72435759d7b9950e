// Package octree composes the distributed octree construction pipeline:
// Morton encoding, parallel sample sort, coarse blocktree completion,
// load-balanced repartitioning, and NCRIT-adaptive splitting, into a
// single per-rank driver, UnbalancedTree.
package octree
