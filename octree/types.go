package octree

import "github.com/skailasa/distributed-trees/leaf"

// Tree is the final, load-balanced, NCRIT-adaptive octree: leaves
// grouped by the block key that owns them.
type Tree = leaf.Tree
