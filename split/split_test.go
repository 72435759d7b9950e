package split_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skailasa/distributed-trees/leaf"
	"github.com/skailasa/distributed-trees/morton"
	"github.com/skailasa/distributed-trees/split"
)

func TestSplitNoRefinementNeeded(t *testing.T) {
	root := morton.Key{Level: 0}
	leaves := leaf.Leaves{
		{Key: morton.Key{Level: 1}, Block: root, NPoints: 3},
		{Key: morton.Key{AX: 1, Level: 1}, Block: root, NPoints: 2},
	}

	tree, err := split.Split(leaves, 3, 10)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[root], 2)
}

func TestSplitRefinesOverCapacityBlock(t *testing.T) {
	const depth = 2
	root := morton.Key{Level: 0}
	children := morton.Children(root, depth)

	var leaves leaf.Leaves
	for i, c := range children {
		leaves = append(leaves, leaf.Leaf{Key: c, Block: root, NPoints: uint64(5 + i)})
	}

	// The largest leaf holds 12 points, so ncrit must be at least 12 for
	// every child block to fit; the root (68 points) still exceeds it.
	tree, err := split.Split(leaves, depth, 12)
	require.NoError(t, err)

	require.NotContains(t, tree, root)

	var total uint64
	for _, ls := range tree {
		for _, l := range ls {
			total += l.NPoints
		}
	}
	var want uint64
	for i := range children {
		want += uint64(5 + i)
	}
	require.Equal(t, want, total)
}

func TestSplitDepthExceeded(t *testing.T) {
	const depth = 1
	block := morton.Key{Level: depth}
	leaves := leaf.Leaves{
		{Key: block, Block: block, NPoints: 100},
	}

	_, err := split.Split(leaves, depth, 10)
	require.ErrorIs(t, err, split.ErrDepthExceeded)
}
