// Package morton_test exercises the Morton codec's key algebra against the
// fixed examples from Sundar, Sampath & Biros (2008) and the reference
// implementation's own test vectors.
package morton_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skailasa/distributed-trees/morton"
)

func TestParent(t *testing.T) {
	const depth = 3

	cases := []struct {
		name     string
		child    morton.Key
		expected morton.Key
	}{
		{"deepest", morton.Key{AX: 3, AY: 3, AZ: 3, Level: 3}, morton.Key{AX: 2, AY: 2, AZ: 2, Level: 2}},
		{"level2", morton.Key{AX: 2, AY: 2, AZ: 2, Level: 2}, morton.Key{AX: 0, AY: 0, AZ: 0, Level: 1}},
		{"level1", morton.Key{AX: 0, AY: 0, AZ: 0, Level: 1}, morton.Key{AX: 0, AY: 0, AZ: 0, Level: 0}},
		{"root", morton.Key{AX: 0, AY: 0, AZ: 0, Level: 0}, morton.Key{AX: 0, AY: 0, AZ: 0, Level: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := morton.Parent(tc.child, depth)
			require.True(t, got.Equal(tc.expected), "Parent(%v) = %v, want %v", tc.child, got, tc.expected)
		})
	}
}

func TestSiblings(t *testing.T) {
	const depth = 3
	key := morton.Key{Level: 1}
	const shift = uint64(1) << (depth - 1)

	expected := morton.Keys{
		{Level: 1},
		{AX: shift, Level: 1},
		{AY: shift, Level: 1},
		{AZ: shift, Level: 1},
		{AY: shift, AZ: shift, Level: 1},
		{AX: shift, AY: shift, Level: 1},
		{AX: shift, AZ: shift, Level: 1},
		{AX: shift, AY: shift, AZ: shift, Level: 1},
	}
	sort.Sort(expected)

	result := morton.Siblings(key, depth)
	sort.Sort(result)
	require.Equal(t, expected, result)
}

func TestChildren(t *testing.T) {
	key := morton.Key{}
	const depth = 5
	const shift = uint64(1) << (depth - 1)

	expected := morton.Keys{
		{Level: 1},
		{AX: shift, Level: 1},
		{AY: shift, Level: 1},
		{AZ: shift, Level: 1},
		{AY: shift, AZ: shift, Level: 1},
		{AX: shift, AY: shift, Level: 1},
		{AX: shift, AZ: shift, Level: 1},
		{AX: shift, AY: shift, AZ: shift, Level: 1},
	}
	sort.Sort(expected)

	result := morton.Children(key, depth)
	sort.Sort(result)
	require.Equal(t, expected, result)
}

func TestOrdering(t *testing.T) {
	const depth = 3

	key := morton.Key{Level: 1}
	keys := morton.Siblings(key, depth)
	sort.Sort(keys)

	for i := 1; i < len(keys); i++ {
		require.True(t, keys[i-1].Less(keys[i]), "keys[%d]=%v should sort before keys[%d]=%v", i-1, keys[i-1], i, keys[i])
	}

	// Level makes a difference at equal anchors: the coarser key is lesser.
	a := morton.Key{Level: 0}
	b := morton.Key{Level: 1}
	require.True(t, a.Less(b))

	// Children are always greater than their parent.
	parent := morton.Key{Level: 1}
	for _, child := range morton.Children(parent, depth) {
		require.True(t, parent.Less(child))
	}

	// If a < b < c and c is not a descendant of b, then a < d < c for
	// every descendant d of b.
	a = morton.Key{Level: 1}
	descendants := morton.Children(a, depth)
	siblings := morton.Siblings(a, depth)

	for _, d := range descendants {
		require.True(t, a.Less(d))
		for _, b := range siblings {
			if !b.Equal(a) {
				require.True(t, d.Less(b))
				require.True(t, a.Less(b))
			}
		}
	}
}

func TestAncestors(t *testing.T) {
	const depth = 3

	expected := morton.Keys{{Level: 0}, {Level: 1}}
	sort.Sort(expected)

	result := morton.Ancestors(morton.Key{Level: 2}, depth)
	sort.Sort(result)
	require.Equal(t, expected, result)

	result = morton.Ancestors(morton.Key{AX: 2, AZ: 2, Level: 2}, depth)
	sort.Sort(result)
	require.Equal(t, expected, result)
}

func TestFindFinestCommonAncestor(t *testing.T) {
	const depth = 3
	a := morton.Key{Level: 2}
	children := morton.Children(a, depth)

	// Ancestor sets hold proper ancestors only, so a itself is not a
	// common ancestor of a and its child: the finest one is a's parent.
	parent := morton.Parent(a, depth)
	for _, c := range children {
		fca := morton.FindFinestCommonAncestor(a, c, depth)
		require.True(t, fca.Equal(parent))
	}
}

func TestDeepestFirstDescendent(t *testing.T) {
	const depth = 4
	key := morton.Key{AX: 2, Level: 2}
	dfd := morton.FindDeepestFirstDescendent(key, depth)
	require.Equal(t, key.AX, dfd.AX)
	require.Equal(t, key.AY, dfd.AY)
	require.Equal(t, key.AZ, dfd.AZ)
	require.Equal(t, uint64(depth), dfd.Level)

	// Already at depth: DFD is the key itself.
	require.True(t, morton.FindDeepestFirstDescendent(dfd, depth).Equal(dfd))
}

func TestDeepestLastDescendent(t *testing.T) {
	const depth = 4
	root := morton.Key{}
	dld := morton.FindDeepestLastDescendent(root, depth)
	require.Equal(t, uint64(depth), dld.Level)

	// The DLD must be a descendant reached only via maximum children, so
	// it must be an ancestor-free of every other depth-level key under
	// root: in particular it is the greatest depth-level key overall.
	all := morton.FindDescendents(root, 0, depth)
	sort.Sort(all)
	require.True(t, dld.Equal(all[len(all)-1]))
}
