package leaf

import "github.com/skailasa/distributed-trees/morton"

// Leaf is a deepest-level cell (Key.Level == DEPTH) holding one or more
// particles. Block is the ancestor currently responsible for this leaf in
// the blocktree; it is the zero Key (morton.Root) until assigned.
type Leaf struct {
	Key     morton.Key
	Block   morton.Key
	NPoints uint64
}

// Leaves is a sortable slice of Leaf, ordered by Key.
type Leaves []Leaf

func (ls Leaves) Len() int           { return len(ls) }
func (ls Leaves) Swap(i, j int)      { ls[i], ls[j] = ls[j], ls[i] }
func (ls Leaves) Less(i, j int) bool { return ls[i].Key.Less(ls[j].Key) }

// Equal reports whether l and other name the same leaf key (ignoring
// Block and NPoints, the way the reference implementation's Key-only
// equality does for deduplication purposes).
func (l Leaf) Equal(other Leaf) bool {
	return l.Key.Equal(other.Key)
}

// Tree groups leaves by the block key that owns them: the final,
// NCRIT-adaptive octree produced by package split's refinement.
type Tree map[morton.Key]Leaves
