package morton

import "sort"

// Parent returns the Key one level coarser than key. The root maps to
// itself. Whether each axis anchor survives into the parent is decided by
// oddIndex: an anchor "survives" (keeps its value) when it is a multiple
// of the parent's cell width; otherwise (an odd multiple of key's own cell
// width) the parent's anchor is key's anchor minus one cell width at
// key's own level.
func Parent(key Key, depth uint64) Key {
	if key.AX == 0 && key.AY == 0 && key.AZ == 0 {
		if key.Level == 0 {
			return Key{}
		}
		return Key{Level: key.Level - 1}
	}

	levelDiff := depth - key.Level
	shift := uint64(1) << levelDiff
	parentLevelDiff := depth - (key.Level - 1)

	parent := Key{AX: key.AX, AY: key.AY, AZ: key.AZ, Level: key.Level - 1}
	if oddIndex(key.AX, parentLevelDiff) {
		parent.AX = key.AX - shift
	}
	if oddIndex(key.AY, parentLevelDiff) {
		parent.AY = key.AY - shift
	}
	if oddIndex(key.AZ, parentLevelDiff) {
		parent.AZ = key.AZ - shift
	}
	return parent
}

// oddIndex reports whether idx is not a multiple of the parent's cell
// width 2^parentLevelDiff, i.e. whether it does not survive unchanged
// into the parent's anchor.
func oddIndex(idx, parentLevelDiff uint64) bool {
	factor := uint64(1) << parentLevelDiff
	return idx%factor != 0
}

// Siblings returns the eight keys at key's own level that share key's
// parent, including key itself.
func Siblings(key Key, depth uint64) Keys {
	parent := Parent(key, depth)
	firstChild := parent
	firstChild.Level++

	levelDiff := depth - key.Level
	shift := uint64(1) << levelDiff

	siblings := make(Keys, 0, 8)
	for i := uint64(0); i < 2; i++ {
		for j := uint64(0); j < 2; j++ {
			for k := uint64(0); k < 2; k++ {
				siblings = append(siblings, Key{
					AX:    firstChild.AX + shift*i,
					AY:    firstChild.AY + shift*j,
					AZ:    firstChild.AZ + shift*k,
					Level: firstChild.Level,
				})
			}
		}
	}
	return siblings
}

// Children returns the eight keys one level finer than key.
func Children(key Key, depth uint64) Keys {
	firstChild := key
	firstChild.Level++
	return Siblings(firstChild, depth)
}

// Ancestors returns key's proper ancestor chain, built parent-first (key's
// immediate parent, then its parent, ...) until the root is reached, so
// the root is always last. For the root itself the result is {root}.
func Ancestors(key Key, depth uint64) Keys {
	root := Key{}
	parent := Parent(key, depth)
	ancestors := Keys{parent}

	for !parent.Equal(root) {
		parent = Parent(parent, depth)
		ancestors = append(ancestors, parent)
	}
	return ancestors
}

// FindFinestCommonAncestor returns the deepest key that is an ancestor of
// both a and b.
func FindFinestCommonAncestor(a, b Key, depth uint64) Key {
	ancestorsA := make(map[Key]struct{}, a.Level+1)
	for _, anc := range Ancestors(a, depth) {
		ancestorsA[anc] = struct{}{}
	}

	var best Key
	found := false
	for _, anc := range Ancestors(b, depth) {
		if _, ok := ancestorsA[anc]; ok {
			if !found || best.Less(anc) {
				best = anc
				found = true
			}
		}
	}
	return best
}

// FindDeepestFirstDescendent returns the deepest-level descendant of key
// that shares its anchor (DFD).
func FindDeepestFirstDescendent(key Key, depth uint64) Key {
	if key.Level < depth {
		return Key{AX: key.AX, AY: key.AY, AZ: key.AZ, Level: depth}
	}
	return key
}

// FindDeepestLastDescendent returns the deepest-level descendant of key
// reached by repeatedly taking the maximum child (DLD).
func FindDeepestLastDescendent(key Key, depth uint64) Key {
	if key.Level >= depth {
		return key
	}

	levelDiff := depth - key.Level
	dld := maxKey(Children(key, depth))
	for levelDiff > 1 {
		dld = maxKey(Children(dld, depth))
		levelDiff--
	}
	return dld
}

// FindDescendents returns every descendant of key at depth, i.e. the
// depth-level cells covered by key's footprint.
func FindDescendents(key Key, level, depth uint64) Keys {
	descendents := Keys{key}
	levelDiff := depth - level

	for levelDiff > 0 {
		var next Keys
		for _, d := range descendents {
			next = append(next, Children(d, depth)...)
		}
		descendents = next
		levelDiff--
	}
	return descendents
}

// maxKey returns the greatest key in ks by Morton order. Panics on an empty
// slice, mirroring the reference implementation's unwrap() on an iterator
// that is always non-empty in context (Children always returns 8 keys).
func maxKey(ks Keys) Key {
	cp := append(Keys(nil), ks...)
	sort.Sort(cp)
	return cp[len(cp)-1]
}
