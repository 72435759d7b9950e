package region

import "github.com/skailasa/distributed-trees/morton"

// Linearise removes ancestor-descendant overlaps from a sorted list of
// keys (Algorithm 7 of Sundar, Sampath & Biros 2008): a key is dropped
// when it is a proper ancestor of its immediate successor. The final key
// in the input always survives, since it has no successor to be an
// ancestor of.
//
// Linearise is idempotent: Linearise(Linearise(S)) == Linearise(S).
func Linearise(keys morton.Keys, depth uint64) morton.Keys {
	if len(keys) == 0 {
		return morton.Keys{}
	}

	linearised := make(morton.Keys, 0, len(keys))
	for i := 0; i < len(keys)-1; i++ {
		curr := keys[i]
		next := keys[i+1]

		isAncestorOfNext := false
		for _, anc := range morton.Ancestors(next, depth) {
			if anc.Equal(curr) {
				isAncestorOfNext = true
				break
			}
		}
		if !isAncestorOfNext {
			linearised = append(linearised, curr)
		}
	}

	return append(linearised, keys[len(keys)-1])
}
