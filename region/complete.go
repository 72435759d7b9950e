package region

import (
	"sort"

	"github.com/skailasa/distributed-trees/morton"
)

// CompleteRegion returns the sorted, minimal linear set of keys that
// exactly covers the open interval (a, b): it excludes a and b themselves,
// excludes any ancestor of b, and refines only where necessary. a must be
// strictly less than b.
//
// Adapted from Algorithm 3 of Sundar, Sampath & Biros (2008): starting
// from the children of the finest common ancestor of a and b, each
// candidate octant w is emitted if a < w < b and w is not an ancestor of
// b; otherwise, if w is an ancestor of a or b, it is replaced by its own
// children and the refinement continues. The process repeats until no
// further refinement occurs.
func CompleteRegion(a, b morton.Key, depth uint64) (morton.Keys, error) {
	if !a.Less(b) {
		return nil, ErrKeysNotOrdered
	}

	ancestorsA := keySet(morton.Ancestors(a, depth))
	ancestorsB := keySet(morton.Ancestors(b, depth))
	na := morton.FindFinestCommonAncestor(a, b, depth)

	working := keySet(morton.Children(na, depth))

	var result morton.Keys
	for {
		aux := make(map[morton.Key]struct{})
		accepted := 0

		for w := range working {
			switch {
			case a.Less(w) && w.Less(b) && !ancestorsB[w]:
				aux[w] = struct{}{}
				accepted++
			case ancestorsA[w] || ancestorsB[w]:
				for _, child := range morton.Children(w, depth) {
					aux[child] = struct{}{}
				}
			}
		}

		if accepted == len(working) {
			result = setToKeys(aux)
			break
		}
		working = aux
	}

	sort.Sort(result)
	return result, nil
}

func keySet(ks morton.Keys) map[morton.Key]bool {
	set := make(map[morton.Key]bool, len(ks))
	for _, k := range ks {
		set[k] = true
	}
	return set
}

func setToKeys(set map[morton.Key]struct{}) morton.Keys {
	keys := make(morton.Keys, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	return keys
}
