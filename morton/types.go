package morton

// Key is the anchor-form representation of an octant: (AX, AY, AZ) is the
// integer coordinate of its minimum corner at the deepest representable
// level (DEPTH), and Level is the octant's own level of discretization
// (0 == root). Keys are plain comparable values; equal keys are identical
// in all four components.
type Key struct {
	AX, AY, AZ uint64
	Level      uint64
}

// Equal reports whether k and other name the same octant.
func (k Key) Equal(other Key) bool {
	return k.AX == other.AX && k.AY == other.AY && k.AZ == other.AZ && k.Level == other.Level
}

// Less reports whether k sorts before other in Morton order.
//
// If the anchors match, the key at the coarser level (smaller Level) is
// lesser. Otherwise the axis whose XOR'd anchors have the highest-order set
// bit is the deciding axis (Chan 2002's less-msb predicate), and k and
// other are compared on that axis alone.
func (k Key) Less(other Key) bool {
	sameAnchor := k.AX == other.AX && k.AY == other.AY && k.AZ == other.AZ
	if sameAnchor {
		return k.Level < other.Level
	}

	dx := k.AX ^ other.AX
	dy := k.AY ^ other.AY
	dz := k.AZ ^ other.AZ

	axis := 0
	d := [3]uint64{dx, dy, dz}
	for i := 1; i < 3; i++ {
		if lessMSB(d[axis], d[i]) {
			axis = i
		}
	}

	switch axis {
	case 0:
		return k.AX < other.AX
	case 1:
		return k.AY < other.AY
	default:
		return k.AZ < other.AZ
	}
}

// lessMSB reports whether x's highest set bit is lower-order than y's,
// i.e. whether y has the more significant differing bit. Adapted from
// T. Chan, "Closest-point problems simplified on the RAM", SODA (2002):
// x < y && x < x^y.
func lessMSB(x, y uint64) bool {
	return x < y && x < (x^y)
}

// Keys is a sortable slice of Key, ordered by Key.Less.
type Keys []Key

func (ks Keys) Len() int           { return len(ks) }
func (ks Keys) Swap(i, j int)      { ks[i], ks[j] = ks[j], ks[i] }
func (ks Keys) Less(i, j int) bool { return ks[i].Less(ks[j]) }

// Point is a particle's Cartesian coordinates, its caller-assigned global
// index, and the Morton key of the deepest-level leaf that encloses it.
type Point struct {
	X, Y, Z   float64
	GlobalIdx uint64
	Key       Key
}

// Root is the Key of the level-0 octant spanning the whole domain.
var Root = Key{}
