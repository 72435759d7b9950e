package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/skailasa/distributed-trees/leaf"
)

// LeafSize is the encoded byte size of a single leaf.Leaf: two embedded
// keys (the leaf's own key and its owning block's key) plus a uint64
// point count.
const LeafSize = 2*KeySize + 8

// PackLeaves encodes leaves back to back, with no length prefix.
func PackLeaves(leaves leaf.Leaves) []byte {
	buf := make([]byte, len(leaves)*LeafSize)
	for i, l := range leaves {
		putLeaf(buf[i*LeafSize:(i+1)*LeafSize], l)
	}
	return buf
}

func putLeaf(buf []byte, l leaf.Leaf) {
	putKey(buf[0:KeySize], l.Key)
	putKey(buf[KeySize:2*KeySize], l.Block)
	binary.LittleEndian.PutUint64(buf[2*KeySize:2*KeySize+8], l.NPoints)
}

func getLeaf(buf []byte) leaf.Leaf {
	return leaf.Leaf{
		Key:     getKey(buf[0:KeySize]),
		Block:   getKey(buf[KeySize : 2*KeySize]),
		NPoints: binary.LittleEndian.Uint64(buf[2*KeySize : 2*KeySize+8]),
	}
}

// UnpackLeaves decodes a flat buffer of back-to-back leaves. buf's length
// must be an exact multiple of LeafSize.
func UnpackLeaves(buf []byte) (leaf.Leaves, error) {
	if len(buf)%LeafSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrShortBuffer, len(buf), LeafSize)
	}
	n := len(buf) / LeafSize
	leaves := make(leaf.Leaves, n)
	for i := 0; i < n; i++ {
		leaves[i] = getLeaf(buf[i*LeafSize : (i+1)*LeafSize])
	}
	return leaves, nil
}
