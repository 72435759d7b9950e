package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skailasa/distributed-trees/leaf"
	"github.com/skailasa/distributed-trees/morton"
	"github.com/skailasa/distributed-trees/wire"
)

func TestKeyRoundTrip(t *testing.T) {
	k := morton.Key{AX: 1, AY: 2, AZ: 3, Level: 4}
	buf := wire.PackKey(k)
	require.Len(t, buf, wire.KeySize)

	got, err := wire.UnpackKey(buf)
	require.NoError(t, err)
	require.True(t, got.Equal(k))
}

func TestKeysRoundTrip(t *testing.T) {
	keys := morton.Keys{
		{Level: 0},
		{AX: 1, AY: 0, AZ: 0, Level: 1},
		{AX: 3, AY: 2, AZ: 1, Level: 2},
	}
	buf := wire.PackKeys(keys)
	require.Len(t, buf, len(keys)*wire.KeySize)

	got, err := wire.UnpackKeys(buf)
	require.NoError(t, err)
	require.Equal(t, keys, got)
}

func TestKeysRoundTripEmpty(t *testing.T) {
	got, err := wire.UnpackKeys(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestUnpackKeysMisaligned(t *testing.T) {
	_, err := wire.UnpackKeys(make([]byte, wire.KeySize+1))
	require.ErrorIs(t, err, wire.ErrShortBuffer)
}

func TestPointsRoundTrip(t *testing.T) {
	points := []morton.Point{
		{X: 0.5, Y: -0.5, Z: 0.125, GlobalIdx: 7, Key: morton.Key{AX: 1, Level: 1}},
		{X: 1.0, Y: 1.0, Z: 1.0, GlobalIdx: 8, Key: morton.Key{AX: 3, AY: 3, AZ: 3, Level: 2}},
	}
	buf := wire.PackPoints(points)
	require.Len(t, buf, len(points)*wire.PointSize)

	got, err := wire.UnpackPoints(buf)
	require.NoError(t, err)
	require.Equal(t, points, got)
}

func TestLeavesRoundTrip(t *testing.T) {
	leaves := leaf.Leaves{
		{Key: morton.Key{Level: 2}, Block: morton.Key{Level: 1}, NPoints: 11},
		{Key: morton.Key{AX: 1, Level: 2}, Block: morton.Key{Level: 1}, NPoints: 12},
	}
	buf := wire.PackLeaves(leaves)
	require.Len(t, buf, len(leaves)*wire.LeafSize)

	got, err := wire.UnpackLeaves(buf)
	require.NoError(t, err)
	require.Equal(t, leaves, got)
}

func TestWeightsRoundTrip(t *testing.T) {
	keys := morton.Keys{{Level: 1}, {AX: 1, Level: 1}}
	counts := []uint64{100, 250}

	buf := wire.PackWeights(keys, counts)
	require.Len(t, buf, len(keys)*wire.WeightSize)

	gotKeys, gotCounts, err := wire.UnpackWeights(buf)
	require.NoError(t, err)
	require.Equal(t, keys, gotKeys)
	require.Equal(t, counts, gotCounts)
}

func TestUnpackWeightsMisaligned(t *testing.T) {
	_, _, err := wire.UnpackWeights(make([]byte, wire.WeightSize-1))
	require.ErrorIs(t, err, wire.ErrShortBuffer)
}
