package pointgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skailasa/distributed-trees/pointgen"
)

func TestUniformDeterministic(t *testing.T) {
	a := pointgen.Uniform(100, 42, 0, 0)
	b := pointgen.Uniform(100, 42, 0, 0)
	require.Equal(t, a, b)
}

func TestUniformWithinUnitCube(t *testing.T) {
	points := pointgen.Uniform(500, 7, 2, 1000)
	for i, p := range points {
		require.GreaterOrEqual(t, p.X, 0.0)
		require.Less(t, p.X, 1.0)
		require.GreaterOrEqual(t, p.Y, 0.0)
		require.Less(t, p.Y, 1.0)
		require.GreaterOrEqual(t, p.Z, 0.0)
		require.Less(t, p.Z, 1.0)
		require.Equal(t, uint64(1000+i), p.GlobalIdx)
	}
}

func TestUniformRanksDiffer(t *testing.T) {
	a := pointgen.Uniform(50, 9, 0, 0)
	b := pointgen.Uniform(50, 9, 1, 0)
	require.NotEqual(t, a, b)
}
