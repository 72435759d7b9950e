package balance_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skailasa/distributed-trees/balance"
	"github.com/skailasa/distributed-trees/leaf"
	"github.com/skailasa/distributed-trees/morton"
	"github.com/skailasa/distributed-trees/transport"
)

func TestFindBlockWeights(t *testing.T) {
	root := morton.Key{Level: 0}
	other := morton.Key{AX: 1, Level: 1}
	blocktree := morton.Keys{root, other}

	leaves := leaf.Leaves{
		{Key: morton.Key{Level: 2}, Block: root, NPoints: 1},
		{Key: morton.Key{AX: 1, Level: 2}, Block: root, NPoints: 1},
		{Key: morton.Key{AX: 2, Level: 2}, Block: other, NPoints: 1},
	}

	weights := balance.FindBlockWeights(leaves, blocktree)
	require.Len(t, weights, 2)
	require.Equal(t, uint64(2), weights[0].Count)
	require.Equal(t, uint64(1), weights[1].Count)
}

func TestPartitionSingleRankIsNoOp(t *testing.T) {
	var tr transport.Null
	original := morton.Keys{{Level: 0}, {AX: 1, Level: 1}}
	blocktree := append(morton.Keys(nil), original...)
	weights := []balance.Weight{{Block: blocktree[0], Count: 5}, {Block: blocktree[1], Count: 3}}

	_, err := balance.Partition(context.Background(), tr, weights, &blocktree)
	require.NoError(t, err)
	require.Equal(t, original, blocktree, "single rank has no neighbour to repartition with")
}

func TestPartitionConservesTotalWeight(t *testing.T) {
	const size = 2
	group := transport.NewInProcessGroup(size)

	blocktrees := []morton.Keys{
		{{Level: 1}, {AX: 1, Level: 1}},
		{{AX: 4, Level: 1}, {AX: 5, Level: 1}},
	}
	weightsPerRank := [][]balance.Weight{
		{{Block: blocktrees[0][0], Count: 90}, {Block: blocktrees[0][1], Count: 10}},
		{{Block: blocktrees[1][0], Count: 5}, {Block: blocktrees[1][1], Count: 5}},
	}

	var wg sync.WaitGroup
	qs := make([]morton.Keys, size)
	errs := make([]error, size)
	for r := 0; r < size; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			qs[r], errs[r] = balance.Partition(context.Background(), group[r], weightsPerRank[r], &blocktrees[r])
		}(r)
	}
	wg.Wait()

	for r := 0; r < size; r++ {
		require.NoError(t, errs[r])
	}

	total := 0
	for _, bt := range blocktrees {
		total += len(bt)
	}
	require.Equal(t, 4, total)
}

func TestTransferToFinalBlocktreeSingleRank(t *testing.T) {
	var tr transport.Null
	leaves := leaf.Leaves{{Key: morton.Key{Level: 1}, Block: morton.Key{Level: 0}, NPoints: 1}}

	out, err := balance.TransferToFinalBlocktree(context.Background(), tr, morton.Keys{{Level: 0}}, leaves)
	require.NoError(t, err)
	require.Equal(t, leaves, out)
}

func TestTransferToFinalBlocktreeTwoRanks(t *testing.T) {
	const size = 2
	group := transport.NewInProcessGroup(size)

	blockA := morton.Key{Level: 0}
	leavesPerRank := []leaf.Leaves{
		{{Key: morton.Key{Level: 1}, Block: blockA, NPoints: 3}},
		{{Key: morton.Key{AX: 1, Level: 1}, Block: blockA, NPoints: 4}},
	}
	sentPerRank := []morton.Keys{
		{blockA}, // rank 0 donates everything to rank 1 (its previous-rank target... here just exercising the path)
		{},
	}

	var wg sync.WaitGroup
	results := make([]leaf.Leaves, size)
	errs := make([]error, size)
	for r := 0; r < size; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			results[r], errs[r] = balance.TransferToFinalBlocktree(context.Background(), group[r], sentPerRank[r], leavesPerRank[r])
		}(r)
	}
	wg.Wait()

	for r := 0; r < size; r++ {
		require.NoError(t, errs[r])
	}

	total := 0
	for _, ls := range results {
		total += len(ls)
	}
	require.Equal(t, 2, total)
}
