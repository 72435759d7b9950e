package octree

import (
	"context"
	"fmt"

	"github.com/skailasa/distributed-trees/balance"
	"github.com/skailasa/distributed-trees/blocktree"
	"github.com/skailasa/distributed-trees/leaf"
	"github.com/skailasa/distributed-trees/morton"
	"github.com/skailasa/distributed-trees/region"
	"github.com/skailasa/distributed-trees/samplesort"
	"github.com/skailasa/distributed-trees/split"
	"github.com/skailasa/distributed-trees/transport"
)

// UnbalancedTree runs the full distributed octree construction pipeline
// for a single rank: encode points to Morton keys, sample-sort leaves
// and points into global order, deduplicate into unique leaves, find
// seed octants and stitch them into a distributed blocktree, assign
// leaves to blocks, repartition blocks for load balance, migrate leaves
// to match, and finally split any block still over NCRIT.
//
// points is not modified; UnbalancedTree encodes a private copy.
func UnbalancedTree(
	ctx context.Context,
	tr transport.Transport,
	depth uint64,
	ncrit uint64,
	points []morton.Point,
	x0 morton.Point,
	r0 float64,
) (Tree, error) {
	pts := append([]morton.Point(nil), points...)
	if err := morton.EncodePoints(pts, depth, x0, r0); err != nil {
		return nil, fmt.Errorf("encode points: %w", err)
	}

	localLeaves := leaf.FromPoints(pts)

	sortedLeaves, sortedPoints, err := samplesort.Sort(ctx, tr, localLeaves, pts, ncrit)
	if err != nil {
		return nil, fmt.Errorf("sample sort: %w", err)
	}

	uniqueLeaves, err := leaf.UniqueLeaves(sortedLeaves, ncrit, true)
	if err != nil {
		return nil, fmt.Errorf("unique leaves: %w", err)
	}

	seeds, err := region.FindSeeds(uniqueLeaves, depth)
	if err != nil {
		return nil, fmt.Errorf("find seeds: %w", err)
	}

	coarseLeaves, _, err := blocktree.TransferToCoarseBlocktree(ctx, tr, sortedPoints, uniqueLeaves, seeds)
	if err != nil {
		return nil, fmt.Errorf("transfer to coarse blocktree: %w", err)
	}

	localBlocktree, err := blocktree.CompleteBlocktree(ctx, tr, seeds, depth)
	if err != nil {
		return nil, fmt.Errorf("complete blocktree: %w", err)
	}

	blocktree.AssignBlocksToLeaves(coarseLeaves, localBlocktree, depth)

	weights := balance.FindBlockWeights(coarseLeaves, localBlocktree)

	sentBlocks, err := balance.Partition(ctx, tr, weights, &localBlocktree)
	if err != nil {
		return nil, fmt.Errorf("block partition: %w", err)
	}

	finalLeaves, err := balance.TransferToFinalBlocktree(ctx, tr, sentBlocks, coarseLeaves)
	if err != nil {
		return nil, fmt.Errorf("transfer to final blocktree: %w", err)
	}

	tree, err := split.Split(finalLeaves, depth, ncrit)
	if err != nil {
		return nil, fmt.Errorf("split blocks: %w", err)
	}

	return tree, nil
}
