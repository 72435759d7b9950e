// Package balance repartitions a distributed blocktree so that every rank
// carries a roughly equal share of work, and migrates the underlying
// leaves to match: FindBlockWeights counts how many leaves each block
// owns, Partition computes a donation set of blocks that should move to
// neighbouring ranks to equalise cumulative weight, and
// TransferToFinalBlocktree exchanges the leaves belonging to those blocks
// with the previous and next rank.
package balance
