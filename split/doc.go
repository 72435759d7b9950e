// Package split refines a blocktree's leaves into an NCRIT-adaptive
// octree: any block carrying more than NCRIT leaves' worth of points is
// replaced by its eight children, the leaves re-assigned among them, and
// the check repeats until every block is within budget.
package split
