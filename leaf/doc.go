// Package leaf defines the Leaf type — a deepest-level cell holding one or
// more particles — and UniqueLeaves, which merges duplicate leaf keys
// produced by sample-sorting points independently of their siblings and
// enforces the per-cell particle cap (NCRIT).
package leaf
