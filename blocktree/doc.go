// Package blocktree builds and stitches the distributed coarse blocktree
// that seeds Sundar, Sampath & Biros (2008)'s Algorithm 4: each rank
// completes a region locally from its own seed octants (package region),
// hands any leaves that sort below its minimum seed to the previous rank, then
// exchanges a single boundary key with its neighbour so Algorithm 4's
// per-rank completion covers the gap between adjacent ranks' seed ranges.
package blocktree
