// Package pointgen generates deterministic pseudo-random point clouds for
// testing and benchmarking the octree pipeline, in the unit cube [0, 1).
// Generation is seeded and per-rank streams are derived independently, so
// a benchmark run is reproducible across repeated invocations and across
// process counts does not correlate one rank's points with another's.
package pointgen
