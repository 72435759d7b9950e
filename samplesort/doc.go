// Package samplesort implements the parallel sample sort used to bring
// every rank's leaves (and their supporting points) into global Morton
// order: each rank samples K candidate leaves, all ranks' samples are
// gathered and used to pick P-1 splitters, leaves and points are bucketed
// against the splitters, and buckets are exchanged all-to-all so that
// rank i ends up holding everything between splitters[i-1] and
// splitters[i].
package samplesort
