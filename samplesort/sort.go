package samplesort

import (
	"context"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/skailasa/distributed-trees/leaf"
	"github.com/skailasa/distributed-trees/morton"
	"github.com/skailasa/distributed-trees/transport"
	"github.com/skailasa/distributed-trees/wire"
)

// K is the sample density: each rank contributes K leaf samples toward
// splitter selection, for P*K total samples and P-1 splitters.
const K = 10

// Sort brings localLeaves (and their supporting points) into global
// Morton order across every rank in tr's group: K leaves are sampled per
// rank, all-gathered to pick P-1 splitters, every local leaf and point is
// bucketed against the splitters, and buckets are exchanged all-to-all
// so each rank ends up with a single contiguous, globally sorted Morton
// range.
//
// A rank with no local leaves contributes zero samples rather than
// bailing out before the AllGather: every rank must call the same
// sequence of collectives in the same order (spec.md §5), so a rank
// that happens to own nothing still needs to participate, just with an
// empty contribution at each step.
func Sort(ctx context.Context, tr transport.Transport, localLeaves leaf.Leaves, points []morton.Point, ncrit uint64) (leaf.Leaves, []morton.Point, error) {
	size := tr.Size()

	var localSamples leaf.Leaves
	if n := len(localLeaves); n > 0 {
		localSamples = make(leaf.Leaves, K)
		for i := range localSamples {
			localSamples[i] = localLeaves[rand.Intn(n)]
		}
	}

	gathered, err := tr.AllGather(ctx, wire.PackLeaves(localSamples))
	if err != nil {
		return nil, nil, err
	}

	var allSamples leaf.Leaves
	for _, buf := range gathered {
		ls, err := wire.UnpackLeaves(buf)
		if err != nil {
			return nil, nil, err
		}
		allSamples = append(allSamples, ls...)
	}
	sort.Sort(allSamples)

	// Discard the first K samples (P*K - K candidates remain), then take
	// every K-th candidate as a splitter, for P-1 splitters.
	var splitters leaf.Leaves
	if len(allSamples) > K {
		candidates := allSamples[K:]
		for i := 0; i < len(candidates); i += K {
			splitters = append(splitters, candidates[i])
		}
	}
	nsplitters := len(splitters)

	bucketOf := func(key morton.Key) int {
		for i := 0; i < nsplitters; i++ {
			if key.Less(splitters[i].Key) {
				return i
			}
		}
		return nsplitters
	}

	leafBuckets, err := classifyLeaves(localLeaves, bucketOf, size)
	if err != nil {
		return nil, nil, err
	}
	pointBuckets, err := classifyPoints(points, bucketOf, size)
	if err != nil {
		return nil, nil, err
	}

	perDestPoints := make([][]byte, size)
	for d, bucket := range pointBuckets {
		perDestPoints[d] = wire.PackPoints(bucket)
	}
	recvPoints, err := transport.AllToAll(ctx, tr, perDestPoints)
	if err != nil {
		return nil, nil, err
	}

	perDestLeaves := make([][]byte, size)
	for d, bucket := range leafBuckets {
		perDestLeaves[d] = wire.PackLeaves(bucket)
	}
	recvLeaves, err := transport.AllToAll(ctx, tr, perDestLeaves)
	if err != nil {
		return nil, nil, err
	}

	var resultLeaves leaf.Leaves
	for _, buf := range recvLeaves {
		ls, err := wire.UnpackLeaves(buf)
		if err != nil {
			return nil, nil, err
		}
		resultLeaves = append(resultLeaves, ls...)
	}

	var resultPoints []morton.Point
	for _, buf := range recvPoints {
		ps, err := wire.UnpackPoints(buf)
		if err != nil {
			return nil, nil, err
		}
		resultPoints = append(resultPoints, ps...)
	}

	sort.Sort(resultLeaves)
	return resultLeaves, resultPoints, nil
}

func classifyLeaves(localLeaves leaf.Leaves, bucketOf func(morton.Key) int, size int) ([]leaf.Leaves, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(localLeaves) {
		workers = len(localLeaves)
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (len(localLeaves) + workers - 1) / workers
	chunkBuckets := make([][]leaf.Leaves, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= len(localLeaves) {
			continue
		}
		end := start + chunkSize
		if end > len(localLeaves) {
			end = len(localLeaves)
		}
		w := w
		g.Go(func() error {
			buckets := make([]leaf.Leaves, size)
			for _, l := range localLeaves[start:end] {
				b := bucketOf(l.Key)
				buckets[b] = append(buckets[b], l)
			}
			chunkBuckets[w] = buckets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]leaf.Leaves, size)
	for _, cb := range chunkBuckets {
		if cb == nil {
			continue
		}
		for i, ls := range cb {
			merged[i] = append(merged[i], ls...)
		}
	}
	return merged, nil
}

func classifyPoints(points []morton.Point, bucketOf func(morton.Key) int, size int) ([][]morton.Point, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(points) {
		workers = len(points)
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (len(points) + workers - 1) / workers
	chunkBuckets := make([][][]morton.Point, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= len(points) {
			continue
		}
		end := start + chunkSize
		if end > len(points) {
			end = len(points)
		}
		w := w
		g.Go(func() error {
			buckets := make([][]morton.Point, size)
			for _, p := range points[start:end] {
				b := bucketOf(p.Key)
				buckets[b] = append(buckets[b], p)
			}
			chunkBuckets[w] = buckets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([][]morton.Point, size)
	for _, cb := range chunkBuckets {
		if cb == nil {
			continue
		}
		for i, ps := range cb {
			merged[i] = append(merged[i], ps...)
		}
	}
	return merged, nil
}
