// cmd/octreebench runs the distributed octree construction pipeline
// in-process across a configurable number of simulated ranks.
//
// Usage:
//
//	octreebench
//
// Configuration is read from the environment:
//
//	DEPTH    maximum octree depth (default 6)
//	NPOINTS  points generated per rank (default 10000)
//	NCRIT    maximum points per leaf block (default 100)
//	RANKS    number of simulated ranks (default 4)
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/skailasa/distributed-trees/morton"
	"github.com/skailasa/distributed-trees/octree"
	"github.com/skailasa/distributed-trees/pointgen"
	"github.com/skailasa/distributed-trees/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "octreebench: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	depth := envUint("DEPTH", 6)
	npoints := envUint("NPOINTS", 10000)
	ncrit := envUint("NCRIT", 100)
	ranks := envUint("RANKS", 4)

	x0 := morton.Point{X: 0.5, Y: 0.5, Z: 0.5}
	const r0 = 0.5

	group := transport.NewInProcessGroup(int(ranks))

	var wg sync.WaitGroup
	trees := make([]octree.Tree, ranks)
	errs := make([]error, ranks)

	for r := range group {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			points := pointgen.Uniform(npoints, 0, r, uint64(r)*npoints)
			trees[r], errs[r] = octree.UnbalancedTree(context.Background(), group[r], depth, ncrit, points, x0, r0)
		}(r)
	}
	wg.Wait()

	for r, err := range errs {
		if err != nil {
			return fmt.Errorf("rank %d: %w", r, err)
		}
	}

	for r, tree := range trees {
		var maxWeight uint64
		for _, leaves := range tree {
			var w uint64
			for _, l := range leaves {
				w += l.NPoints
			}
			if w > maxWeight {
				maxWeight = w
			}
		}
		fmt.Printf("rank %d: blocks=%d max_block_weight=%d\n", r, len(tree), maxWeight)
	}

	return nil
}

func envUint(name string, fallback uint64) uint64 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
