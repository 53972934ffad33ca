// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math/big"
)

var bigZero = new(big.Int)

// Subset samples, uniformly at random over all valid choices, a subset of the
// provided weights whose values sum to exactly the requested target.
type Subset interface {
	// Initialize builds the count table for [weights] and [target]. The
	// weights are read, never written, and remain owned by the caller.
	Initialize(weights []uint64, target uint64) error

	// Sample returns the indices of one uniformly sampled subset summing to
	// the target, in ascending order. It returns false iff no subset sums to
	// the target, which is a normal outcome rather than an error. A target of
	// 0 is always reachable with the empty subset.
	//
	// Sample consumes exactly len(weights) draws from the sampler's source,
	// so repeated calls with a deterministic source are reproducible.
	Sample() ([]int, bool)

	// Count returns the number of distinct subsets summing to the target.
	Count() *big.Int
}

// NewSubset returns a new sampler backed by the package's time-seeded source.
func NewSubset() Subset {
	return &subsetSampler{rng: globalRNG}
}

// NewDeterministicSubset returns a new sampler drawing from [source]. Given
// the same source state, weights, and target, sampling is fully deterministic.
func NewDeterministicSubset(source Source) Subset {
	return &subsetSampler{rng: &rng{rng: source}}
}

type subsetSampler struct {
	rng   *rng
	table *countTable
}

func (s *subsetSampler) Initialize(weights []uint64, target uint64) error {
	table, err := newCountTable(weights, target)
	if err != nil {
		return err
	}
	s.table = table
	return nil
}

func (s *subsetSampler) Count() *big.Int {
	counts := s.table.counts
	return new(big.Int).Set(&counts[len(counts)-1][s.table.target])
}

// Sample walks the table backwards from (n, target) to (0, 0), deciding at
// each step whether element i-1 is part of the subset. The element is
// included with probability
//
//	counts[i-1][s-w] / (counts[i-1][s] + counts[i-1][s-w])
//
// i.e. proportional to the number of completions of the walk through each
// branch. By induction over i, every valid subset is produced with equal
// probability.
func (s *subsetSampler) Sample() ([]int, bool) {
	var (
		weights = s.table.weights
		counts  = s.table.counts
		n       = len(weights)
	)
	if counts[n][s.table.target].Sign() == 0 {
		return nil, false
	}

	indices := make([]int, 0, n)
	remaining := s.table.target
	var total big.Int
	for i := n; i > 0; i-- {
		weight := weights[i-1]
		waysExclude := &counts[i-1][remaining]
		waysInclude := bigZero
		if weight <= remaining {
			waysInclude = &counts[i-1][remaining-weight]
		}
		total.Add(waysExclude, waysInclude)
		if total.Sign() == 0 {
			// Unreachable with a correctly built table. Failing loudly beats
			// returning a subset with the wrong sum.
			panic(fmt.Sprintf(
				"sampler: no completions for prefix %d with remaining sum %d",
				i-1, remaining,
			))
		}

		// Convert the exact ratio to a float only for the final comparison to
		// minimize rounding of very large counts.
		p, _ := new(big.Float).Quo(
			new(big.Float).SetInt(waysInclude),
			new(big.Float).SetInt(&total),
		).Float64()
		if s.rng.float64() < p {
			indices = append(indices, i-1)
			remaining -= weight
		}
	}
	if remaining != 0 {
		panic(fmt.Sprintf("sampler: sampled subset left a residue of %d", remaining))
	}

	// The walk emits indices in descending order.
	for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices, true
}
