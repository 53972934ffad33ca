// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"math"
	"math/big"

	safemath "github.com/ava-labs/subsetsum/utils/math"
)

var errTableTooLarge = errors.New("count table is too large")

// countTable is a dense table of subset counts. counts[i][s] holds the number
// of distinct subsets of weights[:i] whose values sum to exactly s.
//
// Counts grow combinatorially, up to 2^len(weights), so the cells must be
// arbitrary precision.
type countTable struct {
	weights []uint64
	target  uint64
	counts  [][]big.Int
}

// newCountTable fills the table bottom up. Row i is derived only from row i-1,
// so rows are filled in increasing prefix length and, within a row, increasing
// partial sum:
//
//	counts[0][0] = 1
//	counts[0][s] = 0                                  for s > 0
//	counts[i][s] = counts[i-1][s] + counts[i-1][s-w]  for w = weights[i-1] <= s
//	counts[i][s] = counts[i-1][s]                     otherwise
//
// A weight of 0 can be included or excluded without changing the sum, so it
// doubles the count at every reachable partial sum.
//
// Construction takes O(len(weights) * target) time and space.
func newCountTable(weights []uint64, target uint64) (*countTable, error) {
	numRows := uint64(len(weights)) + 1
	numCols, err := safemath.Add(target, 1)
	if err != nil {
		return nil, errTableTooLarge
	}
	numCells, err := safemath.Mul(numRows, numCols)
	if err != nil || numCells > math.MaxInt {
		return nil, errTableTooLarge
	}

	// One backing allocation for all of the rows.
	cells := make([]big.Int, numCells)
	counts := make([][]big.Int, numRows)
	for i := range counts {
		counts[i], cells = cells[:numCols:numCols], cells[numCols:]
	}

	counts[0][0].SetUint64(1)
	for i, weight := range weights {
		prev, row := counts[i], counts[i+1]
		for s := uint64(0); s < numCols; s++ {
			row[s].Set(&prev[s])
			if weight <= s {
				row[s].Add(&row[s], &prev[s-weight])
			}
		}
	}
	return &countTable{
		weights: weights,
		target:  target,
		counts:  counts,
	}, nil
}
