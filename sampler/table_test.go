// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// bruteForceCounts enumerates every subset of [weights] and tallies how many
// sum to each value <= [target].
func bruteForceCounts(weights []uint64, target uint64) []uint64 {
	counts := make([]uint64, target+1)
	for mask := 0; mask < 1<<len(weights); mask++ {
		sum := uint64(0)
		for i, weight := range weights {
			if mask&(1<<i) != 0 {
				sum += weight
			}
		}
		if sum <= target {
			counts[sum]++
		}
	}
	return counts
}

func TestCountTableMatchesBruteForce(t *testing.T) {
	tests := []struct {
		name    string
		weights []uint64
		target  uint64
	}{
		{
			name:    "empty",
			weights: nil,
			target:  5,
		},
		{
			name:    "single element",
			weights: []uint64{5},
			target:  5,
		},
		{
			name:    "distinct weights",
			weights: []uint64{10, 20, 30, 40, 50},
			target:  80,
		},
		{
			name:    "duplicate weights",
			weights: []uint64{3, 3, 3, 3},
			target:  9,
		},
		{
			name:    "zero weights double the counts",
			weights: []uint64{0, 0, 5, 7},
			target:  12,
		},
		{
			name:    "consecutive weights",
			weights: []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			target:  25,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			table, err := newCountTable(test.weights, test.target)
			require.NoError(err)

			require.Len(table.counts, len(test.weights)+1)
			for _, row := range table.counts {
				require.Len(row, int(test.target)+1)
			}

			// Base row: only the empty sum is reachable from the empty
			// prefix.
			require.Equal(uint64(1), table.counts[0][0].Uint64())
			for s := uint64(1); s <= test.target; s++ {
				require.Zero(table.counts[0][s].Sign())
			}

			expected := bruteForceCounts(test.weights, test.target)
			lastRow := table.counts[len(test.weights)]
			for s, count := range expected {
				require.True(
					lastRow[s].IsUint64(),
					"count at sum %d is not a uint64", s,
				)
				require.Equal(
					count,
					lastRow[s].Uint64(),
					"wrong count at sum %d", s,
				)
			}
		})
	}
}

func TestCountTableArbitraryPrecision(t *testing.T) {
	require := require.New(t)

	// 70 zero weights: every one of the 2^70 subsets sums to 0, which
	// overflows uint64.
	weights := make([]uint64, 70)
	table, err := newCountTable(weights, 0)
	require.NoError(err)

	count := &table.counts[len(weights)][0]
	require.False(count.IsUint64())
	require.Equal("1180591620717411303424", count.String()) // 2^70
}

func TestCountTableTooLarge(t *testing.T) {
	require := require.New(t)

	_, err := newCountTable([]uint64{1}, math.MaxUint64)
	require.ErrorIs(err, errTableTooLarge)
}
