// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/ava-labs/subsetsum/config"
	"github.com/ava-labs/subsetsum/sampler"
)

// main is the primary entry point to the subset-sum sampler CLI.
func main() {
	cfg, err := config.GetConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't load config: %s\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't create logger: %s\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	s := sampler.NewSubset()
	if cfg.Seeded {
		source := prng.NewMT19937()
		source.Seed(uint64(cfg.Seed))
		s = sampler.NewDeterministicSubset(source)
		log.Debug("using seeded source", zap.Int64("seed", cfg.Seed))
	}

	if err := s.Initialize(cfg.Weights, cfg.Target); err != nil {
		log.Fatal("couldn't build count table",
			zap.Int("numWeights", len(cfg.Weights)),
			zap.Uint64("target", cfg.Target),
			zap.Error(err),
		)
	}
	log.Debug("count table built",
		zap.Int("numWeights", len(cfg.Weights)),
		zap.Uint64("target", cfg.Target),
		zap.String("numSubsets", s.Count().String()),
	)

	for i := 0; i < cfg.Samples; i++ {
		indices, ok := s.Sample()
		if !ok {
			log.Info("no subset sums to target", zap.Uint64("target", cfg.Target))
			return
		}
		fmt.Println(formatIndices(indices))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func formatIndices(indices []int) string {
	elements := make([]string, len(indices))
	for i, index := range indices {
		elements[i] = strconv.Itoa(index)
	}
	return strings.Join(elements, " ")
}
