// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	WeightsKey  = "weights"
	TargetKey   = "target"
	SeedKey     = "seed"
	SamplesKey  = "samples"
	LogLevelKey = "log-level"
)
