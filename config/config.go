// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "subsetsum"
	envPrefix = "SUBSETSUM"

	// Prefix marking the weights flag as a path rather than an inline list.
	fileWeightsPrefix = "@"
)

var (
	errNoWeights       = errors.New("no weights provided")
	errInvalidSamples  = errors.New("samples must be positive")
	errInvalidLogLevel = errors.New("log level must be one of {debug, info, warn, error}")
)

// Config is the result of parsing the CLI.
type Config struct {
	// Weights of the elements the subset is drawn from.
	Weights []uint64
	// Exact sum the sampled subset must reach.
	Target uint64
	// Seed for the random source. Only respected when Seeded is true.
	Seed   int64
	Seeded bool
	// Number of subsets to sample.
	Samples  int
	LogLevel string
}

// subsetFlagSet returns the complete set of flags for the sampler CLI
func subsetFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)

	fs.String(WeightsKey, "", fmt.Sprintf(
		"Comma separated non-negative weights, or %spath to a file with one weight per line",
		fileWeightsPrefix,
	))
	fs.Uint64(TargetKey, 0, "Exact sum the sampled subset must reach")
	fs.Int64(SeedKey, 0, "Seed for the random source. If unset, the source is seeded from the clock")
	fs.Int(SamplesKey, 1, "Number of subsets to sample")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {debug, info, warn, error}")
	return fs
}

// getViper returns the viper environment from parsing [args] and binding the
// SUBSETSUM_* environment variables
func getViper(args []string) (*viper.Viper, error) {
	v := viper.New()

	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.AddGoFlagSet(subsetFlagSet())
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v, nil
}

// GetConfig parses [args] into the CLI config
func GetConfig(args []string) (Config, error) {
	v, err := getViper(args)
	if err != nil {
		return Config{}, err
	}

	weights, err := parseWeights(v.GetString(WeightsKey))
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Weights:  weights,
		Target:   v.GetUint64(TargetKey),
		Seed:     v.GetInt64(SeedKey),
		Seeded:   v.IsSet(SeedKey),
		Samples:  v.GetInt(SamplesKey),
		LogLevel: v.GetString(LogLevelKey),
	}
	if config.Samples < 1 {
		return Config{}, errInvalidSamples
	}
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, errInvalidLogLevel
	}
	return config, nil
}

func parseWeights(weights string) ([]uint64, error) {
	var fields []string
	if strings.HasPrefix(weights, fileWeightsPrefix) {
		path := strings.TrimPrefix(weights, fileWeightsPrefix)
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("couldn't read weights file: %w", err)
		}
		fields = strings.Fields(string(contents))
	} else {
		fields = strings.Split(weights, ",")
	}

	parsed := make([]uint64, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		weight, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse weight %q: %w", field, err)
		}
		parsed = append(parsed, weight)
	}
	if len(parsed) == 0 {
		return nil, errNoWeights
	}
	return parsed, nil
}
