package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/xyproto/env/v2"

	"github.com/gostonefire/hashdict/pkg/bench"
	"github.com/gostonefire/hashdict/pkg/log"
)

// dictbench times set and search over every collision resolution technique
// under a synthetic key distribution and writes the measurements as CSV for
// an external plotting step.
//
// Configuration is taken from the environment:
//   - DICTBENCH_SIZES is a comma separated list of input sizes, default "1000,10000,100000"
//   - DICTBENCH_SEED seeds keys and hash parameters, default 1
//   - DICTBENCH_DIST is one of uniform, sequential or clustered, default uniform
//   - DICTBENCH_OUT is the report file path, default dictbench.csv
//   - DICTBENCH_VERBOSITY is the log verbosity 0-2, default 0
func main() {
	logger := log.GetLogger(env.Int("DICTBENCH_VERBOSITY", 0))

	sizes, err := parseSizes(env.Str("DICTBENCH_SIZES", "1000,10000,100000"))
	if err != nil {
		logger.Error(err, "invalid DICTBENCH_SIZES")
		os.Exit(1)
	}

	distribution, err := parseDistribution(env.Str("DICTBENCH_DIST", "uniform"))
	if err != nil {
		logger.Error(err, "invalid DICTBENCH_DIST")
		os.Exit(1)
	}

	conf := bench.Config{
		Sizes:        sizes,
		Seed:         int64(env.Int("DICTBENCH_SEED", 1)),
		Distribution: distribution,
		Logger:       logger,
	}

	measurements, err := bench.Run(conf)
	if err != nil {
		logger.Error(err, "benchmark run failed")
		os.Exit(1)
	}

	out := env.Str("DICTBENCH_OUT", "dictbench.csv")
	if err = bench.WriteCSV(afero.NewOsFs(), out, measurements); err != nil {
		logger.Error(err, "write report failed")
		os.Exit(1)
	}

	logger.Info("report written", "path", out, "measurements", len(measurements))
}

// parseSizes - Parses a comma separated list of positive input sizes
func parseSizes(value string) (sizes []int, err error) {
	for _, part := range strings.Split(value, ",") {
		var size int
		size, err = strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return
		}
		if size < 1 {
			err = fmt.Errorf("input size must be positive, got %d", size)
			return
		}
		sizes = append(sizes, size)
	}

	return
}

// parseDistribution - Maps a distribution name to its constant
func parseDistribution(value string) (distribution int, err error) {
	switch strings.ToLower(value) {
	case "uniform":
		distribution = bench.Uniform
	case "sequential":
		distribution = bench.Sequential
	case "clustered":
		distribution = bench.Clustered
	default:
		err = fmt.Errorf("unknown key distribution: %s", value)
	}

	return
}
