package bench

import (
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/gostonefire/hashdict"
	"github.com/gostonefire/hashdict/crt"
)

// OpSet - Name of the timed insert operation
const OpSet = "set"

// OpSearchHit - Name of the timed search operation over present keys
const OpSearchHit = "search-hit"

// OpSearchMiss - Name of the timed search operation over absent keys
const OpSearchMiss = "search-miss"

// Measurement - One timed batch of operations against one dictionary
//   - Structure is the name of the collision resolution technique
//   - Size is the number of keys in the input
//   - Operation is one of OpSet, OpSearchHit or OpSearchMiss
//   - Duration is the total wall clock time for the whole batch
type Measurement struct {
	Structure string
	Size      int
	Operation string
	Duration  time.Duration
}

// Config - Configuration for one benchmark run
//   - Sizes is the list of input sizes to measure
//   - Seed seeds both the key generator and the hash function parameters, making runs reproducible
//   - Distribution is one of Uniform, Sequential or Clustered
//   - Logger receives progress messages, verbosity 1 logs per structure timings
type Config struct {
	Sizes        []int
	Seed         int64
	Distribution int
	Logger       logr.Logger
}

// technique - One benchmarked collision resolution technique and the capacity
// headroom it needs to stay clear of its saturation failure modes
type technique struct {
	name     string
	crt      int
	headroom int
}

var benchedTechniques = []technique{
	{name: "naive", crt: crt.Naive, headroom: 1},
	{name: "chained", crt: crt.SeparateChaining, headroom: 1},
	{name: "linear-probing", crt: crt.LinearProbing, headroom: 2},
	{name: "cuckoo", crt: crt.Cuckoo, headroom: 2},
}

// Run - Executes the benchmark over every technique and input size.
// For each combination it constructs a fresh dictionary, times the Set calls
// over the generated key stream and then times Search over both the inserted
// keys and a guaranteed miss stream of the same length.
//   - conf is the run configuration
//
// It returns:
//   - measurements is one Measurement per (structure, size, operation) combination
//   - err is a standard Go error if key generation or a dictionary operation failed
func Run(conf Config) (measurements []Measurement, err error) {
	rnd := rand.New(rand.NewSource(conf.Seed))

	for _, size := range conf.Sizes {
		gen := NewKeyGen(rnd, uint(size))

		var keys []uint32
		keys, err = gen.Keys(size, conf.Distribution)
		if err != nil {
			err = errors.Wrap(err, "generate key stream")
			return
		}
		misses := gen.MissKeys(size)

		for _, tq := range benchedTechniques {
			var m []Measurement
			m, err = runOne(tq, keys, misses, rnd)
			if err != nil {
				err = errors.Wrapf(err, "benchmark %s at size %d", tq.name, size)
				return
			}
			measurements = append(measurements, m...)

			for _, measurement := range m {
				conf.Logger.V(1).Info("measured",
					"structure", measurement.Structure,
					"size", measurement.Size,
					"operation", measurement.Operation,
					"duration", measurement.Duration,
				)
			}
		}

		conf.Logger.Info("completed size", "size", size)
	}

	return
}

// runOne - Times one technique over one key stream
func runOne(tq technique, keys, misses []uint32, rnd *rand.Rand) (measurements []Measurement, err error) {
	size := len(keys)

	dict, err := hashdict.New[uint32](size*tq.headroom, tq.crt, hashdict.Config{Rand: rnd})
	if err != nil {
		return
	}

	start := time.Now()
	for _, key := range keys {
		if err = dict.Set(key, key); err != nil {
			return
		}
	}
	measurements = append(measurements, Measurement{
		Structure: tq.name,
		Size:      size,
		Operation: OpSet,
		Duration:  time.Since(start),
	})

	start = time.Now()
	for _, key := range keys {
		if _, err = dict.Search(key); err != nil {
			return
		}
	}
	measurements = append(measurements, Measurement{
		Structure: tq.name,
		Size:      size,
		Operation: OpSearchHit,
		Duration:  time.Since(start),
	})

	start = time.Now()
	for _, key := range misses {
		if _, searchErr := dict.Search(key); searchErr == nil {
			err = errors.Errorf("miss stream key %d was unexpectedly present", key)
			return
		}
	}
	measurements = append(measurements, Measurement{
		Structure: tq.name,
		Size:      size,
		Operation: OpSearchMiss,
		Duration:  time.Since(start),
	})

	return
}
