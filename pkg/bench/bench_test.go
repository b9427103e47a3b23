//go:build unit

package bench

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestKeyGen_Keys(t *testing.T) {
	t.Run("generates the requested number of distinct keys", func(t *testing.T) {
		for _, distribution := range []int{Uniform, Sequential, Clustered} {
			// Prepare
			gen := NewKeyGen(rand.New(rand.NewSource(1)), 1000)

			// Execute
			keys, err := gen.Keys(1000, distribution)

			// Check
			assert.NoError(t, err, "generates keys")
			assert.Len(t, keys, 1000, "requested number of keys")

			unique := make(map[uint32]struct{})
			for _, key := range keys {
				unique[key] = struct{}{}
			}
			assert.Len(t, unique, 1000, "all keys distinct")
		}
	})

	t.Run("sequential keys are consecutive", func(t *testing.T) {
		// Prepare
		gen := NewKeyGen(rand.New(rand.NewSource(1)), 100)

		// Execute
		keys, err := gen.Keys(100, Sequential)

		// Check
		assert.NoError(t, err, "generates keys")
		for i := 1; i < len(keys); i++ {
			assert.Equal(t, keys[i-1]+1, keys[i], "consecutive keys")
		}
	})

	t.Run("error on unknown distribution", func(t *testing.T) {
		// Prepare
		gen := NewKeyGen(rand.New(rand.NewSource(1)), 10)

		// Execute
		_, err := gen.Keys(10, 99)

		// Check
		assert.Error(t, err, "unknown distribution rejected")
	})
}

func TestKeyGen_MissKeys(t *testing.T) {
	t.Run("miss stream never contains an emitted key", func(t *testing.T) {
		// Prepare
		gen := NewKeyGen(rand.New(rand.NewSource(1)), 2000)
		keys, err := gen.Keys(2000, Uniform)
		assert.NoError(t, err, "generates keys")

		emitted := make(map[uint32]struct{}, len(keys))
		for _, key := range keys {
			emitted[key] = struct{}{}
		}

		// Execute
		misses := gen.MissKeys(2000)

		// Check
		assert.Len(t, misses, 2000, "requested number of miss keys")
		for _, key := range misses {
			_, present := emitted[key]
			assert.False(t, present, "miss key was never emitted")
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("produces one measurement per structure, size and operation", func(t *testing.T) {
		// Prepare
		conf := Config{
			Sizes:        []int{32, 64},
			Seed:         1,
			Distribution: Uniform,
			Logger:       logr.Discard(),
		}

		// Execute
		measurements, err := Run(conf)

		// Check
		assert.NoError(t, err, "benchmark runs")
		assert.Len(t, measurements, 2*4*3, "two sizes, four structures, three operations")

		ops := make(map[string]int)
		for _, m := range measurements {
			ops[m.Operation]++
			assert.Positive(t, m.Duration, "duration recorded")
		}
		assert.Equal(t, 8, ops[OpSet], "set measured for every structure and size")
		assert.Equal(t, 8, ops[OpSearchHit], "search hits measured for every structure and size")
		assert.Equal(t, 8, ops[OpSearchMiss], "search misses measured for every structure and size")
	})
}

func TestWriteCSV(t *testing.T) {
	t.Run("writes header and one row per measurement", func(t *testing.T) {
		// Prepare
		fs := afero.NewMemMapFs()
		measurements := []Measurement{
			{Structure: "naive", Size: 10, Operation: OpSet, Duration: 1500},
			{Structure: "cuckoo", Size: 10, Operation: OpSearchHit, Duration: 300},
		}

		// Execute
		err := WriteCSV(fs, "report.csv", measurements)

		// Check
		assert.NoError(t, err, "writes report")

		data, err := afero.ReadFile(fs, "report.csv")
		assert.NoError(t, err, "reads report back")

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Len(t, lines, 3, "header plus two rows")
		assert.Equal(t, "structure,size,operation,duration_ns", lines[0], "correct header")
		assert.Equal(t, "naive,10,set,1500", lines[1], "correct first row")
		assert.Equal(t, "cuckoo,10,search-hit,300", lines[2], "correct second row")
	})
}
