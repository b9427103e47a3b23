//go:build integration

package hashdict

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gostonefire/hashdict/crt"
	"github.com/gostonefire/hashdict/hashfunc"
	"github.com/stretchr/testify/assert"
)

var techniques = []struct {
	name      string
	technique int
}{
	{"naive", crt.Naive},
	{"separate chaining", crt.SeparateChaining},
	{"linear probing", crt.LinearProbing},
	{"cuckoo", crt.Cuckoo},
}

func TestNew(t *testing.T) {
	t.Run("rejects a non positive capacity", func(t *testing.T) {
		// Execute
		_, err := New[string](0, crt.Naive, Config{})

		// Check
		assert.Error(t, err, "zero capacity rejected")
	})

	t.Run("rejects an unknown technique", func(t *testing.T) {
		// Execute
		_, err := New[string](10, 99, Config{})

		// Check
		assert.Error(t, err, "unknown technique rejected")
	})

	t.Run("creates a dictionary for every technique", func(t *testing.T) {
		for _, tq := range techniques {
			// Execute
			dict, err := New[string](10, tq.technique, Config{Rand: rand.New(rand.NewSource(1))})

			// Check
			assert.NoError(t, err, tq.name)
			assert.Equal(t, 10, dict.Capacity(), tq.name)
			assert.Equal(t, 0, dict.Len(), tq.name)
		}
	})
}

func TestDictionary_RoundTrip(t *testing.T) {
	t.Run("set then search returns the stored value", func(t *testing.T) {
		for _, tq := range techniques {
			// Prepare
			dict, err := New[uint32](64, tq.technique, Config{Rand: rand.New(rand.NewSource(1))})
			assert.NoError(t, err, tq.name)

			// Execute
			for key := uint32(1); key <= 30; key++ {
				err = dict.Set(key, key*7)
				assert.NoError(t, err, tq.name)
			}

			// Check
			assert.Equal(t, 30, dict.Len(), tq.name)
			for key := uint32(1); key <= 30; key++ {
				value, err := dict.Search(key)
				assert.NoError(t, err, tq.name)
				assert.Equal(t, key*7, value, tq.name)
			}
		}
	})

	t.Run("overwrite keeps the entry count and returns the latest value", func(t *testing.T) {
		for _, tq := range techniques {
			// Prepare
			dict, err := New[string](16, tq.technique, Config{Rand: rand.New(rand.NewSource(1))})
			assert.NoError(t, err, tq.name)
			assert.NoError(t, dict.Set(5, "v1"), tq.name)

			// Execute
			err = dict.Set(5, "v2")

			// Check
			assert.NoError(t, err, tq.name)
			assert.Equal(t, 1, dict.Len(), tq.name)

			value, err := dict.Search(5)
			assert.NoError(t, err, tq.name)
			assert.Equal(t, "v2", value, tq.name)
		}
	})

	t.Run("search on a never stored key reports not found", func(t *testing.T) {
		for _, tq := range techniques {
			for _, capacity := range []int{1, 16} {
				// Prepare
				dict, err := New[string](capacity, tq.technique, Config{Rand: rand.New(rand.NewSource(1))})
				assert.NoError(t, err, tq.name)

				// Execute
				_, err = dict.Search(12345)

				// Check
				assert.True(t, errors.Is(err, crt.NotFound{}), tq.name)
			}
		}
	})
}

func TestDictionary_CapacityOfOne(t *testing.T) {
	t.Run("a single entry succeeds for every technique", func(t *testing.T) {
		for _, tq := range techniques {
			// Prepare
			dict, err := New[string](1, tq.technique, Config{Rand: rand.New(rand.NewSource(1))})
			assert.NoError(t, err, tq.name)

			// Execute
			err = dict.Set(1, "one")

			// Check
			assert.NoError(t, err, tq.name)
			value, err := dict.Search(1)
			assert.NoError(t, err, tq.name)
			assert.Equal(t, "one", value, tq.name)
		}
	})

	t.Run("a second distinct key follows the per technique policy", func(t *testing.T) {
		for _, tq := range techniques {
			// Prepare
			dict, err := New[string](1, tq.technique, Config{Rand: rand.New(rand.NewSource(1))})
			assert.NoError(t, err, tq.name)
			assert.NoError(t, dict.Set(1, "one"), tq.name)

			// Execute
			err = dict.Set(2, "two")

			// Check
			if tq.technique == crt.LinearProbing {
				assert.True(t, errors.Is(err, crt.TableFull{}), tq.name)
			} else {
				assert.NoError(t, err, tq.name)
				value, err := dict.Search(2)
				assert.NoError(t, err, tq.name)
				assert.Equal(t, "two", value, tq.name)
			}
		}
	})
}

func TestDictionary_CustomHashFunction(t *testing.T) {
	t.Run("accepts an injected ecosystem hash function", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(3))
		for _, hashFn := range []hashfunc.HashFunction{
			NewMurmur3HashFunction(rnd),
			NewMetroHashFunction(rnd),
			NewHighwayHashFunction(rnd),
		} {
			// Prepare
			dict, err := New[uint32](32, crt.LinearProbing, Config{Rand: rnd, HashFunction: hashFn})
			assert.NoError(t, err, "creates dictionary with custom hash")

			// Execute
			for key := uint32(0); key < 16; key++ {
				err = dict.Set(key, key)
				assert.NoError(t, err, "set succeeds")
			}

			// Check
			for key := uint32(0); key < 16; key++ {
				value, err := dict.Search(key)
				assert.NoError(t, err, "finds entry")
				assert.Equal(t, key, value, "correct value")
			}
		}
	})
}
