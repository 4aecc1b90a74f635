package pheromone

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetDefaultsToInitialStrength(t *testing.T) {
	s := NewStore()

	assert.Equal(t, DefaultInitialStrength, s.Get("missing"))
	assert.Equal(t, 0, s.Len())

	s2 := NewStore(func(o *Options) {
		o.InitialStrength = 2.5
	})
	assert.Equal(t, 2.5, s2.Get("missing"))
}

func TestStore_UpsertAndGet(t *testing.T) {
	s := NewStore()

	s.Upsert("the", 3.0)
	s.Upsert("fox", 7.5)

	assert.Equal(t, 3.0, s.Get("the"))
	assert.Equal(t, 7.5, s.Get("fox"))
	assert.Equal(t, 2, s.Len())

	// Overwrite
	s.Upsert("the", 4.0)
	assert.Equal(t, 4.0, s.Get("the"))
	assert.Equal(t, 2, s.Len())
}

func TestStore_UpdateSeesInitialStrengthOnMiss(t *testing.T) {
	s := NewStore()

	s.Update("new", func(current float64) float64 {
		assert.Equal(t, DefaultInitialStrength, current)
		return current + 2
	})

	assert.Equal(t, 3.0, s.Get("new"))
}

func TestStore_ConcurrentUpdatesSameKeyLoseNothing(t *testing.T) {
	s := NewStore()

	const (
		goroutines = 16
		increments = 1000
	)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				s.Update("hot", func(current float64) float64 {
					return current + 1
				})
			}
		}()
	}
	wg.Wait()

	// initial 1.0 + 16*1000 increments
	assert.Equal(t, 1.0+float64(goroutines*increments), s.Get("hot"))
}

func TestStore_ConcurrentUpdatesDistinctKeys(t *testing.T) {
	s := NewStore()

	const goroutines = 32

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		token := fmt.Sprintf("token-%d", i)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				s.Update(token, func(current float64) float64 {
					return current + 1
				})
			}
		}()
	}
	wg.Wait()

	require.Equal(t, goroutines, s.Len())
	for i := 0; i < goroutines; i++ {
		assert.Equal(t, 501.0, s.Get(fmt.Sprintf("token-%d", i)))
	}
}

func TestStore_Snapshot(t *testing.T) {
	s := NewStore()
	s.Upsert("a", 1)
	s.Upsert("bb", 2)
	s.Upsert("ccc", 3)

	entries := s.Snapshot()
	require.Len(t, entries, 3)

	sort.Slice(entries, func(i, j int) bool { return entries[i].Token < entries[j].Token })
	assert.Equal(t, []Entry{
		{Token: "a", Strength: 1},
		{Token: "bb", Strength: 2},
		{Token: "ccc", Strength: 3},
	}, entries)
}

func TestStore_Retain(t *testing.T) {
	s := NewStore()
	s.Upsert("keep", 10)
	s.Upsert("drop", 2)

	s.Retain(func(token string, strength float64) (float64, bool) {
		if strength < 5 {
			return 0, false
		}
		return strength * 0.8, true
	})

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 8.0, s.Get("keep"))
	// Evicted token reads back as the initial strength.
	assert.Equal(t, DefaultInitialStrength, s.Get("drop"))
}

func TestStore_ShardCountRoundsUpToPowerOfTwo(t *testing.T) {
	s := NewStore(func(o *Options) {
		o.NumShards = 5
	})
	assert.Equal(t, 8, len(s.shards))

	s = NewStore(func(o *Options) {
		o.NumShards = 0
	})
	assert.Equal(t, 1, len(s.shards))
}
