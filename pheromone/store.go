// Package pheromone implements the shared score table that training ants
// read and reinforce.
//
// The store is a sharded map from token text to a floating-point strength.
// It is logically total: reading a token that was never deposited (or was
// evicted by selection) yields the configured initial strength, so callers
// never have to special-case misses.
//
// Sharding gives per-key atomicity without global locking: concurrent
// updates to different tokens proceed in parallel, while updates racing on
// the same token serialize on that token's shard.
package pheromone

import (
	"sync"

	"github.com/hupe1980/antok/internal/hash"
)

// DefaultInitialStrength is the strength reported for absent tokens.
const DefaultInitialStrength = 1.0

// DefaultNumShards is the default shard count. Must be a power of two.
const DefaultNumShards = 32

// Entry is a single (token, strength) pair from a store snapshot.
type Entry struct {
	Token    string
	Strength float64
}

// Options configures a Store.
type Options struct {
	// NumShards is the number of independent map shards. Rounded up to the
	// next power of two.
	NumShards int

	// InitialStrength is the strength returned for tokens not present in
	// the store.
	InitialStrength float64
}

// DefaultOptions are the default store options.
var DefaultOptions = Options{
	NumShards:       DefaultNumShards,
	InitialStrength: DefaultInitialStrength,
}

type shard struct {
	mu sync.RWMutex
	m  map[string]float64
}

// Store is a concurrency-safe mapping from token text to pheromone strength.
//
// Reads never block writes on other shards; updates to a single token are
// atomic read-modify-write operations. Snapshot and Retain assume no
// concurrent writers and are intended for the single-threaded selection
// phase.
type Store struct {
	shards  []shard
	mask    uint32
	initial float64
}

// NewStore creates an empty store.
func NewStore(optFns ...func(*Options)) *Store {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	n := nextPowerOfTwo(opts.NumShards)

	s := &Store{
		shards:  make([]shard, n),
		mask:    uint32(n - 1),
		initial: opts.InitialStrength,
	}
	for i := range s.shards {
		s.shards[i].m = make(map[string]float64)
	}

	return s
}

func nextPowerOfTwo(n int) int {
	if n < 1 {
		n = 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (s *Store) shardFor(token string) *shard {
	return &s.shards[hash.TokenHash(token)&s.mask]
}

// InitialStrength returns the strength assumed for absent tokens.
func (s *Store) InitialStrength() float64 {
	return s.initial
}

// Get returns the strength of token, or the initial strength if the token
// is not present. It never fails.
func (s *Store) Get(token string) float64 {
	sh := s.shardFor(token)
	sh.mu.RLock()
	v, ok := sh.m[token]
	sh.mu.RUnlock()
	if !ok {
		return s.initial
	}
	return v
}

// Upsert sets the strength of token.
func (s *Store) Upsert(token string, strength float64) {
	sh := s.shardFor(token)
	sh.mu.Lock()
	sh.m[token] = strength
	sh.mu.Unlock()
}

// Update applies fn to the current strength of token (or the initial
// strength if absent) and stores the result. The read-compute-write
// sequence is atomic with respect to other Update and Upsert calls on the
// same token, so no concurrent reinforcement is lost.
func (s *Store) Update(token string, fn func(current float64) float64) {
	sh := s.shardFor(token)
	sh.mu.Lock()
	cur, ok := sh.m[token]
	if !ok {
		cur = s.initial
	}
	sh.m[token] = fn(cur)
	sh.mu.Unlock()
}

// Len returns the number of tokens physically present in the store.
func (s *Store) Len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		n += len(sh.m)
		sh.mu.RUnlock()
	}
	return n
}

// Snapshot returns a point-in-time copy of all entries. The order is
// unspecified. Callers must ensure no concurrent writers for the snapshot
// to be consistent across shards; within the training pipeline it is only
// called during the writer-exclusive selection phase and after training.
func (s *Store) Snapshot() []Entry {
	entries := make([]Entry, 0, s.Len())
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		for t, v := range sh.m {
			entries = append(entries, Entry{Token: t, Strength: v})
		}
		sh.mu.RUnlock()
	}
	return entries
}

// Retain keeps only the entries for which fn returns true, replacing each
// survivor's strength with the returned value. Like Snapshot, it requires
// writer exclusivity.
func (s *Store) Retain(fn func(token string, strength float64) (float64, bool)) {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		for t, v := range sh.m {
			next, keep := fn(t, v)
			if !keep {
				delete(sh.m, t)
				continue
			}
			sh.m[t] = next
		}
		sh.mu.Unlock()
	}
}
