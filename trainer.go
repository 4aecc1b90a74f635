package antok

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/antok/colony"
	"github.com/hupe1980/antok/internal/pool"
	"github.com/hupe1980/antok/pheromone"
	"github.com/hupe1980/antok/vocab"
)

// DefaultGenerations is the default number of train-and-prune cycles.
const DefaultGenerations = 20

// Trainer drives the generational training loop over a fixed corpus.
//
// The corpus (an ordered sequence of segments) and the pheromone store are
// fixed for the lifetime of the trainer; a fresh run starts from a fresh
// trainer.
type Trainer struct {
	colony   *colony.Colony
	store    *pheromone.Store
	segments []string
	pool     *pool.WorkerPool
	closed   atomic.Bool
	opts     options
}

// New creates a trainer over segments.
func New(segments []string, optFns ...Option) (*Trainer, error) {
	opts := applyOptions(optFns)

	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	if opts.generations < 1 {
		return nil, &ErrInvalidGenerations{Generations: opts.generations}
	}

	store := pheromone.NewStore(opts.storeOptions...)

	return &Trainer{
		colony:   colony.New(store, opts.colonyOptions...),
		store:    store,
		segments: segments,
		pool:     pool.New(opts.numWorkers),
		opts:     opts,
	}, nil
}

// Close releases the trainer's worker pool. It is safe to call more than
// once; Train fails with ErrTrainerClosed afterwards.
func (t *Trainer) Close() error {
	if t.closed.CompareAndSwap(false, true) {
		t.pool.Close()
	}
	return nil
}

// Store returns the trainer's pheromone store.
func (t *Trainer) Store() *pheromone.Store {
	return t.store
}

// Colony returns the trainer's colony.
func (t *Trainer) Colony() *colony.Colony {
	return t.colony
}

// Vocabulary snapshots the store into a persistable scored vocabulary.
// Call it after Train; calling it mid-run races with deposits.
func (t *Trainer) Vocabulary() *vocab.Vocabulary {
	v := vocab.New()
	for _, e := range t.store.Snapshot() {
		v.Add(e.Token, e.Strength)
	}
	return v
}

// Train runs the configured number of generations.
//
// Each generation is three strict phases separated by a full barrier:
// parallel traversal of every segment (read-only on the store), parallel
// deposit of every collected path (per-key atomic updates), and a
// single-threaded selection pass. No work from generation g+1 begins
// before generation g's selection completes.
//
// Training is an offline batch job with no partial-state recovery; the
// context only serves to abort the run between tasks.
func (t *Trainer) Train(ctx context.Context) error {
	if t.closed.Load() {
		return ErrTrainerClosed
	}

	seed := time.Now().UnixNano()
	if t.opts.seed != nil {
		seed = *t.opts.seed
	}
	seedSrc := rand.New(rand.NewSource(seed))

	limiter := rate.NewLimiter(rate.Every(t.opts.progressInterval), 1)

	logger := t.opts.logger.WithSegments(len(t.segments))

	start := time.Now()

	for gen := 1; gen <= t.opts.generations; gen++ {
		genStart := time.Now()
		genLogger := logger.WithGeneration(gen)

		// Per-ant seeds are drawn up-front so a fixed master seed yields
		// the same ant behavior regardless of worker scheduling.
		seeds := make([]int64, len(t.segments))
		for i := range seeds {
			seeds[i] = seedSrc.Int63()
		}

		paths := make([][]string, len(t.segments))

		// Phase 1: parallel traversal, read-only on the store.
		var traversed atomic.Int64
		err := t.forEachSegment(ctx, func(i int) {
			rng := rand.New(rand.NewSource(seeds[i]))

			taskStart := time.Now()
			paths[i] = t.colony.Traverse(t.segments[i], rng)
			t.opts.metricsCollector.RecordTraversal(len(paths[i]), time.Since(taskStart))

			if n := traversed.Add(1); limiter.Allow() {
				genLogger.DebugContext(ctx, "traversal progress", "done", n)
			}
		})
		if err != nil {
			return err
		}

		// Phase 2: parallel deposit, per-token atomic reinforcement.
		// Coverage only tracks the final generation: earlier generations
		// reinforce a store that selection still reshapes.
		trackCoverage := t.opts.coverage != nil && gen == t.opts.generations
		err = t.forEachSegment(ctx, func(i int) {
			taskStart := time.Now()
			reinforced := t.colony.Deposit(paths[i])
			t.opts.metricsCollector.RecordDeposit(reinforced, time.Since(taskStart))

			if trackCoverage {
				t.opts.coverage.Observe(uint32(i), paths[i])
			}
		})
		if err != nil {
			return err
		}

		// Phase 3: single-threaded selection, writer-exclusive.
		selStart := time.Now()
		sel := t.colony.Select()
		t.opts.metricsCollector.RecordSelection(sel.Before, sel.After, time.Since(selStart))
		genLogger.LogSelection(ctx, sel.Before, sel.After, sel.Threshold)

		t.opts.metricsCollector.RecordGeneration(sel.After, time.Since(genStart))
		t.opts.logger.LogGeneration(ctx, gen, len(t.segments), sel.After, time.Since(genStart))
	}

	t.opts.logger.LogTrainingComplete(ctx, t.opts.generations, t.store.Len(), time.Since(start))

	return nil
}

// forEachSegment submits fn(i) for every segment index to the pool and
// blocks until all submitted tasks complete (the phase barrier).
func (t *Trainer) forEachSegment(ctx context.Context, fn func(i int)) error {
	var (
		wg        sync.WaitGroup
		submitErr error
	)

	for i := range t.segments {
		wg.Add(1)
		err := t.pool.Submit(ctx, func() {
			defer wg.Done()
			fn(i)
		})
		if err != nil {
			wg.Done()
			submitErr = err
			break
		}
	}

	// Wait even on submit failure so no task outlives the barrier.
	wg.Wait()

	if submitErr != nil {
		return submitErr
	}
	return ctx.Err()
}
