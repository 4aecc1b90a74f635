// Package colony implements the ant-colony training engines: stochastic
// traversal, pheromone deposit, and generational selection.
//
// A colony wraps a pheromone store and the tunables of the algorithm. The
// three engines are deliberately small and side-effect scoped:
//
//   - Traverse is read-only on the store and safe to run massively in
//     parallel, one private random source per ant.
//   - Deposit performs per-token atomic reinforcement and may race with
//     other deposits.
//   - Select requires writer exclusivity and runs once per generation.
package colony

import (
	"github.com/hupe1980/antok/pheromone"
)

// Options holds the tunables of the colony algorithm.
type Options struct {
	// MaxTokenLen is the maximum candidate token length in Unicode scalar
	// values (runes, not bytes).
	MaxTokenLen int

	// Beta is the exploration exponent of the length heuristic: a
	// candidate of n runes gets a static bias of n^Beta. Higher values
	// drive ants toward longer tokens.
	Beta float64

	// Q controls how strongly deposit rewards token length:
	// reward = (runes-1)^Q.
	Q float64

	// WeightFloor is the floor applied to ln(strength) during candidate
	// weighting. It keeps weights positive while a token's strength is
	// still at or below the initial strength (ln(1) = 0).
	WeightFloor float64

	// CarryingCapacity is the logistic growth ceiling: reinforcement is
	// near-linear while a strength is far below it and vanishes as the
	// strength approaches it.
	CarryingCapacity float64

	// KeepRatio is the fraction of entries that survives each selection.
	KeepRatio float64

	// DecaySurvivors enables multiplying every survivor's strength by
	// DecayFactor after selection. Both behaviors are legitimate; decay
	// keeps established tokens from coasting on old reinforcement.
	DecaySurvivors bool

	// DecayFactor is the survivor decay multiplier, applied only when
	// DecaySurvivors is true.
	DecayFactor float64
}

// DefaultOptions are the empirically tuned defaults.
var DefaultOptions = Options{
	MaxTokenLen:      10,
	Beta:             4,
	Q:                3,
	WeightFloor:      1e-4,
	CarryingCapacity: 1e8,
	KeepRatio:        0.5,
	DecaySurvivors:   true,
	DecayFactor:      0.8,
}

// Colony binds the engines to a pheromone store.
type Colony struct {
	store *pheromone.Store
	opts  Options
}

// New creates a colony over the given store.
func New(store *pheromone.Store, optFns ...func(*Options)) *Colony {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxTokenLen < 1 {
		opts.MaxTokenLen = 1
	}

	return &Colony{
		store: store,
		opts:  opts,
	}
}

// Store returns the underlying pheromone store.
func (c *Colony) Store() *pheromone.Store {
	return c.store
}

// Options returns a copy of the colony's tunables.
func (c *Colony) Options() Options {
	return c.opts
}
