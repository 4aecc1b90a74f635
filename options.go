package antok

import (
	"log/slog"
	"time"

	"github.com/hupe1980/antok/colony"
	"github.com/hupe1980/antok/pheromone"
	"github.com/hupe1980/antok/stats"
)

type options struct {
	generations      int
	numWorkers       int
	seed             *int64
	colonyOptions    []func(*colony.Options)
	storeOptions     []func(*pheromone.Options)
	coverage         *stats.Coverage
	metricsCollector MetricsCollector
	logger           *Logger
	progressInterval time.Duration
}

// Option configures Trainer constructor behavior.
type Option func(*options)

// WithGenerations sets the number of train-and-prune cycles over the whole
// corpus. Default: 20.
func WithGenerations(n int) Option {
	return func(o *options) {
		o.generations = n
	}
}

// WithNumWorkers sets the size of the fixed worker pool used for the
// parallel traversal and deposit phases. Defaults to GOMAXPROCS.
func WithNumWorkers(n int) Option {
	return func(o *options) {
		o.numWorkers = n
	}
}

// WithRandomSeed fixes the seed from which every ant's private random
// source is derived. Without it, each run seeds from the wall clock. The
// algorithm is intentionally stochastic either way; a fixed seed only
// makes runs repeatable for tests and experiments.
func WithRandomSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithColonyOptions tunes the colony algorithm (exploration exponent,
// reward exponent, keep ratio, survivor decay, ...).
//
// Example:
//
//	antok.New(segments, antok.WithColonyOptions(func(o *colony.Options) {
//	    o.KeepRatio = 0.2
//	    o.DecaySurvivors = false
//	}))
func WithColonyOptions(optFns ...func(*colony.Options)) Option {
	return func(o *options) {
		o.colonyOptions = append(o.colonyOptions, optFns...)
	}
}

// WithStoreOptions tunes the pheromone store (shard count, initial
// strength).
func WithStoreOptions(optFns ...func(*pheromone.Options)) Option {
	return func(o *options) {
		o.storeOptions = append(o.storeOptions, optFns...)
	}
}

// WithCoverage attaches a coverage tracker that records, per token, the
// segments it was chosen in during the final generation of deposits.
func WithCoverage(c *stats.Coverage) Option {
	return func(o *options) {
		o.coverage = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// training. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for training.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithProgressInterval sets the minimum interval between intra-phase
// progress log lines. Default: 1s.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		generations:      DefaultGenerations,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		progressInterval: time.Second,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
