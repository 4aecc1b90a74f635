package antok

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting training metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordTraversal is called after each segment traversal.
	// tokens is the path length.
	RecordTraversal(tokens int, duration time.Duration)

	// RecordDeposit is called after each path deposit.
	// reinforced is the number of tokens that received reinforcement.
	RecordDeposit(reinforced int, duration time.Duration)

	// RecordSelection is called after each natural-selection pass.
	// before and after are the store entry counts around the pass.
	RecordSelection(before, after int, duration time.Duration)

	// RecordGeneration is called after each full generation.
	RecordGeneration(vocabSize int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTraversal(int, time.Duration)      {}
func (NoopMetricsCollector) RecordDeposit(int, time.Duration)        {}
func (NoopMetricsCollector) RecordSelection(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordGeneration(int, time.Duration)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TraversalCount       atomic.Int64
	TraversalTokens      atomic.Int64
	TraversalTotalNanos  atomic.Int64
	DepositCount         atomic.Int64
	DepositReinforced    atomic.Int64
	SelectionCount       atomic.Int64
	SelectionEvicted     atomic.Int64
	GenerationCount      atomic.Int64
	GenerationTotalNanos atomic.Int64
}

// RecordTraversal implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTraversal(tokens int, duration time.Duration) {
	b.TraversalCount.Add(1)
	b.TraversalTokens.Add(int64(tokens))
	b.TraversalTotalNanos.Add(duration.Nanoseconds())
}

// RecordDeposit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDeposit(reinforced int, duration time.Duration) {
	b.DepositCount.Add(1)
	b.DepositReinforced.Add(int64(reinforced))
}

// RecordSelection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelection(before, after int, duration time.Duration) {
	b.SelectionCount.Add(1)
	b.SelectionEvicted.Add(int64(before - after))
}

// RecordGeneration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGeneration(vocabSize int, duration time.Duration) {
	b.GenerationCount.Add(1)
	b.GenerationTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TraversalCount:    b.TraversalCount.Load(),
		TraversalTokens:   b.TraversalTokens.Load(),
		TraversalAvgNanos: b.getAvgTraversalNanos(),
		DepositCount:      b.DepositCount.Load(),
		DepositReinforced: b.DepositReinforced.Load(),
		SelectionCount:    b.SelectionCount.Load(),
		SelectionEvicted:  b.SelectionEvicted.Load(),
		GenerationCount:   b.GenerationCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgTraversalNanos() int64 {
	count := b.TraversalCount.Load()
	if count == 0 {
		return 0
	}
	return b.TraversalTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TraversalCount    int64
	TraversalTokens   int64
	TraversalAvgNanos int64
	DepositCount      int64
	DepositReinforced int64
	SelectionCount    int64
	SelectionEvicted  int64
	GenerationCount   int64
}
