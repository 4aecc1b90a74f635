package colony

import "sort"

// SelectionStats reports the effect of one selection pass.
type SelectionStats struct {
	// Before is the entry count prior to selection.
	Before int

	// After is the surviving entry count.
	After int

	// Threshold is the strength at the keep-ratio rank; entries strictly
	// below it were removed. Zero when the store was empty.
	Threshold float64
}

// Select prunes the store to its top KeepRatio fraction by strength,
// optionally decaying survivors.
//
// The threshold is the strength at sorted rank max(1, floor(N×KeepRatio)),
// clamped to [0, N−1], taken over a descending snapshot. Every entry
// strictly below the threshold is removed; an evicted token that reappears
// in a later traversal restarts at the initial strength with no memory of
// its prior score.
//
// Select requires writer exclusivity: no traversal or deposit may be in
// flight.
func (c *Colony) Select() SelectionStats {
	before := c.store.Len()
	if before == 0 {
		return SelectionStats{}
	}

	entries := c.store.Snapshot()

	scores := make([]float64, len(entries))
	for i, e := range entries {
		scores[i] = e.Strength
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	cut := int(float64(before) * c.opts.KeepRatio)
	if cut < 1 {
		cut = 1
	}
	if cut > before-1 {
		cut = before - 1
	}
	threshold := scores[cut]

	c.store.Retain(func(token string, strength float64) (float64, bool) {
		if strength < threshold {
			return 0, false
		}
		if c.opts.DecaySurvivors {
			return strength * c.opts.DecayFactor, true
		}
		return strength, true
	})

	return SelectionStats{
		Before:    before,
		After:     c.store.Len(),
		Threshold: threshold,
	}
}
