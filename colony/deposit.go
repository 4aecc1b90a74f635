package colony

import (
	"math"
	"unicode/utf8"
)

// Deposit reinforces every multi-rune token of path on the store.
//
// Single-rune tokens are never reinforced; they would flood the store with
// trivial entries that the heuristic already covers. Each qualifying token
// receives a logistic update
//
//	delta = (runes-1)^Q × (1 − current/CarryingCapacity)
//
// applied as a per-key atomic read-modify-write, so deposits from paths
// processed in parallel never lose reinforcement. Strength never
// decreases and never reaches the carrying capacity.
//
// Deposit returns the number of tokens whose strength actually grew;
// saturated tokens are not counted.
func (c *Colony) Deposit(path []string) int {
	reinforced := 0

	for _, token := range path {
		runes := utf8.RuneCountInString(token)
		if runes <= 1 {
			continue
		}

		reward := math.Pow(float64(runes-1), c.opts.Q)

		applied := false
		c.store.Update(token, func(current float64) float64 {
			delta := reward * (1 - current/c.opts.CarryingCapacity)
			if delta <= 0 {
				return current // saturated
			}
			applied = true
			return current + delta
		})

		if applied {
			reinforced++
		}
	}

	return reinforced
}
