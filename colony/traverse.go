package colony

import (
	"math"
	"math/rand"
	"unicode/utf8"
)

// candidate is one growing rune-prefix of the remaining text, with its
// roulette weight.
type candidate struct {
	end    int // byte offset one past the candidate within the remaining text
	weight float64
}

// Traverse runs a single ant over text and returns the chosen token path.
//
// The ant keeps a cursor and, at every step, weighs the 1..MaxTokenLen
// rune prefixes of the remaining text by
//
//	weight = max(ln τ, floor) × runes^β
//
// where τ is the token's pheromone strength. One prefix is chosen by
// roulette-wheel selection against rng and the cursor advances past it, so
// the concatenation of the returned path always reproduces text exactly.
// Invalid UTF-8 bytes count as single-rune candidates, so reconstruction
// holds for arbitrary input.
//
// Traverse only reads the store; it is safe to call concurrently as long
// as every caller owns its rng.
func (c *Colony) Traverse(text string, rng *rand.Rand) []string {
	path := make([]string, 0, len(text)/4)
	candidates := make([]candidate, 0, c.opts.MaxTokenLen)

	cursor := 0
	for cursor < len(text) {
		remaining := text[cursor:]

		candidates = candidates[:0]
		total := 0.0

		end := 0
		for runes := 1; runes <= c.opts.MaxTokenLen && end < len(remaining); runes++ {
			// DecodeRuneInString reports a width of 1 for invalid bytes, so
			// the offset tracks the real byte advance even on corrupt input.
			_, w := utf8.DecodeRuneInString(remaining[end:])
			end += w

			tau := c.store.Get(remaining[:end])
			eta := math.Pow(float64(runes), c.opts.Beta)
			weight := math.Max(math.Log(tau), c.opts.WeightFloor) * eta

			total += weight
			candidates = append(candidates, candidate{end: end, weight: weight})
		}

		// Shortest candidate is the fallback when all weights vanish.
		selected := candidates[0].end

		if total > 0 {
			draw := rng.Float64() * total
			sum := 0.0
			for _, cand := range candidates {
				sum += cand.weight
				if sum >= draw {
					selected = cand.end
					break
				}
			}
		}

		path = append(path, remaining[:selected])
		cursor += selected
	}

	return path
}
