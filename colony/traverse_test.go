package colony

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/antok/pheromone"
)

func TestTraverse_ReconstructsInput(t *testing.T) {
	texts := []string{
		"a",
		"ab",
		"the quick brown fox jumps over the lazy dog",
		"ant colony optimization works well",
		"héllo wörld ünïcode",
		"日本語のテキストもそのまま再構成される",
		"mixed 混合 text with\ttabs and  spaces",
	}

	store := pheromone.NewStore()
	// Seed the store with a few multi-rune tokens so traversal has real
	// choices to make.
	store.Upsert("the", 50)
	store.Upsert("th", 20)
	store.Upsert("日本", 80)
	store.Upsert(" an", 5)

	c := New(store)

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, text := range texts {
			path := c.Traverse(text, rng)
			assert.Equal(t, text, strings.Join(path, ""), "seed %d", seed)
			for _, tok := range path {
				assert.NotEmpty(t, tok)
			}
		}
	}
}

func TestTraverse_EmptyText(t *testing.T) {
	c := New(pheromone.NewStore())
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, c.Traverse("", rng))
}

func TestTraverse_RespectsMaxTokenLen(t *testing.T) {
	store := pheromone.NewStore()
	// Make a long token overwhelmingly attractive; it must still be
	// unreachable beyond the configured maximum.
	store.Upsert("abcd", 1e6)

	c := New(store, func(o *Options) {
		o.MaxTokenLen = 3
	})

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		path := c.Traverse("abcdabcd", rng)
		for _, tok := range path {
			assert.LessOrEqual(t, len([]rune(tok)), 3)
		}
	}
}

// On an empty store with Beta=2 and a weight floor of 1e-4, traversing
// "ab" weighs the candidates 1e-4 ("a") versus 4e-4 ("ab"): the two-rune
// candidate must be chosen with probability 0.8.
func TestTraverse_RouletteWeighting(t *testing.T) {
	c := New(pheromone.NewStore(), func(o *Options) {
		o.Beta = 2
		o.WeightFloor = 1e-4
	})

	rng := rand.New(rand.NewSource(7))

	const trials = 20000
	longChosen := 0
	for i := 0; i < trials; i++ {
		path := c.Traverse("ab", rng)
		require.NotEmpty(t, path)
		if path[0] == "ab" {
			longChosen++
		}
	}

	ratio := float64(longChosen) / trials
	assert.InDelta(t, 0.8, ratio, 0.02)
}

func TestTraverse_ZeroWeightFallsBackToShortest(t *testing.T) {
	// A negative floor makes every weight negative, so the roulette total
	// is non-positive and the ant must deterministically take single runes.
	c := New(pheromone.NewStore(), func(o *Options) {
		o.WeightFloor = -1
	})

	rng := rand.New(rand.NewSource(3))
	path := c.Traverse("abc", rng)

	assert.Equal(t, []string{"a", "b", "c"}, path)
}

func TestTraverse_InvalidUTF8Input(t *testing.T) {
	c := New(pheromone.NewStore())
	rng := rand.New(rand.NewSource(5))

	// Stray continuation bytes, truncated sequences, and overlong forms
	// must pass through as single-byte tokens without panicking.
	inputs := []string{"\x80", "a\xffb", "h\xc3", "\xf0\x28\x8c\x28", "日\x80本"}
	for _, text := range inputs {
		for i := 0; i < 50; i++ {
			path := c.Traverse(text, rng)
			require.Equal(t, text, strings.Join(path, ""), "input %q", text)
		}
	}
}

func TestTraverse_MultiByteBoundaries(t *testing.T) {
	c := New(pheromone.NewStore())
	rng := rand.New(rand.NewSource(11))

	text := "héllö"
	for i := 0; i < 100; i++ {
		path := c.Traverse(text, rng)
		require.Equal(t, text, strings.Join(path, ""))
		for _, tok := range path {
			assert.True(t, len(tok) > 0)
			// Every token must itself be valid UTF-8 (no split runes).
			assert.Equal(t, tok, string([]rune(tok)))
		}
	}
}
