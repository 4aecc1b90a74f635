// Package stats provides training observability over the token paths the
// colony produces.
//
// Coverage tracks, per multi-rune token, the set of corpus segments the
// token was chosen in. Segment sets are Roaring bitmaps, so tracking stays
// cheap even when a token appears in millions of segments.
package stats

import (
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring/v2"
)

// TokenCoverage reports how widely a token is used across the corpus.
type TokenCoverage struct {
	Token    string
	Segments uint64 // distinct segments the token appeared in
}

// Coverage accumulates per-token segment sets. Safe for concurrent use.
type Coverage struct {
	mu     sync.Mutex
	tokens map[string]*roaring.Bitmap
}

// NewCoverage creates an empty coverage tracker.
func NewCoverage() *Coverage {
	return &Coverage{
		tokens: make(map[string]*roaring.Bitmap),
	}
}

// Observe records that the multi-rune tokens of path were chosen in the
// segment with the given ordinal. Single-rune tokens are ignored, matching
// what deposit reinforces.
func (c *Coverage) Observe(segment uint32, path []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, token := range path {
		if utf8.RuneCountInString(token) <= 1 {
			continue
		}
		bm, ok := c.tokens[token]
		if !ok {
			bm = roaring.New()
			c.tokens[token] = bm
		}
		bm.Add(segment)
	}
}

// SegmentCount returns the number of distinct segments token was seen in.
func (c *Coverage) SegmentCount(token string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	bm, ok := c.tokens[token]
	if !ok {
		return 0
	}
	return bm.GetCardinality()
}

// Len returns the number of tracked tokens.
func (c *Coverage) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tokens)
}

// Top returns the n tokens covering the most segments, ties broken by
// token ascending.
func (c *Coverage) Top(n int) []TokenCoverage {
	c.mu.Lock()
	out := make([]TokenCoverage, 0, len(c.tokens))
	for t, bm := range c.tokens {
		out = append(out, TokenCoverage{Token: t, Segments: bm.GetCardinality()})
	}
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Segments != out[j].Segments {
			return out[i].Segments > out[j].Segments
		}
		return out[i].Token < out[j].Token
	})

	if n < len(out) {
		out = out[:n]
	}
	return out
}
