// Package vocab models the persisted, scored vocabulary produced by
// training and consumed by the greedy tokenizer.
//
// The on-disk format is line-based, tab-separated UTF-8: a fixed
// "Token\tScore" header followed by one escaped token and its score per
// line. Files may optionally be zstd- or lz4-compressed, selected by the
// ".zst" / ".lz4" file extension.
package vocab

import (
	"sort"
	"unicode/utf8"
)

// Entry is a single (token, score) pair.
type Entry struct {
	Token string
	Score float64
}

// Vocabulary is a scored token set with a known maximum token length.
type Vocabulary struct {
	scores      map[string]float64
	maxTokenLen int // in runes
}

// New creates an empty vocabulary.
func New() *Vocabulary {
	return &Vocabulary{
		scores: make(map[string]float64),
	}
}

// FromEntries builds a vocabulary from entries. Later duplicates overwrite
// earlier ones.
func FromEntries(entries []Entry) *Vocabulary {
	v := New()
	for _, e := range entries {
		v.Add(e.Token, e.Score)
	}
	return v
}

// Add inserts or overwrites a token with the given score.
func (v *Vocabulary) Add(token string, score float64) {
	v.scores[token] = score
	if n := utf8.RuneCountInString(token); n > v.maxTokenLen {
		v.maxTokenLen = n
	}
}

// Score returns the score of token and whether it is present.
func (v *Vocabulary) Score(token string) (float64, bool) {
	s, ok := v.scores[token]
	return s, ok
}

// Contains reports whether token is present.
func (v *Vocabulary) Contains(token string) bool {
	_, ok := v.scores[token]
	return ok
}

// Len returns the number of tokens.
func (v *Vocabulary) Len() int {
	return len(v.scores)
}

// MaxTokenLen returns the rune count of the longest token, or 0 for an
// empty vocabulary.
func (v *Vocabulary) MaxTokenLen() int {
	return v.maxTokenLen
}

// Entries returns all entries sorted by score descending, ties broken by
// token ascending so the order (and therefore the persisted file) is
// deterministic.
func (v *Vocabulary) Entries() []Entry {
	entries := make([]Entry, 0, len(v.scores))
	for t, s := range v.scores {
		entries = append(entries, Entry{Token: t, Score: s})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Token < entries[j].Token
	})
	return entries
}

// Top returns the n highest-scored entries (or all of them if fewer).
func (v *Vocabulary) Top(n int) []Entry {
	entries := v.Entries()
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
