// Package tokenizer implements the deterministic, score-greedy
// segmentation that applies a trained vocabulary at inference time.
//
// Unlike the stochastic training-time traversal, the tokenizer involves no
// randomness: given the same vocabulary and input it always produces the
// same output, and concatenating that output always reproduces the input
// exactly.
package tokenizer

import (
	"unicode/utf8"

	"github.com/hupe1980/antok/vocab"
)

// Tokenizer segments text against a fixed, scored vocabulary.
type Tokenizer struct {
	vocab       *vocab.Vocabulary
	maxTokenLen int // in runes, derived from the longest vocabulary token
}

// New creates a tokenizer over v.
func New(v *vocab.Vocabulary) *Tokenizer {
	maxLen := v.MaxTokenLen()
	if maxLen < 1 {
		maxLen = 1
	}
	return &Tokenizer{
		vocab:       v,
		maxTokenLen: maxLen,
	}
}

// Load is a convenience that reads a vocabulary file (see vocab.LoadFile)
// and wraps it in a tokenizer.
func Load(path string) (*Tokenizer, error) {
	v, err := vocab.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(v), nil
}

// Vocab returns the underlying vocabulary.
func (t *Tokenizer) Vocab() *vocab.Vocabulary {
	return t.vocab
}

// MaxTokenLen returns the rune count of the longest vocabulary token.
func (t *Tokenizer) MaxTokenLen() int {
	return t.maxTokenLen
}

// Tokenize splits text into tokens.
//
// At each position every candidate substring of 1 up to
// min(remaining, MaxTokenLen) runes is looked up in the vocabulary. The
// candidate with the strictly highest score wins; on a score tie the
// longer candidate wins. When no candidate is in the vocabulary the single
// next rune is emitted as an implicit unscored token. Invalid UTF-8 bytes
// pass through as single-byte tokens, so concatenating the output always
// reproduces the input.
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := make([]string, 0, len(text)/4)

	cursor := 0
	for cursor < len(text) {
		remaining := text[cursor:]

		var (
			bestEnd   int
			bestScore float64
			found     bool
		)

		end := 0
		firstEnd := 0
		for runes := 1; runes <= t.maxTokenLen && end < len(remaining); runes++ {
			// Offsets follow the real decoded width (1 for invalid bytes),
			// never the 3-byte replacement rune.
			_, w := utf8.DecodeRuneInString(remaining[end:])
			end += w
			if firstEnd == 0 {
				firstEnd = end
			}

			score, ok := t.vocab.Score(remaining[:end])
			if !ok {
				continue
			}
			// Strictly higher score wins; equal score prefers the longer
			// candidate, which this later iteration is.
			if !found || score >= bestScore {
				bestEnd = end
				bestScore = score
				found = true
			}
		}

		if !found {
			bestEnd = firstEnd // single-rune fallback
		}

		tokens = append(tokens, remaining[:bestEnd])
		cursor += bestEnd
	}

	return tokens
}
