// Package fitness scores a vocabulary by the compression it achieves on a
// text. It is an independent evaluation, not part of the training loop:
// the colony optimizes pheromone strength, and this package answers the
// separate question of whether the induced vocabulary actually shrinks a
// corpus.
package fitness

import (
	"github.com/hupe1980/antok/tokenizer"
	"github.com/hupe1980/antok/vocab"
)

// tokenIDBytes is the assumed wire size of one token ID (uint16 IDs).
const tokenIDBytes = 2

// perEntryOverhead approximates the bookkeeping cost of one vocabulary
// entry beyond its text.
const perEntryOverhead = 4

// CompressionRatio estimates how much smaller text becomes when encoded as
// token IDs against v, accounting for the cost of shipping the vocabulary
// itself. Higher is better; 2.5 means the encoding is 2.5x smaller than
// the raw UTF-8 bytes. Returns 0 for empty input.
func CompressionRatio(v *vocab.Vocabulary, text string) float64 {
	if len(text) == 0 {
		return 0
	}

	tokens := tokenizer.New(v).Tokenize(text)

	tokenStreamSize := len(tokens) * tokenIDBytes

	vocabSize := 0
	for _, e := range v.Entries() {
		vocabSize += len(e.Token) + perEntryOverhead
	}

	compressed := tokenStreamSize + vocabSize
	if compressed == 0 {
		return 0
	}

	return float64(len(text)) / float64(compressed)
}
