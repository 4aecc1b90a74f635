package fitness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/antok/vocab"
)

func TestCompressionRatio_EmptyText(t *testing.T) {
	assert.Equal(t, 0.0, CompressionRatio(vocab.New(), ""))
}

func TestCompressionRatio_KnownValue(t *testing.T) {
	v := vocab.New()
	v.Add("abcd", 1) // vocab overhead: 4 bytes text + 4 = 8

	text := strings.Repeat("abcd", 100) // 400 bytes -> 100 tokens * 2 = 200
	got := CompressionRatio(v, text)

	assert.InDelta(t, 400.0/208.0, got, 1e-12)
}

func TestCompressionRatio_BetterVocabScoresHigher(t *testing.T) {
	text := strings.Repeat("the quick brown fox ", 200)

	poor := vocab.New() // falls back to single runes everywhere

	good := vocab.New()
	for _, tok := range []string{"the ", "quick ", "brown ", "fox "} {
		good.Add(tok, 1)
	}

	assert.Greater(t, CompressionRatio(good, text), CompressionRatio(poor, text))
}
