package corpus

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_DropsBlankLines(t *testing.T) {
	input := "first line\n\nsecond line\n   \n\tthird line\n"

	lines, err := Lines(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"first line", "second line", "\tthird line"}, lines)
}

func TestChunks_ASCII(t *testing.T) {
	chunks := Chunks("abcdefghij", 4)

	assert.Equal(t, []string{"abcd", "efgh", "ij"}, chunks)
	assert.Equal(t, "abcdefghij", strings.Join(chunks, ""))
}

func TestChunks_NeverSplitsRunes(t *testing.T) {
	// Each CJK rune is 3 bytes; a 4-byte target lands mid-rune and must
	// realign backwards.
	text := "日本語のテキスト"

	chunks := Chunks(text, 4)

	assert.Equal(t, text, strings.Join(chunks, ""))
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c), "chunk %q", c)
		assert.LessOrEqual(t, len(c), 4)
	}
}

func TestChunks_RuneWiderThanSize(t *testing.T) {
	chunks := Chunks("日本", 1)

	// Whole runes are emitted even though they exceed the target size.
	assert.Equal(t, []string{"日", "本"}, chunks)
}

func TestChunks_Empty(t *testing.T) {
	assert.Empty(t, Chunks("", 1000))
}

func TestSplit_MonolithicTextIsChunked(t *testing.T) {
	text := strings.Repeat("x", 2500)

	segments, err := Split(text, func(o *SplitOptions) {
		o.ChunkSize = 1000
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		strings.Repeat("x", 1000),
		strings.Repeat("x", 1000),
		strings.Repeat("x", 500),
	}, segments)
}

func TestSplit_StructuredTextUsesLines(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 1500; i++ {
		sb.WriteString("a line of text\n")
	}

	segments, err := Split(sb.String())
	require.NoError(t, err)

	require.Len(t, segments, 1500)
	assert.Equal(t, "a line of text", segments[0])
}

func TestLocalSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello corpus"), 0o644))

	text, err := LocalSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello corpus", text)
}

func TestLocalSource_RejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.txt")
	require.NoError(t, os.WriteFile(path, []byte{'t', 'e', 0xff, 0xfe}, 0o644))

	_, err := LocalSource{Path: path}.Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalidText)
}

func TestLocalSource_Missing(t *testing.T) {
	_, err := LocalSource{Path: filepath.Join(t.TempDir(), "nope.txt")}.Load(context.Background())
	assert.Error(t, err)
}

func TestFallback_FirstSuccessWins(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(present, []byte("fallback text"), 0o644))

	src := Fallback(
		LocalSource{Path: filepath.Join(dir, "missing.txt")},
		LocalSource{Path: present},
		StringSource("never reached"),
	)

	text, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fallback text", text)
}

func TestFallback_SkipsCorruptCorpus(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.txt")
	require.NoError(t, os.WriteFile(corrupt, []byte{0xff}, 0o644))
	clean := filepath.Join(dir, "clean.txt")
	require.NoError(t, os.WriteFile(clean, []byte("clean text"), 0o644))

	text, err := Fallback(
		LocalSource{Path: corrupt},
		LocalSource{Path: clean},
	).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "clean text", text)
}

func TestFallback_AllFail(t *testing.T) {
	dir := t.TempDir()

	src := Fallback(
		LocalSource{Path: filepath.Join(dir, "a.txt")},
		LocalSource{Path: filepath.Join(dir, "b.txt")},
	)

	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestFallback_Empty(t *testing.T) {
	_, err := Fallback().Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSource)
}
