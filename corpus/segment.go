// Package corpus loads training text and splits it into the segments that
// ants traverse independently.
//
// Two segmentation policies exist: natural newline-delimited lines (blank
// lines dropped), and fixed-size chunks for monolithic single-line
// corpora. Chunk boundaries always realign to rune starts, so segments are
// valid UTF-8 even for multi-byte corpora and no text is lost.
package corpus

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// SplitOptions configures automatic corpus segmentation.
type SplitOptions struct {
	// ChunkSize is the target chunk size in bytes for monolithic text.
	// Chunks may be slightly shorter to avoid splitting a rune.
	ChunkSize int

	// LineThreshold is the minimum number of non-blank lines for the text
	// to count as line-structured. Below it the text is treated as
	// monolithic and chunked.
	LineThreshold int
}

// DefaultSplitOptions are the defaults used by Split.
var DefaultSplitOptions = SplitOptions{
	ChunkSize:     1000,
	LineThreshold: 1000,
}

// Lines reads newline-delimited segments from r, dropping blank lines.
func Lines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Chunks splits text into segments of at most size bytes, cutting only on
// rune boundaries. A boundary that would land inside a multi-byte rune is
// moved back to the rune's start; a single rune wider than size is emitted
// whole so the cursor always advances.
func Chunks(text string, size int) []string {
	if size < 1 {
		size = 1
	}

	chunks := make([]string, 0, len(text)/size+1)

	start := 0
	for start < len(text) {
		end := start + size
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}

		for end > start && !utf8.RuneStart(text[end]) {
			end--
		}
		if end == start {
			_, n := utf8.DecodeRuneInString(text[start:])
			end = start + n
		}

		chunks = append(chunks, text[start:end])
		start = end
	}

	return chunks
}

// Split segments text automatically: line-structured corpora use their
// natural lines, monolithic text (fewer non-blank lines than the
// threshold) is chunked.
func Split(text string, optFns ...func(*SplitOptions)) ([]string, error) {
	opts := DefaultSplitOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	lines, err := Lines(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	if len(lines) < opts.LineThreshold {
		return Chunks(text, opts.ChunkSize), nil
	}
	return lines, nil
}
