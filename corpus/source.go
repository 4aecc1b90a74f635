package corpus

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/hupe1980/antok/internal/mmap"
)

// ErrNoSource is returned when a fallback chain has no usable source.
var ErrNoSource = errors.New("no corpus source available")

// ErrInvalidText is returned when a corpus file is not valid UTF-8.
var ErrInvalidText = errors.New("corpus is not valid UTF-8")

// Source supplies raw corpus text.
type Source interface {
	// Load returns the full corpus text.
	Load(ctx context.Context) (string, error)
}

// LocalSource loads a corpus file from the local file system via mmap.
// Files that are not valid UTF-8 fail the load, so a fallback chain can
// move on to the next candidate.
type LocalSource struct {
	Path string
}

// Load implements Source.
func (s LocalSource) Load(ctx context.Context) (string, error) {
	m, err := mmap.Open(s.Path)
	if err != nil {
		return "", fmt.Errorf("open corpus %q: %w", s.Path, err)
	}
	defer m.Close()

	// The mapping dies with this call, so the text is copied out once.
	text := string(m.Bytes())
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("corpus %q: %w", s.Path, ErrInvalidText)
	}
	return text, nil
}

// StringSource is an in-memory corpus, mostly for tests and demos.
type StringSource string

// Load implements Source.
func (s StringSource) Load(ctx context.Context) (string, error) {
	return string(s), nil
}

// Fallback returns a source that tries each candidate in order and
// returns the first successful load. All failures are joined into the
// returned error when every candidate fails.
func Fallback(sources ...Source) Source {
	return fallbackSource(sources)
}

type fallbackSource []Source

func (f fallbackSource) Load(ctx context.Context) (string, error) {
	if len(f) == 0 {
		return "", ErrNoSource
	}

	var errs []error
	for _, s := range f {
		text, err := s.Load(ctx)
		if err == nil {
			return text, nil
		}
		errs = append(errs, err)
	}

	return "", fmt.Errorf("%w: %w", ErrNoSource, errors.Join(errs...))
}
