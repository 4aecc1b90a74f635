package mmap

import (
	"errors"
	"os"
	"sync/atomic"
)

// ErrClosed is returned when accessing a closed mapping.
var ErrClosed = errors.New("mmap: mapping is closed")

// Mapping represents a read-only memory-mapped file.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	size   int
	closed atomic.Bool
}

// Open maps the file at path into memory as read-only.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		return &Mapping{data: nil, size: 0}, nil
	}

	data, err := mmap(f, int(size))
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data: data,
		size: int(size),
	}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.data != nil {
		return munmap(m.data)
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}
