//go:build windows

package mmap

import (
	"io"
	"os"
)

// Windows lacks a drop-in mmap(2); corpora are read into memory instead.
// Correctness is identical, only the zero-copy property is lost.
func mmap(f *os.File, size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return data, nil
}

func munmap(data []byte) error {
	return nil
}
