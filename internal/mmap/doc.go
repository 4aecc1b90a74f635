// Package mmap provides read-only memory-mapped file access for zero-copy
// corpus loading.
//
// Memory mapping allows direct access to file contents without copying data
// through kernel buffers, which matters when training corpora reach
// hundreds of megabytes.
//
//	m, err := mmap.Open("corpus.txt")
//	if err != nil { ... }
//	defer m.Close()
//	data := m.Bytes()
//
// Mapping is safe for concurrent read access. Close() is idempotent, but
// callers must ensure no goroutines access Bytes() after Close() returns.
package mmap
