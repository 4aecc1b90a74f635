package fs

import (
	"fmt"
	"os"
	"sync"
)

// FaultyFS is a FileSystem wrapper that injects write errors after a
// configurable number of bytes. It is used to test that vocabulary
// persistence stops at the first failure and leaves a partial artifact.
type FaultyFS struct {
	FS  FileSystem
	Err error

	mu      sync.Mutex
	written int64
	limit   int64 // fail writes once total written bytes exceed this; -1 disables
}

// NewFaultyFS creates a new FaultyFS wrapping the provided FS (or Default if nil).
func NewFaultyFS(fs FileSystem) *FaultyFS {
	if fs == nil {
		fs = Default
	}
	return &FaultyFS{
		FS:    fs,
		Err:   fmt.Errorf("injected fault error"),
		limit: -1,
	}
}

// SetLimit sets the total byte limit after which writes fail.
func (f *FaultyFS) SetLimit(limit int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limit = limit
}

// Written returns the total bytes written so far.
func (f *FaultyFS) Written() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.written
}

func (f *FaultyFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f}, nil
}

func (f *FaultyFS) Remove(name string) error             { return f.FS.Remove(name) }
func (f *FaultyFS) Rename(oldpath, newpath string) error { return f.FS.Rename(oldpath, newpath) }
func (f *FaultyFS) Stat(name string) (os.FileInfo, error) {
	return f.FS.Stat(name)
}
func (f *FaultyFS) MkdirAll(path string, perm os.FileMode) error {
	return f.FS.MkdirAll(path, perm)
}

type faultyFile struct {
	File
	fs *FaultyFS
}

func (f *faultyFile) Write(p []byte) (int, error) {
	f.fs.mu.Lock()
	limit := f.fs.limit
	written := f.fs.written
	f.fs.mu.Unlock()

	if limit >= 0 && written >= limit {
		return 0, f.fs.Err
	}

	n := len(p)
	if limit >= 0 && written+int64(n) > limit {
		n = int(limit - written)
	}

	n, err := f.File.Write(p[:n])

	f.fs.mu.Lock()
	f.fs.written += int64(n)
	f.fs.mu.Unlock()

	if err != nil {
		return n, err
	}
	if n < len(p) {
		return n, f.fs.Err
	}
	return n, nil
}
