package vocab

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/antok/internal/fs"
)

// FileOptions configures file-level persistence.
type FileOptions struct {
	// FS is the file system used for I/O. Defaults to the local disk.
	FS fs.FileSystem
}

func applyFileOptions(optFns []func(*FileOptions)) FileOptions {
	opts := FileOptions{
		FS: fs.Default,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// SaveFile writes the vocabulary to path. Compression is selected by the
// file extension: ".zst" for zstd, ".lz4" for lz4 frames, anything else
// is plain TSV.
//
// On a mid-write failure the partial file is left in place so the
// failure stays visible; the first error is returned.
func SaveFile(path string, v *Vocabulary, optFns ...func(*FileOptions)) error {
	opts := applyFileOptions(optFns)

	f, err := opts.FS.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)

	var (
		w      io.Writer = bw
		finish func() error
	)

	switch filepath.Ext(path) {
	case ".zst":
		enc, err := zstd.NewWriter(bw, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		w = enc
		finish = enc.Close
	case ".lz4":
		lw := lz4.NewWriter(bw)
		w = lw
		finish = lw.Close
	}

	if err := Write(w, v); err != nil {
		return err
	}

	if finish != nil {
		if err := finish(); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

// LoadFile reads a vocabulary from path, decompressing by extension the
// same way SaveFile compresses.
func LoadFile(path string, optFns ...func(*FileOptions)) (*Vocabulary, error) {
	opts := applyFileOptions(optFns)

	f, err := opts.FS.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)

	switch filepath.Ext(path) {
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
	case ".lz4":
		r = lz4.NewReader(r)
	}

	return Read(r)
}
