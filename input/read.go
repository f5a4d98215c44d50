// SPDX-License-Identifier: MIT

package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"
)

// Codec names the compression detected from a file extension.
type Codec string

const (
	CodecNone Codec = "none"
	CodecZstd Codec = "zstd"
	CodecGzip Codec = "gzip"
	CodecLZ4  Codec = "lz4"
)

// CodecFor maps a path's extension to its Codec.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CodecZstd
	case ".gz":
		return CodecGzip
	case ".lz4":
		return CodecLZ4
	}

	return CodecNone
}

// ReadFile loads the whole file at path into a newly allocated buffer owned
// by the caller.
//
// Behavior highlights:
//   - An empty file yields an empty, non-nil buffer.
//   - With mmap enabled (default, unix only) the file is mapped read-only,
//     copied out and unmapped; otherwise it is read directly.
//   - Compressed files (see CodecFor) are decompressed; the decompressed size
//     is bounded by WithMaxSize as well.
//
// Errors:
//   - open/stat/map failures wrapped with the path.
//   - ErrNotRegular, ErrTooLarge, ErrCorrupt.
func ReadFile(path string, opts ...Option) ([]byte, error) {
	o := gatherOptions(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("input: stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("input: %s: %w", path, ErrNotRegular)
	}
	size := fi.Size()
	if size > o.maxSize {
		return nil, fmt.Errorf("input: %s (%d bytes): %w", path, size, ErrTooLarge)
	}

	raw := []byte{}
	mapped := o.mmap && mmapSupported && size > 0
	switch {
	case mapped:
		raw, err = mapCopy(f, int(size))
	case size > 0:
		raw, err = io.ReadAll(f)
	}
	if err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}

	codec := CodecFor(path)
	out, err := decode(codec, raw, o.maxSize)
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", path, err)
	}

	o.logger.Debug("input: loaded",
		zap.String("path", path),
		zap.Int64("size", size),
		zap.Int("bytes", len(out)),
		zap.Bool("mmap", mapped),
		zap.String("codec", string(codec)),
	)

	return out, nil
}

// decode expands raw according to codec, refusing payloads above limit.
func decode(codec Codec, raw []byte, limit int64) ([]byte, error) {
	switch codec {
	case CodecZstd:
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(limit)))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		out, err := dec.DecodeAll(raw, nil)
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
			return nil, ErrTooLarge
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if int64(len(out)) > limit {
			return nil, ErrTooLarge
		}

		return out, nil
	case CodecGzip:
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		defer zr.Close()

		return readLimited(zr, limit)
	case CodecLZ4:
		return readLimited(lz4.NewReader(bytes.NewReader(raw)), limit)
	}

	return raw, nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if int64(len(out)) > limit {
		return nil, ErrTooLarge
	}

	return out, nil
}
