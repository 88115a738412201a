// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the transparent decompression applied to an
// input stream.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLZ4
)

// String returns the human-readable name of a compression scheme.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Stream container magic numbers.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

func detectCompression(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, magicGzip):
		return CompressionGzip
	case bytes.HasPrefix(head, magicZstd):
		return CompressionZstd
	case bytes.HasPrefix(head, magicLZ4):
		return CompressionLZ4
	}
	return CompressionNone
}

// decompress wraps r with the decompressor matching the stream's
// magic bytes; plain streams pass through buffered. When the wrapped
// reader is an io.Closer the caller should close it after reading.
func decompress(r io.Reader) (io.Reader, Compression, error) {
	buffered := bufio.NewReader(r)
	head, err := buffered.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, CompressionNone, fmt.Errorf("read stream head: %w", err)
	}
	switch detectCompression(head) {
	case CompressionGzip:
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, CompressionGzip, fmt.Errorf("open gzip stream: %w", err)
		}
		return gz, CompressionGzip, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(buffered)
		if err != nil {
			return nil, CompressionZstd, fmt.Errorf("open zstd stream: %w", err)
		}
		return zr.IOReadCloser(), CompressionZstd, nil
	case CompressionLZ4:
		return lz4.NewReader(buffered), CompressionLZ4, nil
	}
	return buffered, CompressionNone, nil
}
