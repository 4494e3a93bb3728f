// Package source loads a whole CSV input into one buffer for tokenizing.
//
// Plain files are memory-mapped where the platform allows it. Compressed
// files are recognized by extension and decoded into memory:
//
//	.gz   gzip
//	.zst  zstd
//	.lz4  lz4 frame
//	.s2   s2 stream (snappy framed streams decode too)
//
// The name "-" reads standard input.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdin is the name that selects standard input.
const Stdin = "-"

// Compression identifies how an input is encoded.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLZ4
	CompressionS2
)

// String returns the extension-style name of the compression.
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
	case CompressionS2:
		return "s2"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// Detect picks the compression from the file extension.
func Detect(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	case ".s2", ".sz":
		return CompressionS2
	default:
		return CompressionNone
	}
}

// Load returns the decoded contents of name and a release function that must
// be called once the buffer (and every descriptor pointing into it) is no
// longer used.
func Load(name string) ([]byte, func(), error) {
	if name == Stdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, func() {}, nil
	}

	comp := Detect(name)
	if comp == CompressionNone {
		return MmapFile(name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := Decode(f, comp)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return data, func() {}, nil
}

// Decode reads r to the end, decoding it with comp.
func Decode(r io.Reader, comp Compression) ([]byte, error) {
	switch comp {
	case CompressionNone:
		return io.ReadAll(r)

	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)

	case CompressionZstd:
		dec, err := zstd.NewReader(r,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		return io.ReadAll(dec)

	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(r))

	case CompressionS2:
		return io.ReadAll(s2.NewReader(r))

	default:
		return nil, fmt.Errorf("unsupported compression: %s", comp)
	}
}
