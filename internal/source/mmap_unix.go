//go:build unix

package source

import (
	"fmt"
	"io"
	"os"
	"syscall"
)

// MmapFile memory-maps a file read-only.
// Returns the mapped bytes and a cleanup function that unmaps the file.
//
// The tokenizer never writes to its input, so descriptors can point straight
// into the mapping. Do not use the data or any descriptor after cleanup().
func MmapFile(filename string) ([]byte, func(), error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	size := stat.Size()
	if size == 0 || !stat.Mode().IsRegular() {
		// Pipes and devices cannot be mapped
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read file: %w", err)
		}
		return data, func() {}, nil
	}

	data, err := syscall.Mmap(
		int(f.Fd()),
		0,
		int(size),
		syscall.PROT_READ,
		syscall.MAP_SHARED,
	)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to mmap file: %w", err)
	}

	cleanup := func() {
		_ = syscall.Munmap(data)
		f.Close()
	}

	return data, cleanup, nil
}
