//go:build !unix

package source

import (
	"fmt"
	"os"
)

// MmapFile reads a file into memory on platforms without mmap.
// The cleanup function exists for parity with the unix version.
func MmapFile(filename string) ([]byte, func(), error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, func() {}, nil
}
