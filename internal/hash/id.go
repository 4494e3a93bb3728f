// Package hash computes the identifiers used to look up header names.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// IDBytes computes the same value as ID without converting to a string.
func IDBytes(name []byte) uint64 {
	return xxhash.Sum64(name)
}
