package hashes

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	fnvOffset32 = 0x811c9dc5
	fnvPrime32  = 0x01000193
)

// FNV1a returns the 32-bit FNV-1a hash of name after ASCII lowercasing, the
// function used for field, entry, type and hash-value names.
func FNV1a(name string) uint32 {
	h := uint32(fnvOffset32)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		h ^= uint32(c)
		h *= fnvPrime32
	}
	return h
}

// XXH64 returns the xxHash64 (seed 0) of the lowercased path, the function
// used for file references.
func XXH64(path string) uint64 {
	return xxhash.Sum64String(strings.ToLower(path))
}
