// Package twox implements the xxHash-based "twox" hashing used to derive
// module storage prefixes: the 128-bit variant is the concatenation of two
// seeded 64-bit xxHash digests in little-endian form.
package twox

import (
	"encoding/binary"

	"github.com/pierrec/xxHash/xxHash64"
)

// PrefixLength is the byte length of a module storage prefix.
const PrefixLength = 16

// Hash128 returns the 16-byte twox128 digest of data.
func Hash128(data []byte) []byte {
	out := make([]byte, PrefixLength)
	binary.LittleEndian.PutUint64(out[0:8], xxHash64.Checksum(data, 0))
	binary.LittleEndian.PutUint64(out[8:16], xxHash64.Checksum(data, 1))
	return out
}

// ModulePrefix returns the storage prefix owned by the named module.
func ModulePrefix(module string) []byte {
	return Hash128([]byte(module))
}
