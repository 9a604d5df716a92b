package models

import (
	"encoding/hex"
	"fmt"
)

// HashLength is the byte length of a block hash.
const HashLength = 32

// Hash is a 32-byte block hash pinning one version of remote state.
type Hash [HashLength]byte

// ParseHash decodes a 0x-prefixed (or bare) hex string into a Hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	raw, err := ParseHexBytes(s)
	if err != nil {
		return h, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	if len(raw) != HashLength {
		return h, fmt.Errorf("invalid hash %q: expected %d bytes, got %d", s, HashLength, len(raw))
	}
	copy(h[:], raw)
	return h, nil
}

// Hex returns the 0x-prefixed hex form of the hash.
func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) String() string {
	return h.Hex()
}
