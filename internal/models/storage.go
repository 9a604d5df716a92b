package models

import "encoding/hex"

// StorageKey is a raw storage key as returned by the node.
type StorageKey []byte

// StorageValue is a raw storage value. Value can be empty.
type StorageValue []byte

// KeyValuePair is one (key, value) entry of a state snapshot.
type KeyValuePair struct {
	Key   StorageKey
	Value StorageValue
}

// HexStr renders a byte slice as 0x-prefixed lowercase hex.
func HexStr(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// ParseHexBytes decodes a hex string, with or without a 0x prefix.
func ParseHexBytes(s string) ([]byte, error) {
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	return hex.DecodeString(s)
}
