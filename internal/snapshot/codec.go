// Package snapshot implements the binary encoding of a scraped key-value
// sequence as stored in cache files: a little-endian u64 pair count followed
// by length-prefixed key and value bytes for each pair, in order.
package snapshot

import (
	"encoding/binary"
	"fmt"

	"github.com/ToufeeqP/offline-election/internal/models"
)

// Encode serializes pairs into the cache wire form. The output is a pure
// function of the pair sequence, including its order.
func Encode(pairs []models.KeyValuePair) []byte {
	size := 8
	for _, p := range pairs {
		size += 16 + len(p.Key) + len(p.Value)
	}

	out := make([]byte, 0, size)
	out = binary.LittleEndian.AppendUint64(out, uint64(len(pairs)))
	for _, p := range pairs {
		out = binary.LittleEndian.AppendUint64(out, uint64(len(p.Key)))
		out = append(out, p.Key...)
		out = binary.LittleEndian.AppendUint64(out, uint64(len(p.Value)))
		out = append(out, p.Value...)
	}
	return out
}

// Decode parses data produced by Encode. Any structural mismatch, including
// trailing garbage, is an error.
func Decode(data []byte) ([]models.KeyValuePair, error) {
	count, rest, err := readUint64(data)
	if err != nil {
		return nil, fmt.Errorf("reading pair count: %w", err)
	}

	// Guard the allocation against a corrupted count: every pair needs at
	// least its two length prefixes.
	if count > uint64(len(rest))/16 {
		return nil, fmt.Errorf("pair count %d exceeds payload size %d", count, len(rest))
	}

	pairs := make([]models.KeyValuePair, 0, count)
	for i := uint64(0); i < count; i++ {
		var key, value []byte
		if key, rest, err = readBytes(rest); err != nil {
			return nil, fmt.Errorf("reading key of pair %d: %w", i, err)
		}
		if value, rest, err = readBytes(rest); err != nil {
			return nil, fmt.Errorf("reading value of pair %d: %w", i, err)
		}
		pairs = append(pairs, models.KeyValuePair{Key: key, Value: value})
	}

	if len(rest) != 0 {
		return nil, fmt.Errorf("%d trailing bytes after %d pairs", len(rest), count)
	}
	return pairs, nil
}

func readUint64(data []byte) (uint64, []byte, error) {
	if len(data) < 8 {
		return 0, nil, fmt.Errorf("truncated input: need 8 bytes, have %d", len(data))
	}
	return binary.LittleEndian.Uint64(data), data[8:], nil
}

func readBytes(data []byte) ([]byte, []byte, error) {
	n, rest, err := readUint64(data)
	if err != nil {
		return nil, nil, err
	}
	if n > uint64(len(rest)) {
		return nil, nil, fmt.Errorf("truncated input: need %d bytes, have %d", n, len(rest))
	}
	out := make([]byte, n)
	copy(out, rest[:n])
	return out, rest[n:], nil
}
