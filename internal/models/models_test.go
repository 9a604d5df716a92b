package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHash_RoundTrip(t *testing.T) {
	const in = "0xf9a4ce984129569f63edc01b1c13374779f9384f1befd39931ffdcc83acf63a7"

	h, err := ParseHash(in)
	require.NoError(t, err)
	assert.Equal(t, in, h.Hex())

	// Bare hex is accepted too.
	bare, err := ParseHash(in[2:])
	require.NoError(t, err)
	assert.Equal(t, h, bare)
}

func TestParseHash_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "too short", in: "0x1234"},
		{name: "too long", in: "0x" + strings.Repeat("ab", 33)},
		{name: "not hex", in: "0xzz"},
		{name: "empty", in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHash(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestHexStr(t *testing.T) {
	assert.Equal(t, "0x", HexStr(nil))
	assert.Equal(t, "0x01ff", HexStr([]byte{0x01, 0xff}))
}

func TestParseHexBytes(t *testing.T) {
	got, err := ParseHexBytes("0xDEad")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, got)

	got, err = ParseHexBytes("dead")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, got)

	_, err = ParseHexBytes("0x0")
	assert.Error(t, err)
}

func TestParseCacheMode(t *testing.T) {
	for _, valid := range []string{"none", "use-else-create", "force-update"} {
		mode, err := ParseCacheMode(valid)
		require.NoError(t, err)
		assert.Equal(t, CacheMode(valid), mode)
	}

	_, err := ParseCacheMode("sometimes")
	assert.Error(t, err)
}
