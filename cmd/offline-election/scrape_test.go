package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToufeeqP/offline-election/internal/models"
)

func TestParseInjectPairs(t *testing.T) {
	pairs, err := parseInjectPairs([]string{"0x01=0x02", "0xdead=0x"})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, []byte{0x01}, []byte(pairs[0].Key))
	assert.Equal(t, []byte{0x02}, []byte(pairs[0].Value))
	assert.Equal(t, []byte{0xde, 0xad}, []byte(pairs[1].Key))
	assert.Empty(t, []byte(pairs[1].Value))
}

func TestParseInjectPairs_Invalid(t *testing.T) {
	tests := []string{"0x01", "0xzz=0x01", "0x01=0xzz"}
	for _, entry := range tests {
		_, err := parseInjectPairs([]string{entry})
		assert.Error(t, err, entry)
	}
}

func TestTotalIssuanceKey(t *testing.T) {
	// The well-known Balances TotalIssuance storage key.
	assert.Equal(t,
		"0xc2261276cc9d1f8598ea4b6a74b15c2f57c875e4cff74148e4628f264b974c80",
		models.HexStr(totalIssuanceKey()))
}

func TestDecodeBalance(t *testing.T) {
	assert.Equal(t, int64(0), decodeBalance(nil).Int64())
	assert.Equal(t, int64(256), decodeBalance([]byte{0x00, 0x01}).Int64())

	// A 16-byte little-endian value, as Balances stores it.
	raw := make([]byte, 16)
	raw[0] = 0x01
	raw[15] = 0x01
	want, _ := new(big.Int).SetString("1329227995784915872903807060280344577", 10)
	assert.Equal(t, want, decodeBalance(raw))
}

func TestMapSink_LastWriteWins(t *testing.T) {
	sink := newMapSink()
	sink.Insert([]byte{0x01}, []byte{0xaa})
	sink.Insert([]byte{0x01}, []byte{0xbb})
	sink.Insert([]byte{0x02}, []byte{0xcc})

	assert.Equal(t, 3, sink.inserted)
	assert.Len(t, sink.state, 2)
	assert.Equal(t, []byte{0xbb}, sink.state[string([]byte{0x01})])
}
