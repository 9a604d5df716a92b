package twox

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash128_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "System module",
			in:   "System",
			want: "26aa394eea5630e07c48ae0c9558cef7",
		},
		{
			name: "Balances module",
			in:   "Balances",
			want: "c2261276cc9d1f8598ea4b6a74b15c2f",
		},
		{
			name: "Staking module",
			in:   "Staking",
			want: "5f3e4907f716ac89b6347d15ececedca",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hex.EncodeToString(Hash128([]byte(tt.in)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHash128_Length(t *testing.T) {
	assert.Len(t, Hash128(nil), PrefixLength)
	assert.Len(t, Hash128([]byte("anything")), PrefixLength)
}

func TestModulePrefix_Deterministic(t *testing.T) {
	a := ModulePrefix("ElectionsPhragmen")
	b := ModulePrefix("ElectionsPhragmen")
	assert.Equal(t, a, b)

	c := ModulePrefix("Elections")
	assert.NotEqual(t, a, c)
}
