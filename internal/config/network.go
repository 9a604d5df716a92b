package config

import (
	"fmt"
	"math/big"
	"strings"
)

// Network carries the per-network display settings that call sites receive
// explicitly instead of reading process-wide state.
type Network struct {
	Name     string
	Token    string
	Decimals uint
}

var networks = map[string]Network{
	"kusama":    {Name: "kusama", Token: "KSM", Decimals: 12},
	"polkadot":  {Name: "polkadot", Token: "DOT", Decimals: 10},
	"substrate": {Name: "substrate", Token: "UNIT", Decimals: 12},
}

// ParseNetwork resolves a network name to its display settings.
func ParseNetwork(name string) (Network, error) {
	n, ok := networks[strings.ToLower(name)]
	if !ok {
		return Network{}, fmt.Errorf("unknown network %q: must be one of 'kusama', 'polkadot', 'substrate'", name)
	}
	return n, nil
}

// FormatAmount renders a raw balance in the network's token, keeping three
// fractional digits.
func (n Network) FormatAmount(raw *big.Int) string {
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Decimals)), nil)
	whole, frac := new(big.Int).QuoRem(raw, unit, new(big.Int))

	milli := new(big.Int).Div(frac.Mul(frac, big.NewInt(1000)), unit)
	return fmt.Sprintf("%s.%03d %s", whole.String(), milli.Int64(), n.Token)
}
