// Package cache defines the deterministic naming of snapshot cache entries
// and the error conditions shared by every store tier.
package cache

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ToufeeqP/offline-election/internal/models"
)

// Identity computes the cache name for a scrape configuration. It is a pure
// function of its inputs: the module filter is sorted before joining so that
// two configurations naming the same modules in different order share one
// cache entry.
func Identity(chain string, at models.Hash, modules []string) string {
	sorted := make([]string, len(modules))
	copy(sorted, modules)
	sort.Strings(sorted)
	return fmt.Sprintf("%s,%s,%s.bin", chain, at.Hex(), strings.Join(sorted, ","))
}
