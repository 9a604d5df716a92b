package models

import "fmt"

// CacheMode controls how the builder uses the on-disk snapshot cache.
type CacheMode string

const (
	// CacheNone always scrapes the remote node and performs no disk I/O.
	CacheNone CacheMode = "none"
	// CacheUseElseCreate uses an existing cache if one is present, else
	// scrapes and creates it.
	CacheUseElseCreate CacheMode = "use-else-create"
	// CacheForceUpdate always scrapes and overwrites any existing cache.
	CacheForceUpdate CacheMode = "force-update"
)

// ParseCacheMode validates a cache mode string.
func ParseCacheMode(s string) (CacheMode, error) {
	switch CacheMode(s) {
	case CacheNone, CacheUseElseCreate, CacheForceUpdate:
		return CacheMode(s), nil
	default:
		return "", fmt.Errorf("invalid cache mode %q: must be one of 'none', 'use-else-create', 'force-update'", s)
	}
}
