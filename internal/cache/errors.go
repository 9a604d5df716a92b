package cache

import "errors"

var (
	// ErrMiss marks a cache entry that is absent, unreadable or undecodable.
	// Always recoverable: the snapshot can be re-scraped from the network.
	ErrMiss = errors.New("cache: miss")
	// ErrWrite marks a failed cache write. Recoverable: the in-memory
	// snapshot that could not be persisted stays valid.
	ErrWrite = errors.New("cache: write failure")
)
