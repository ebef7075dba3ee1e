// Package cache provides the shared key/value store used for cache-aside
// message generation: an in-memory store for single-process deployments and
// a SQLite-backed store when entries should survive restarts. Both evict
// expired entries lazily on read.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"
)

// Store is the cache port. Values are opaque bytes; callers serialize.
// All operations are idempotent except Set.
type Store interface {
	// Get returns the value for key, or ok=false on a miss or expiry.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Exists reports whether key holds an unexpired value.
	Exists(ctx context.Context, key string) (bool, error)
}

// GetOrSet reads key from the store and, on a miss, invokes factory and
// stores its result for ttl.
func GetOrSet(ctx context.Context, s Store, key string, ttl time.Duration, factory func(context.Context) ([]byte, error)) ([]byte, error) {
	value, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return value, nil
	}

	value, err = factory(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Set(ctx, key, value, ttl); err != nil {
		return nil, err
	}
	return value, nil
}

// MessageKey derives the deterministic cache key for a generation request:
// the identity fields joined with a separator, hashed, truncated to 12 hex
// characters and namespaced under "msg:".
func MessageKey(firstName, jobTitle, companyName, channel, sequenceStep string) string {
	joined := strings.Join([]string{firstName, jobTitle, companyName, channel, sequenceStep}, "|")
	sum := md5.Sum([]byte(joined))
	return "msg:" + hex.EncodeToString(sum[:])[:12]
}
