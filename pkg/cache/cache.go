// Package cache stores derived layouts so repeated requests skip recomputation.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entry files under a local directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP service
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// Keys come from a [Keyer] so that callers never build key strings by hand.
// [ScopedKeyer] prefixes every key for multi-tenant isolation.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Entry lifetimes.
const (
	// TTLResolve covers breakpoint resolutions. Inputs are content-hashed,
	// so entries never go stale; the TTL only bounds disk and memory use.
	TTLResolve = 7 * 24 * time.Hour

	// TTLLayout covers compacted layouts.
	TTLLayout = 24 * time.Hour
)

// Keyer builds cache keys.
type Keyer interface {
	// ResolveKey keys the layout derived for one breakpoint from a set of
	// inputs, identified by inputHash.
	ResolveKey(inputHash string, opts ResolveKeyOpts) string

	// LayoutKey keys the result of a whole-layout operation.
	LayoutKey(layoutHash string, opts LayoutKeyOpts) string
}

// ResolveKeyOpts are the resolution parameters that change the result.
type ResolveKeyOpts struct {
	Breakpoint      string `json:"breakpoint"`
	Cols            int    `json:"cols"`
	VerticalCompact bool   `json:"vertical_compact"`
}

// LayoutKeyOpts are the operation parameters that change the result.
type LayoutKeyOpts struct {
	Op              string `json:"op"`
	Cols            int    `json:"cols,omitempty"`
	VerticalCompact bool   `json:"vertical_compact"`
}

// DefaultKeyer hashes key parts into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ResolveKey returns "resolve:<sha256>".
func (k *DefaultKeyer) ResolveKey(inputHash string, opts ResolveKeyOpts) string {
	return hashKey("resolve", inputHash, opts)
}

// LayoutKey returns "layout:<sha256>".
func (k *DefaultKeyer) LayoutKey(layoutHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", layoutHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
