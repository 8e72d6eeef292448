// Package cache stores serialized analysis results keyed by graph content.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (API server deployments)
//   - [NullCache]: stores nothing (--no-cache, tests)
//
// # Keys
//
// Keys are produced by a [Keyer] from the hash of the canonical edge list
// and the options that affect the result, so two runs over the same network
// with the same prefix and driver share an entry. [ScopedKeyer] adds a
// namespace prefix when several tenants share one backend.
//
// # Errors
//
// Backends return errors for I/O failures but never for a miss: Get reports
// a miss through its bool result. Callers treat cache errors as non-fatal.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long analysis reports stay cached when no TTL is
// configured. Results are deterministic, so this only bounds disk usage.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ReportKeyOpts lists the analysis options that change a report.
type ReportKeyOpts struct {
	Prefix string `json:"prefix"`
	Driver string `json:"driver"`
}

// ArtifactKeyOpts lists the rendering options that change a diagram.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Highlight  string `json:"highlight"`
	MarkPrefix string `json:"mark_prefix"`
	Title      string `json:"title"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ReportKey returns the key for the analysis report of a graph.
	ReportKey(graphHash string, opts ReportKeyOpts) string

	// ArtifactKey returns the key for a rendered diagram of a graph.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unscoped keys of the form "<kind>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ReportKey generates a key for analysis report caching.
func (DefaultKeyer) ReportKey(graphHash string, opts ReportKeyOpts) string {
	return hashKey("report", graphHash, opts)
}

// ArtifactKey generates a key for rendered diagram caching.
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}
