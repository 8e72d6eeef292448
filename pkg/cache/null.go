package cache

import (
	"context"
	"time"
)

// NullCache stores nothing: every Get misses and every write succeeds. It
// backs --no-cache and the "none" backend, and the CLI falls back to it
// when the configured file or Redis backend cannot be opened, so analyses
// always run.
type NullCache struct{}

// NewNullCache returns a NullCache.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)         { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
