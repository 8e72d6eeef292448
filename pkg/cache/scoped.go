package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// The API server uses it to keep its entries apart from CLI runs that share
// the same Redis instance.
//
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ReportKey generates a prefixed key for analysis report caching.
func (k *ScopedKeyer) ReportKey(graphHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.ReportKey(graphHash, opts)
}

// ArtifactKey generates a prefixed key for rendered diagram caching.
func (k *ScopedKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, opts)
}
