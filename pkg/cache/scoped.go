package cache

// ScopedKeyer wraps a Keyer with a prefix so that several tenants can share
// one Redis instance without seeing each other's entries.
//
//	tenant := NewScopedKeyer(NewDefaultKeyer(), "tenant:acme:")
//	key := tenant.ResolveKey(hash, ResolveKeyOpts{Breakpoint: "md", Cols: 10})
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer defaults to DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ResolveKey generates a prefixed key for breakpoint resolutions.
func (k *ScopedKeyer) ResolveKey(inputHash string, opts ResolveKeyOpts) string {
	return k.prefix + k.inner.ResolveKey(inputHash, opts)
}

// LayoutKey generates a prefixed key for layout operations.
func (k *ScopedKeyer) LayoutKey(layoutHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(layoutHash, opts)
}
