package cache

// ScopedKeyer wraps a Keyer with a prefix so that callers sharing one cache
// directory keep separate namespaces.
//
// The CLI scopes keys by build version, so an upgrade never serves frames
// produced by an older presenter:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
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

// FrameKey generates a prefixed key for frame caching.
func (k *ScopedKeyer) FrameKey(docHash string, opts FrameKeyOpts) string {
	return k.prefix + k.inner.FrameKey(docHash, opts)
}
