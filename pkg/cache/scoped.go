package cache

// ScopedKeyer prefixes every key from an inner Keyer, so several servers can
// share one Redis database without colliding:
//
//	keyer := cache.NewScopedKeyer(nil, "graphcanvas:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// OperationKey implements Keyer.
func (k *ScopedKeyer) OperationKey(set, name string, args []byte, inputHash string) string {
	return k.prefix + k.inner.OperationKey(set, name, args, inputHash)
}
