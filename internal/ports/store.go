package ports

// RecordStore persists one whole JSON document per key. Every Put replaces
// the previous value in full. Get reports false when no usable value exists
// for the key (missing or unparsable), leaving out untouched so the
// caller's fallback survives.
type RecordStore interface {
	Put(key string, value any) error
	Get(key string, out any) bool
}
