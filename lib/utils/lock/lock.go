package lock

import "sync"

var inflightMap sync.Map

// TryAcquire marks the key as in flight. It fails fast instead of waiting:
// a second submission for the same key must be rejected, not queued.
func TryAcquire(key string) bool {
	_, loaded := inflightMap.LoadOrStore(key, true)
	return !loaded
}

func Release(key string) {
	inflightMap.Delete(key)
}
