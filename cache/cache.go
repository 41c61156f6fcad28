package cache

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is a process-wide keyed cache with a TTL per entry. It is never
// invalidated by writes; expiry is the only eviction. Concurrent callers
// racing on the same key may both run the producer, which costs a
// recompute but never returns a wrong value.
type Store struct {
	entries cmap.ConcurrentMap[string, entry]

	// Now is swappable so tests can drive a deterministic clock.
	Now func() time.Time
}

func NewStore() *Store {
	return &Store{
		entries: cmap.New[entry](),
		Now:     time.Now,
	}
}

// GetOrCompute returns the cached value for key while it is fresh. On a
// miss or an expired entry it invokes producer, stores the result with an
// expiry of now+ttl and returns it. Producer errors are returned without
// poisoning the cache.
func (s *Store) GetOrCompute(key string, ttl time.Duration, producer func() (any, error)) (any, error) {
	if e, ok := s.entries.Get(key); ok && s.Now().Before(e.expiresAt) {
		return e.value, nil
	}
	value, err := producer()
	if err != nil {
		return nil, err
	}
	s.entries.Set(key, entry{value: value, expiresAt: s.Now().Add(ttl)})
	return value, nil
}

// Clear purges all entries. Used by tests and administrative paths.
func (s *Store) Clear() {
	s.entries.Clear()
}
