package testutil

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCacheDown = errors.New("cache unavailable")

// MemoryCache is an in-process stand-in for the redis cache. Failures can be
// switched on per operation to exercise the best-effort paths.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration

	FailGet    bool
	FailSet    bool
	FailDelete bool

	Gets    int
	Sets    int
	Deletes []string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Gets++
	if m.FailGet {
		return nil, false, ErrCacheDown
	}
	v, ok := m.entries[key]
	if !ok || len(v) == 0 {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSet {
		return ErrCacheDown
	}
	m.Sets++
	m.entries[key] = append([]byte(nil), value...)
	m.ttls[key] = ttl
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Deletes = append(m.Deletes, keys...)
	if m.FailDelete {
		return ErrCacheDown
	}
	for _, k := range keys {
		delete(m.entries, k)
		delete(m.ttls, k)
	}
	return nil
}

func (m *MemoryCache) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailGet {
		return ErrCacheDown
	}
	return nil
}

// Put writes a raw entry, bypassing failure injection.
func (m *MemoryCache) Put(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = append([]byte(nil), value...)
}

func (m *MemoryCache) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}

func (m *MemoryCache) Raw(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[key]
}

func (m *MemoryCache) TTL(key string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ttls[key]
}

// GetCalls is Gets read under the lock, for tests with concurrent readers.
func (m *MemoryCache) GetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Gets
}
