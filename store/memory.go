package store

import (
	"github.com/patrickmn/go-cache"
)

// Memory is the default store backend: per-session state in a go-cache
// instance with a TTL, so abandoned sessions age out on their own.
type Memory struct {
	c *cache.Cache
}

func NewMemory(c *cache.Cache) *Memory {
	return &Memory{c: c}
}

func (m *Memory) Get(key string) (string, bool, error) {
	value, found := m.c.Get(key)
	if !found {
		return "", false, nil
	}
	s, ok := value.(string)
	if !ok {
		// Foreign entry under our key; treat as absent.
		return "", false, nil
	}
	return s, true, nil
}

func (m *Memory) Set(key, value string) error {
	m.c.Set(key, value, cache.DefaultExpiration)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.c.Delete(key)
	return nil
}

func (m *Memory) Ping() error {
	return nil
}

func (m *Memory) Backend() string {
	return "memory"
}
