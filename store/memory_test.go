package store_test

import (
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"

	"github.com/Abhaysingla637/krishi-setu-vigyan/store"
)

func newMemory() *store.Memory {
	return store.NewMemory(cache.New(time.Hour, time.Hour))
}

func TestMemoryGetSet(t *testing.T) {
	m := newMemory()

	_, found, err := m.Get("missing")
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, m.Set("krishisetu-language:s1", "hi"))

	value, found, err := m.Get("krishisetu-language:s1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hi", value)
}

func TestMemoryOverwrite(t *testing.T) {
	m := newMemory()

	assert.NoError(t, m.Set("key", "first"))
	assert.NoError(t, m.Set("key", "second"))

	value, found, _ := m.Get("key")
	assert.True(t, found)
	assert.Equal(t, "second", value)
}

func TestMemoryDelete(t *testing.T) {
	m := newMemory()

	assert.NoError(t, m.Set("key", "value"))
	assert.NoError(t, m.Delete("key"))

	_, found, err := m.Get("key")
	assert.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is not an error.
	assert.NoError(t, m.Delete("key"))
}

func TestMemoryBackend(t *testing.T) {
	m := newMemory()
	assert.Equal(t, "memory", m.Backend())
	assert.NoError(t, m.Ping())
}
