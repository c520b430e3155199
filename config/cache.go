package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// SessionCache backs the in-memory session store. Entries hold the
	// serialized per-session state (language code, location record,
	// last-updated timestamp).
	SessionCache *cache.Cache

	// CatalogCache holds derived static payloads, e.g. the built
	// dashboard indicator cards.
	CatalogCache *cache.Cache
)

const (
	// Cache durations
	sessionCacheDuration = 24 * time.Hour
	catalogCacheDuration = 24 * time.Hour

	// Cleanup intervals
	sessionCleanupInterval = 48 * time.Hour
	catalogCleanupInterval = 48 * time.Hour
)

func InitCache() {
	SessionCache = cache.New(sessionCacheDuration, sessionCleanupInterval)
	CatalogCache = cache.New(catalogCacheDuration, catalogCleanupInterval)
}

func ClearAllCaches() {
	SessionCache.Flush()
	CatalogCache.Flush()
}

func CacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
