package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Abhaysingla637/krishi-setu-vigyan/config"
	"github.com/Abhaysingla637/krishi-setu-vigyan/location"
	"github.com/Abhaysingla637/krishi-setu-vigyan/store"
)

// Wiring set by main at startup. Tests swap these for in-memory fakes.
var (
	Store       store.Store
	GeoProvider location.Provider
)

const (
	SessionCookieName = "krishisetu-session"
	sessionHeaderName = "X-Session-Id"
	sessionCookieAge  = 30 * 24 * time.Hour

	// Storage key prefixes; the names come straight from the web client's
	// localStorage keys.
	languageKeyPrefix = "krishisetu-language"
	locationKeyPrefix = "krishisetu-location"
	updatedKeyPrefix  = "krishisetu-updated"
)

// sessionID resolves the caller's session: the session cookie, the
// X-Session-Id header, or a freshly minted ID set on the response.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if sid := r.Header.Get(sessionHeaderName); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(sessionCookieAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

func languageKey(sid string) string {
	return config.CacheKey(languageKeyPrefix, sid)
}

func locationKey(sid string) string {
	return config.CacheKey(locationKeyPrefix, sid)
}

func updatedKey(sid string) string {
	return config.CacheKey(updatedKeyPrefix, sid)
}
