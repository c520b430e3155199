package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Abhaysingla637/krishi-setu-vigyan/config"
	"github.com/Abhaysingla637/krishi-setu-vigyan/data"
	"github.com/Abhaysingla637/krishi-setu-vigyan/handlers"
	"github.com/Abhaysingla637/krishi-setu-vigyan/location"
	"github.com/Abhaysingla637/krishi-setu-vigyan/store"
)

const testSession = "test-session"

// stubProvider is a canned geolocation provider for handler tests.
type stubProvider struct {
	pos location.Position
	err error
}

func (s *stubProvider) CurrentPosition(_ context.Context) (location.Position, error) {
	if s.err != nil {
		return location.Position{}, s.err
	}
	return s.pos, nil
}

// setup wires the handlers to fresh in-memory backends.
func setup(t *testing.T) {
	t.Helper()

	config.InitCache()
	handlers.Store = store.NewMemory(config.SessionCache)
	handlers.GeoProvider = nil

	dataset, err := data.Load()
	require.NoError(t, err)
	handlers.Dashboard = dataset
}

func doRequest(t *testing.T, handler http.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", testSession)

	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func languageKey() string {
	return config.CacheKey("krishisetu-language", testSession)
}

func locationKey() string {
	return config.CacheKey("krishisetu-location", testSession)
}
