package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhaysingla637/krishi-setu-vigyan/handlers"
	"github.com/Abhaysingla637/krishi-setu-vigyan/models"
)

func storeLocation(t *testing.T, record models.LocationRecord) {
	t.Helper()
	serialized, err := json.Marshal(record)
	require.NoError(t, err)
	require.NoError(t, handlers.Store.Set(locationKey(), string(serialized)))
}

func getDashboard(t *testing.T) models.DashboardResponse {
	t.Helper()
	w := doRequest(t, handlers.GetDashboard, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.DashboardResponse
	decodeBody(t, w, &resp)
	return resp
}

func TestDashboardWithoutLocation(t *testing.T) {
	setup(t)

	resp := getDashboard(t)
	assert.Equal(t, "Location not set", resp.Location)
	assert.True(t, resp.SystemOnline)
	assert.Len(t, resp.Cards, 5)
	assert.Equal(t, 28.0, resp.Weather.TemperatureC)
	assert.False(t, resp.LastUpdated.IsZero())
}

func TestDashboardWithDetectedLocation(t *testing.T) {
	setup(t)
	storeLocation(t, models.LocationRecord{
		Coordinates:        &models.Coordinates{Latitude: "28.6139", Longitude: "77.2090"},
		UseCurrentLocation: true,
	})

	resp := getDashboard(t)
	assert.Equal(t, "Current Location (28.61, 77.21)", resp.Location)
}

func TestDashboardWithManualLocation(t *testing.T) {
	setup(t)
	storeLocation(t, models.LocationRecord{
		State: "Bihar", District: "Patna", Village: "Danapur",
	})

	resp := getDashboard(t)
	assert.Equal(t, "Danapur, Patna, Bihar", resp.Location)
}

func TestDashboardWithCorruptRecord(t *testing.T) {
	setup(t)
	require.NoError(t, handlers.Store.Set(locationKey(), "{definitely not json"))

	resp := getDashboard(t)
	assert.Equal(t, "Location not set", resp.Location)
}

func TestDashboardCards(t *testing.T) {
	setup(t)

	resp := getDashboard(t)
	require.Len(t, resp.Cards, 5)

	titles := make([]string, 0, len(resp.Cards))
	for _, card := range resp.Cards {
		titles = append(titles, card.Title)
	}
	assert.Equal(t, []string{
		"Soil Health Status",
		"Water Management",
		"Pest & Disease Control",
		"Market Intelligence",
		"AI Recommendations",
	}, titles)

	pest := resp.Cards[2]
	assert.Equal(t, models.StatusCaution, pest.Status)
	assert.Equal(t, models.BadgeColor{Fill: "pest-caution", Text: "foreground"}, pest.BadgeColor)
	assert.Equal(t, models.TierAccent, pest.ProgressTier)
	assert.Equal(t, 12.0, pest.Value)
}

func TestDashboardTimestampIsStablePerSession(t *testing.T) {
	setup(t)

	first := getDashboard(t)
	second := getDashboard(t)
	assert.True(t, first.LastUpdated.Equal(second.LastUpdated),
		"viewing the dashboard must not move the timestamp")
}

func TestRefreshUpdatesOnlyTimestamp(t *testing.T) {
	setup(t)

	before := getDashboard(t)
	time.Sleep(10 * time.Millisecond)

	w := doRequest(t, handlers.RefreshDashboard, http.MethodPost, "/api/v1/dashboard/refresh", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var refresh handlers.RefreshResponse
	decodeBody(t, w, &refresh)
	assert.True(t, refresh.LastUpdated.After(before.LastUpdated))

	after := getDashboard(t)
	assert.True(t, after.LastUpdated.Equal(refresh.LastUpdated))

	// Indicator values never change on refresh; the data is static.
	require.Len(t, after.Cards, len(before.Cards))
	for i := range before.Cards {
		assert.Equal(t, before.Cards[i].Value, after.Cards[i].Value)
		assert.Equal(t, before.Cards[i].Status, after.Cards[i].Status)
	}
	assert.Equal(t, before.Location, after.Location)
}

func TestGetSessionReadback(t *testing.T) {
	setup(t)

	require.NoError(t, handlers.Store.Set(languageKey(), "mr"))
	storeLocation(t, models.LocationRecord{
		State: "Maharashtra", District: "Pune", Village: "Wagholi",
	})

	w := doRequest(t, handlers.GetSession, http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.SessionStateResponse
	decodeBody(t, w, &resp)
	require.NotNil(t, resp.Language)
	assert.Equal(t, "Marathi", resp.Language.NameEng)
	require.NotNil(t, resp.Location)
	assert.Equal(t, "Pune", resp.Location.District)
}

func TestGetSessionIgnoresUnknownStoredLanguage(t *testing.T) {
	setup(t)

	require.NoError(t, handlers.Store.Set(languageKey(), "zz"))

	w := doRequest(t, handlers.GetSession, http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.SessionStateResponse
	decodeBody(t, w, &resp)
	assert.Nil(t, resp.Language)
	assert.Nil(t, resp.Location)
}
