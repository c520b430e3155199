package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Abhaysingla637/krishi-setu-vigyan/config"
	"github.com/Abhaysingla637/krishi-setu-vigyan/data"
	"github.com/Abhaysingla637/krishi-setu-vigyan/models"
)

// Dashboard is the loaded sample dataset, set by main at startup.
var Dashboard data.Dataset

const dashboardCardsCacheKey = "dashboard-cards"

type RefreshResponse struct {
	LastUpdated time.Time `json:"last_updated"`
}

// GetDashboard renders the dashboard payload: the location line derived
// from the stored record, the indicator cards from the sample dataset,
// the weather block, and the session's last-updated timestamp.
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	// The dashboard renders with or without a stored record; a missing or
	// corrupt record degrades to the "not set" placeholder.
	record := readLocationRecord(sid)

	lastUpdated := readLastUpdated(sid)

	response := models.DashboardResponse{
		Location:     record.DisplayString(),
		LastUpdated:  lastUpdated,
		SystemOnline: true,
		Cards:        dashboardCards(),
		Weather:      Dashboard.Weather,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("GetDashboard: Error encoding response: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// RefreshDashboard updates the session's last-updated timestamp and nothing
// else. The indicator data is static; this is the seam where a real data
// refetch plugs in.
func RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	now := time.Now().UTC()
	if err := Store.Set(updatedKey(sid), now.Format(time.RFC3339Nano)); err != nil {
		log.Printf("RefreshDashboard: Error persisting timestamp: %v", err)
		http.Error(w, "Failed to refresh", http.StatusInternalServerError)
		return
	}

	log.Printf("RefreshDashboard: Session %s refreshed at %s", sid, now.Format(time.RFC3339))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RefreshResponse{LastUpdated: now})
}

// readLocationRecord loads the stored record for the session, treating
// read failures and malformed values as "no location set".
func readLocationRecord(sid string) models.LocationRecord {
	raw, found, err := Store.Get(locationKey(sid))
	if err != nil {
		log.Printf("readLocationRecord: Error reading record for session %s: %v", sid, err)
		return models.LocationRecord{}
	}
	if !found {
		return models.LocationRecord{}
	}
	record, ok := models.DecodeLocationRecord(raw)
	if !ok {
		log.Printf("readLocationRecord: Malformed record for session %s, treating as absent", sid)
		return models.LocationRecord{}
	}
	return record
}

// readLastUpdated returns the session's last-updated timestamp,
// initializing it to now on the first dashboard view.
func readLastUpdated(sid string) time.Time {
	raw, found, err := Store.Get(updatedKey(sid))
	if err == nil && found {
		if ts, parseErr := time.Parse(time.RFC3339Nano, raw); parseErr == nil {
			return ts
		}
		log.Printf("readLastUpdated: Malformed timestamp for session %s, resetting", sid)
	}
	now := time.Now().UTC()
	if setErr := Store.Set(updatedKey(sid), now.Format(time.RFC3339Nano)); setErr != nil {
		log.Printf("readLastUpdated: Error persisting timestamp: %v", setErr)
	}
	return now
}

// dashboardCards returns the built card view-models, cached since the
// underlying dataset is static.
func dashboardCards() []models.IndicatorCard {
	if config.CatalogCache != nil {
		if cached, found := config.CatalogCache.Get(dashboardCardsCacheKey); found {
			if cards, ok := cached.([]models.IndicatorCard); ok {
				return cards
			}
		}
	}
	cards := Dashboard.BuildCards()
	if config.CatalogCache != nil {
		config.CatalogCache.Set(dashboardCardsCacheKey, cards, cache.DefaultExpiration)
	}
	return cards
}
