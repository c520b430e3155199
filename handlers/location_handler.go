package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Abhaysingla637/krishi-setu-vigyan/location"
	"github.com/Abhaysingla637/krishi-setu-vigyan/models"
	"github.com/Abhaysingla637/krishi-setu-vigyan/utils"
)

type StateCatalogResponse struct {
	States []string `json:"states"`
}

type LocationSubmitResponse struct {
	Location models.LocationRecord `json:"location"`
	Next     string                `json:"next"`
}

type DetectLocationResponse struct {
	Status       string                 `json:"status"`
	Location     *models.LocationRecord `json:"location,omitempty"`
	NearestState string                 `json:"nearest_state,omitempty"`
	AccuracyM    float64                `json:"accuracy_m,omitempty"`
}

// GetStates returns the fixed state catalog for the manual region channel.
func GetStates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600") // Cache for 1 hour
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(StateCatalogResponse{States: models.IndianStates}); err != nil {
		log.Printf("GetStates: Error encoding response: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// SubmitLocation persists the working location record for the session.
// The record must satisfy the completeness rule: a full manual region, or
// coordinates, or a detected location. Each submission overwrites the
// previous record whole.
func SubmitLocation(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var record models.LocationRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Printf("SubmitLocation: Error decoding request body: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if record.State != "" && !models.IsIndianState(record.State) {
		log.Printf("SubmitLocation: Unknown state %q", record.State)
		http.Error(w, "Unknown state", http.StatusBadRequest)
		return
	}

	// Manual coordinates are validated at the boundary; out-of-range or
	// non-numeric values are rejected, not clamped.
	if record.Coordinates != nil {
		if _, err := utils.ParseLatitude(record.Coordinates.Latitude); err != nil {
			log.Printf("SubmitLocation: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if _, err := utils.ParseLongitude(record.Coordinates.Longitude); err != nil {
			log.Printf("SubmitLocation: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if !record.IsComplete() {
		log.Printf("SubmitLocation: Incomplete record for session %s", sid)
		http.Error(w, "Location details incomplete", http.StatusBadRequest)
		return
	}

	serialized, err := json.Marshal(record)
	if err != nil {
		log.Printf("SubmitLocation: Error serializing record: %v", err)
		http.Error(w, "Failed to save location", http.StatusInternalServerError)
		return
	}

	if err := Store.Set(locationKey(sid), string(serialized)); err != nil {
		log.Printf("SubmitLocation: Error persisting record: %v", err)
		http.Error(w, "Failed to save location", http.StatusInternalServerError)
		return
	}

	log.Printf("SubmitLocation: Session %s saved location %s", sid, record.DisplayString())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LocationSubmitResponse{
		Location: record,
		Next:     "/dashboard",
	})
}

// DetectLocation resolves the current position through the configured
// geolocation provider. A successful fetch yields a working record with
// coordinates only: the region fields are cleared, last writer wins. On
// failure the typed status is reported and logged; the session's stored
// state is left untouched either way — persisting is the client's next
// submit.
func DetectLocation(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	w.Header().Set("Content-Type", "application/json")

	if GeoProvider == nil {
		log.Printf("DetectLocation: No geolocation provider configured")
		json.NewEncoder(w).Encode(DetectLocationResponse{Status: "unsupported"})
		return
	}

	pos, err := GeoProvider.CurrentPosition(r.Context())
	if err != nil {
		log.Printf("DetectLocation: Error getting position for session %s: %v", sid, err)
		json.NewEncoder(w).Encode(DetectLocationResponse{Status: location.FailureStatus(err)})
		return
	}

	record := models.LocationRecord{
		Coordinates: &models.Coordinates{
			Latitude:  utils.FormatCoordinate(pos.Latitude),
			Longitude: utils.FormatCoordinate(pos.Longitude),
		},
		UseCurrentLocation: true,
	}

	nearest := utils.NearestState(pos.Latitude, pos.Longitude)
	log.Printf("DetectLocation: Session %s detected (%s, %s), nearest state %s",
		sid, record.Coordinates.Latitude, record.Coordinates.Longitude, nearest)

	json.NewEncoder(w).Encode(DetectLocationResponse{
		Status:       "success",
		Location:     &record,
		NearestState: nearest,
		AccuracyM:    pos.Accuracy,
	})
}
