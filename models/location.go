package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// LocationRecord is the farm location chosen by the user. The region fields
// are populated only in manual-entry mode; Coordinates is set by manual
// coordinate entry or by geolocation detection, with UseCurrentLocation true
// only in the latter case. Submissions overwrite the whole record.
type LocationRecord struct {
	State              string       `json:"state"`
	District           string       `json:"district"`
	Village            string       `json:"village"`
	Coordinates        *Coordinates `json:"coordinates"`
	UseCurrentLocation bool         `json:"useCurrentLocation"`
}

// IsComplete reports whether the record carries enough information to be
// submitted: a full manual region, or coordinates, or a detected location.
func (r LocationRecord) IsComplete() bool {
	if r.State != "" && r.District != "" && r.Village != "" {
		return true
	}
	if r.Coordinates != nil && r.Coordinates.Latitude != "" && r.Coordinates.Longitude != "" {
		return true
	}
	return r.UseCurrentLocation
}

// DisplayString derives the dashboard's location line.
func (r LocationRecord) DisplayString() string {
	if r.UseCurrentLocation && r.Coordinates != nil {
		lat, latErr := strconv.ParseFloat(r.Coordinates.Latitude, 64)
		lng, lngErr := strconv.ParseFloat(r.Coordinates.Longitude, 64)
		if latErr == nil && lngErr == nil {
			return fmt.Sprintf("Current Location (%.2f, %.2f)", lat, lng)
		}
	}
	if r.State != "" && r.District != "" && r.Village != "" {
		return fmt.Sprintf("%s, %s, %s", r.Village, r.District, r.State)
	}
	return "Location not set"
}

// DecodeLocationRecord parses a stored record. Any malformed value is
// reported as absent so the dashboard degrades to "Location not set"
// instead of failing.
func DecodeLocationRecord(raw string) (LocationRecord, bool) {
	if raw == "" {
		return LocationRecord{}, false
	}
	var record LocationRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return LocationRecord{}, false
	}
	return record, true
}

// IndianStates is the fixed catalog for the manual region channel.
var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
	"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
	"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
}

func IsIndianState(name string) bool {
	for _, state := range IndianStates {
		if state == name {
			return true
		}
	}
	return false
}
