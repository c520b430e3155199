package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abhaysingla637/krishi-setu-vigyan/models"
)

func TestLocationRecordCompleteness(t *testing.T) {
	tests := []struct {
		name     string
		record   models.LocationRecord
		complete bool
	}{
		{
			name: "full manual region",
			record: models.LocationRecord{
				State: "Bihar", District: "Patna", Village: "X",
			},
			complete: true,
		},
		{
			name: "coordinates only",
			record: models.LocationRecord{
				Coordinates: &models.Coordinates{Latitude: "12.9", Longitude: "77.6"},
			},
			complete: true,
		},
		{
			name: "detected location",
			record: models.LocationRecord{
				UseCurrentLocation: true,
			},
			complete: true,
		},
		{
			name:     "empty record",
			record:   models.LocationRecord{},
			complete: false,
		},
		{
			name: "partial manual region",
			record: models.LocationRecord{
				State: "Bihar", District: "Patna",
			},
			complete: false,
		},
		{
			name: "coordinates missing longitude",
			record: models.LocationRecord{
				Coordinates: &models.Coordinates{Latitude: "12.9"},
			},
			complete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.complete, tt.record.IsComplete())
		})
	}
}

func TestDisplayString(t *testing.T) {
	detected := models.LocationRecord{
		Coordinates:        &models.Coordinates{Latitude: "28.6139", Longitude: "77.2090"},
		UseCurrentLocation: true,
	}
	assert.Equal(t, "Current Location (28.61, 77.21)", detected.DisplayString())

	manual := models.LocationRecord{
		State: "Bihar", District: "Patna", Village: "Danapur",
	}
	assert.Equal(t, "Danapur, Patna, Bihar", manual.DisplayString())

	assert.Equal(t, "Location not set", models.LocationRecord{}.DisplayString())

	// Detected flag with unparseable coordinates degrades rather than
	// rendering garbage.
	broken := models.LocationRecord{
		Coordinates:        &models.Coordinates{Latitude: "north-ish", Longitude: "77.2"},
		UseCurrentLocation: true,
	}
	assert.Equal(t, "Location not set", broken.DisplayString())
}

func TestDecodeLocationRecord(t *testing.T) {
	record, ok := models.DecodeLocationRecord(`{"state":"Bihar","district":"Patna","village":"Danapur","coordinates":null,"useCurrentLocation":false}`)
	assert.True(t, ok)
	assert.Equal(t, "Bihar", record.State)
	assert.Nil(t, record.Coordinates)

	_, ok = models.DecodeLocationRecord("")
	assert.False(t, ok)

	_, ok = models.DecodeLocationRecord("{not json")
	assert.False(t, ok)
}

func TestStateCatalog(t *testing.T) {
	assert.Len(t, models.IndianStates, 28)
	assert.True(t, models.IsIndianState("Bihar"))
	assert.True(t, models.IsIndianState("West Bengal"))
	assert.False(t, models.IsIndianState("Atlantis"))
	assert.False(t, models.IsIndianState(""))
}
