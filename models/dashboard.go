package models

import "time"

// Weather is the non-card weather summary block on the dashboard.
type Weather struct {
	TemperatureC float64 `json:"temperature_c"`
	WindSpeedKmh float64 `json:"wind_speed_kmh"`
	Humidity     int     `json:"humidity"`
	Description  string  `json:"description"`
}

type DashboardResponse struct {
	Location     string          `json:"location"`
	LastUpdated  time.Time       `json:"last_updated"`
	SystemOnline bool            `json:"system_online"`
	Cards        []IndicatorCard `json:"cards"`
	Weather      Weather         `json:"weather"`
}
