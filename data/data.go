package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Abhaysingla637/krishi-setu-vigyan/models"
)

//go:embed dashboard.yaml
var dashboardYAML []byte

type weatherSpec struct {
	TemperatureC float64 `yaml:"temperature_c"`
	WindSpeedKmh float64 `yaml:"wind_speed_kmh"`
	Humidity     int     `yaml:"humidity"`
	Description  string  `yaml:"description"`
}

type cardSpec struct {
	Title       string                 `yaml:"title"`
	Icon        string                 `yaml:"icon"`
	Value       float64                `yaml:"value"`
	Unit        string                 `yaml:"unit"`
	Status      string                 `yaml:"status"`
	Description string                 `yaml:"description"`
	Trend       string                 `yaml:"trend"`
	Benchmark   float64                `yaml:"benchmark"`
	Details     map[string]interface{} `yaml:"details"`
}

// Dataset is the embedded sample data behind the dashboard.
type Dataset struct {
	Weather models.Weather
	cards   []cardSpec
}

// Load parses and validates the embedded dataset. Unknown statuses or
// trends are configuration errors and fail startup.
func Load() (Dataset, error) {
	var raw struct {
		Weather weatherSpec `yaml:"weather"`
		Cards   []cardSpec  `yaml:"cards"`
	}
	if err := yaml.Unmarshal(dashboardYAML, &raw); err != nil {
		return Dataset{}, fmt.Errorf("error parsing dashboard dataset: %v", err)
	}
	if len(raw.Cards) == 0 {
		return Dataset{}, fmt.Errorf("dashboard dataset has no cards")
	}
	for _, c := range raw.Cards {
		if !validStatus(c.Status) {
			return Dataset{}, fmt.Errorf("card %q has unknown status %q", c.Title, c.Status)
		}
		if c.Trend != "" && !validTrend(c.Trend) {
			return Dataset{}, fmt.Errorf("card %q has unknown trend %q", c.Title, c.Trend)
		}
	}
	return Dataset{
		Weather: models.Weather{
			TemperatureC: raw.Weather.TemperatureC,
			WindSpeedKmh: raw.Weather.WindSpeedKmh,
			Humidity:     raw.Weather.Humidity,
			Description:  raw.Weather.Description,
		},
		cards: raw.Cards,
	}, nil
}

// BuildCards constructs the indicator card view-models from the dataset.
func (d Dataset) BuildCards() []models.IndicatorCard {
	cards := make([]models.IndicatorCard, 0, len(d.cards))
	for _, c := range d.cards {
		cards = append(cards, models.BuildIndicatorCard(
			c.Title, c.Icon, c.Value, c.Unit,
			models.Status(c.Status), c.Description,
			models.Trend(c.Trend), c.Benchmark, c.Details,
		))
	}
	return cards
}

func validStatus(s string) bool {
	for _, known := range models.AllStatuses {
		if string(known) == s {
			return true
		}
	}
	return false
}

func validTrend(t string) bool {
	return t == string(models.TrendUp) || t == string(models.TrendDown) || t == string(models.TrendStable)
}
