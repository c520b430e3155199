package models

import (
	"fmt"
	"math"
)

// Status is the 12-way categorical state of an indicator. Each status
// belongs to exactly one family: soil, pest, water, or market/trend.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusSafe     Status = "safe"
	StatusCaution  Status = "caution"
	StatusDanger   Status = "danger"
	StatusAbundant Status = "abundant"
	StatusModerate Status = "moderate"
	StatusScarce   Status = "scarce"
	StatusUp       Status = "up"
	StatusStable   Status = "stable"
	StatusDown     Status = "down"
)

var AllStatuses = []Status{
	StatusHealthy, StatusWarning, StatusCritical,
	StatusSafe, StatusCaution, StatusDanger,
	StatusAbundant, StatusModerate, StatusScarce,
	StatusUp, StatusStable, StatusDown,
}

// Family groups a status into its indicator family.
func (s Status) Family() string {
	switch s {
	case StatusHealthy, StatusWarning, StatusCritical:
		return "soil"
	case StatusSafe, StatusCaution, StatusDanger:
		return "pest"
	case StatusAbundant, StatusModerate, StatusScarce:
		return "water"
	case StatusUp, StatusStable, StatusDown:
		return "market"
	}
	return ""
}

// BadgeColor is the fill/text design-token pair the badge is rendered with.
type BadgeColor struct {
	Fill string `json:"fill"`
	Text string `json:"text"`
}

var statusBadgeColors = map[Status]BadgeColor{
	StatusHealthy:  {Fill: "soil-healthy", Text: "white"},
	StatusWarning:  {Fill: "soil-warning", Text: "foreground"},
	StatusCritical: {Fill: "soil-critical", Text: "white"},
	StatusSafe:     {Fill: "pest-safe", Text: "white"},
	StatusCaution:  {Fill: "pest-caution", Text: "foreground"},
	StatusDanger:   {Fill: "pest-danger", Text: "white"},
	StatusAbundant: {Fill: "water-abundant", Text: "white"},
	StatusModerate: {Fill: "water-moderate", Text: "white"},
	StatusScarce:   {Fill: "water-scarce", Text: "white"},
	StatusUp:       {Fill: "market-up", Text: "white"},
	StatusStable:   {Fill: "market-stable", Text: "white"},
	StatusDown:     {Fill: "market-down", Text: "white"},
}

// The badge table must cover every status; a gap is a programming error
// caught at startup, not at render time.
func init() {
	for _, s := range AllStatuses {
		if _, ok := statusBadgeColors[s]; !ok {
			panic(fmt.Sprintf("models: status %q missing from badge color table", s))
		}
	}
}

func (s Status) BadgeColor() BadgeColor {
	return statusBadgeColors[s]
}

// ProgressTier is the color tier of the benchmark progress bar.
type ProgressTier string

const (
	TierPrimary     ProgressTier = "primary"
	TierAccent      ProgressTier = "accent"
	TierDestructive ProgressTier = "destructive"
)

// ProgressTier buckets the 12 statuses three ways. Anything unrecognized
// falls to the favorable tier; that default is intentional.
func (s Status) ProgressTier() ProgressTier {
	switch s {
	case StatusHealthy, StatusSafe, StatusAbundant, StatusUp:
		return TierPrimary
	case StatusWarning, StatusCaution, StatusModerate, StatusStable:
		return TierAccent
	case StatusCritical, StatusDanger, StatusScarce, StatusDown:
		return TierDestructive
	default:
		return TierPrimary
	}
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

func (t Trend) Glyph() string {
	if t == TrendUp {
		return "↗"
	}
	if t == TrendDown {
		return "↘"
	}
	return "→"
}

// IndicatorCard is the view-model for one metric card. It is built fresh
// per render; the derived fields (badge color, tier, glyph, benchmark
// percent) are computed by BuildIndicatorCard.
type IndicatorCard struct {
	Title            string       `json:"title"`
	Icon             string       `json:"icon"`
	Value            float64      `json:"value"`
	Unit             string       `json:"unit"`
	Status           Status       `json:"status"`
	BadgeColor       BadgeColor   `json:"badge_color"`
	ProgressTier     ProgressTier `json:"progress_tier"`
	Description      string       `json:"description"`
	Trend            Trend        `json:"trend,omitempty"`
	TrendGlyph       string       `json:"trend_glyph,omitempty"`
	Benchmark        float64      `json:"benchmark,omitempty"`
	BenchmarkPercent *float64     `json:"benchmark_percent,omitempty"`
	Details          interface{}  `json:"details,omitempty"`
}

// BuildIndicatorCard computes the derived presentation fields. The trend
// glyph is emitted only when a trend was provided; the benchmark comparison
// only when the benchmark is positive. Details is an opaque slot the card
// has no knowledge of.
func BuildIndicatorCard(title, icon string, value float64, unit string, status Status, description string, trend Trend, benchmark float64, details interface{}) IndicatorCard {
	card := IndicatorCard{
		Title:        title,
		Icon:         icon,
		Value:        value,
		Unit:         unit,
		Status:       status,
		BadgeColor:   status.BadgeColor(),
		ProgressTier: status.ProgressTier(),
		Description:  description,
		Details:      details,
	}
	if trend != "" {
		card.Trend = trend
		card.TrendGlyph = trend.Glyph()
	}
	if benchmark > 0 {
		card.Benchmark = benchmark
		percent := BenchmarkPercent(value, benchmark)
		card.BenchmarkPercent = &percent
	}
	return card
}

// BenchmarkPercent computes the bounded comparison percentage, rounded to
// two decimal places.
func BenchmarkPercent(value, benchmark float64) float64 {
	percent := value / benchmark * 100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return math.Round(percent*100) / 100
}
