// Package forecast assembles and caches the complete fishing forecast.
package forecast

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/saltline/surfcast/internal/conditions"
	"github.com/saltline/surfcast/internal/scoring"
	"github.com/saltline/surfcast/internal/tackle"
)

// ErrNoForecast is returned when no forecast exists and none can be
// generated.
var ErrNoForecast = eris.New("forecast: no forecast available")

// Store persists the latest forecast. Implementations live in
// internal/store.
type Store interface {
	// Get returns the stored forecast, or ErrNoForecast when empty.
	Get() (*Forecast, error)
	Put(*Forecast) error
}

// LocationInfo identifies the spot a forecast was generated for.
type LocationInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// ConditionsReport is the display-ready conditions block.
type ConditionsReport struct {
	Wind          string             `json:"wind"`
	Waves         string             `json:"waves"`
	Verdict       conditions.Verdict `json:"verdict"`
	WaterTempF    float64            `json:"water_temp_f"`
	WaterTempLive bool               `json:"water_temp_live"`
	SunriseSunset string             `json:"sunrise_sunset"`
	MoonPhase     string             `json:"moon_phase"`
	Illumination  float64            `json:"moon_illumination"`
	Solunar       string             `json:"solunar_rating"`
}

// Forecast is the full generated product served by the API.
type Forecast struct {
	GeneratedAt time.Time                   `json:"generated_at"`
	Location    LocationInfo                `json:"location"`
	Conditions  ConditionsReport            `json:"conditions"`
	Species     []scoring.RankedSpecies     `json:"species"`
	Rigs        []tackle.RigRecommendation  `json:"rig_recommendations"`
	Baits       []tackle.BaitRecommendation `json:"bait_rankings"`

	// ServedFromCache is set when a stale forecast is served because
	// regeneration failed. Never persisted as true.
	ServedFromCache bool `json:"served_from_cache,omitempty"`
}

// Age returns how old the forecast is at the given instant.
func (f *Forecast) Age(now time.Time) time.Duration {
	return now.Sub(f.GeneratedAt)
}

// formatWind renders "SW 10-15 kt".
func formatWind(dir string, r conditions.Range) string {
	if dir == "" {
		return fmt.Sprintf("%s kt", r.String())
	}
	return fmt.Sprintf("%s %s kt", dir, r.String())
}

func formatWaves(r conditions.Range) string {
	return fmt.Sprintf("%s ft", r.String())
}
