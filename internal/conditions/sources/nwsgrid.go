package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/saltline/surfcast/internal/conditions"
	"github.com/sony/gobreaker"
)

// NWSGrid reads the standard NWS gridpoint forecast for the nearest
// land point. A land forecast has no wave data but fills the wind gap
// when the marine sources are down. Two calls: the points lookup
// resolves the gridpoint forecast URL, then the forecast itself.
type NWSGrid struct {
	name    string
	baseURL string
	lat     float64
	lng     float64
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewNWSGrid(client *http.Client, lat, lng float64) *NWSGrid {
	return &NWSGrid{
		name:    "nws-grid",
		baseURL: "https://api.weather.gov",
		lat:     lat,
		lng:     lng,
		client:  client,
		circuit: newBreaker("nws-grid"),
	}
}

func (s *NWSGrid) Name() string { return s.name }

// windSpeed fields read "10 mph" or "5 to 10 mph".
var mphRe = regexp.MustCompile(`(?i)(\d+)(?:\s*to\s*(\d+))?\s*mph`)

func (s *NWSGrid) Fetch(ctx context.Context) (conditions.Partial, error) {
	pointsURL := fmt.Sprintf("%s/points/%.4f,%.4f", s.baseURL, s.lat, s.lng)
	resp, err := doRequest(ctx, s.client, s.circuit, pointsURL)
	if err != nil {
		return conditions.Partial{}, err
	}

	var points struct {
		Properties struct {
			Forecast string `json:"forecast"`
		} `json:"properties"`
	}
	err = json.NewDecoder(resp.Body).Decode(&points)
	resp.Body.Close()
	if err != nil {
		return conditions.Partial{}, eris.Wrap(err, "nws-grid: decode points")
	}

	resp, err = doRequest(ctx, s.client, s.circuit, points.Properties.Forecast)
	if err != nil {
		return conditions.Partial{}, err
	}
	defer resp.Body.Close()

	var forecast struct {
		Properties struct {
			Periods []struct {
				WindSpeed     string `json:"windSpeed"`
				WindDirection string `json:"windDirection"`
			} `json:"periods"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return conditions.Partial{}, eris.Wrap(err, "nws-grid: decode forecast")
	}

	var p conditions.Partial
	var winds []conditions.Range

	for i, period := range forecast.Properties.Periods {
		if i == 3 {
			break
		}
		if m := mphRe.FindStringSubmatch(period.WindSpeed); m != nil {
			low, _ := strconv.ParseFloat(m[1], 64)
			high := low
			if m[2] != "" {
				high, _ = strconv.ParseFloat(m[2], 64)
			}
			winds = append(winds, conditions.Range{
				Low:  round1(low * mphToKnots),
				High: round1(high * mphToKnots),
			})
		}
		if p.WindDir == "" && period.WindDirection != "" {
			p.WindDir = period.WindDirection
		}
	}

	p.Wind = combineRanges(winds)
	return p, nil
}
