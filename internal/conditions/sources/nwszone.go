package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/saltline/surfcast/internal/conditions"
	"github.com/sony/gobreaker"
)

// NWSZone reads the NWS coastal marine zone text forecast. Wind and sea
// ranges are regex-extracted from the detailedForecast prose of the
// first three periods (roughly the next 24 hours).
type NWSZone struct {
	name    string
	url     string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewNWSZone(client *http.Client, zone string) *NWSZone {
	return &NWSZone{
		name:    "nws-zone",
		url:     fmt.Sprintf("https://api.weather.gov/zones/forecast/%s/forecast", zone),
		client:  client,
		circuit: newBreaker("nws-zone"),
	}
}

func (s *NWSZone) Name() string { return s.name }

func (s *NWSZone) Fetch(ctx context.Context) (conditions.Partial, error) {
	resp, err := doRequest(ctx, s.client, s.circuit, s.url)
	if err != nil {
		return conditions.Partial{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Properties struct {
			Periods []struct {
				DetailedForecast string `json:"detailedForecast"`
			} `json:"periods"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return conditions.Partial{}, eris.Wrap(err, "nws-zone: decode forecast")
	}

	texts := make([]string, 0, 3)
	for i, p := range payload.Properties.Periods {
		if i == 3 {
			break
		}
		texts = append(texts, p.DetailedForecast)
	}
	return parseMarineText(texts), nil
}

// Matches both abbreviated ("SW wind") and spelled-out ("Southwest
// wind") direction forms the NWS returns.
var (
	dirRe = regexp.MustCompile(`(?i)(north(?:east|west)?|south(?:east|west)?|east|west|NE|NW|SE|SW|N|E|S|W|VARIABLE)\s+wind`)

	// "10 to 15 kt", "around 10 knots", ...
	windRe = regexp.MustCompile(`(?i)(\d+)(?:\s*to\s*(\d+))?\s*(?:kt|knots?)`)

	// "seas 2 to 3 ft", "waves around 2 feet", ...
	seaRe = regexp.MustCompile(`(?i)(?:seas?|waves?)\s*(?:around\s+)?(\d+)(?:\s*to\s*(\d+))?\s*(?:ft|feet|foot)`)
)

var dirAbbrev = map[string]string{
	"north": "N", "northeast": "NE", "northwest": "NW",
	"south": "S", "southeast": "SE", "southwest": "SW",
	"east": "E", "west": "W", "variable": "VARIABLE",
}

// parseMarineText combines ranges across periods: lowest low to highest
// high, so the result covers the whole window.
func parseMarineText(texts []string) conditions.Partial {
	var p conditions.Partial
	var winds, seas []conditions.Range

	for _, text := range texts {
		if m := dirRe.FindStringSubmatch(text); m != nil && p.WindDir == "" {
			raw := m[1]
			if abbr, ok := dirAbbrev[strings.ToLower(raw)]; ok {
				p.WindDir = abbr
			} else {
				p.WindDir = strings.ToUpper(raw)
			}
		}
		if m := windRe.FindStringSubmatch(text); m != nil {
			winds = append(winds, rangeFromMatch(m))
		}
		if m := seaRe.FindStringSubmatch(text); m != nil {
			seas = append(seas, rangeFromMatch(m))
		}
	}

	p.Wind = combineRanges(winds)
	p.Waves = combineRanges(seas)
	return p
}

func rangeFromMatch(m []string) conditions.Range {
	low, _ := strconv.ParseFloat(m[1], 64)
	high := low
	if m[2] != "" {
		high, _ = strconv.ParseFloat(m[2], 64)
	}
	return conditions.Range{Low: low, High: high}
}

func combineRanges(rs []conditions.Range) *conditions.Range {
	if len(rs) == 0 {
		return nil
	}
	out := rs[0]
	for _, r := range rs[1:] {
		if r.Low < out.Low {
			out.Low = r.Low
		}
		if r.High > out.High {
			out.High = r.High
		}
	}
	return &out
}
