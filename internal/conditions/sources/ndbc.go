package sources

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/saltline/surfcast/internal/conditions"
	"github.com/sony/gobreaker"
)

// NDBC reads real-time observations from one NDBC buoy. The feed is a
// whitespace-separated text table: two header lines, then newest
// observations first. Wind arrives in m/s and wave height in meters.
type NDBC struct {
	name    string
	url     string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewNDBC(client *http.Client, station string) *NDBC {
	return &NDBC{
		name:    "ndbc-" + station,
		url:     fmt.Sprintf("https://www.ndbc.noaa.gov/data/realtime2/%s.txt", station),
		client:  client,
		circuit: newBreaker("ndbc-" + station),
	}
}

func (s *NDBC) Name() string { return s.name }

// Buoy feeds mark absent fields with these markers.
var ndbcMissing = map[string]bool{
	"MM": true, "99.0": true, "99.00": true, "999": true, "999.0": true,
}

func (s *NDBC) Fetch(ctx context.Context) (conditions.Partial, error) {
	resp, err := doRequest(ctx, s.client, s.circuit, s.url)
	if err != nil {
		return conditions.Partial{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return conditions.Partial{}, eris.Wrapf(err, "%s: read body", s.name)
	}
	return parseBuoyTable(string(raw)), nil
}

// parseBuoyTable scans up to ten recent observations, taking each field
// from the newest row where it is present.
func parseBuoyTable(text string) conditions.Partial {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 3 {
		return conditions.Partial{}
	}

	header := strings.Fields(strings.ReplaceAll(lines[0], "#", ""))
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	var p conditions.Partial

	rows := lines[2:]
	if len(rows) > 10 {
		rows = rows[:10]
	}
	for _, line := range rows {
		fields := strings.Fields(line)
		if len(fields) < len(header) {
			continue
		}

		if p.Wind == nil {
			if spd, ok := buoyField(fields, col, "WSPD"); ok {
				spdKt := spd * msToKnots
				gustKt := spdKt
				if gust, ok := buoyField(fields, col, "GST"); ok {
					gustKt = gust * msToKnots
				}
				p.Wind = &conditions.Range{
					Low:  round1(spdKt),
					High: round1(math.Max(spdKt, gustKt)),
				}
			}
		}
		if p.WindDir == "" {
			if deg, ok := buoyField(fields, col, "WDIR"); ok {
				p.WindDir = conditions.DegreesToCompass(deg)
			}
		}
		if p.Waves == nil {
			if hgt, ok := buoyField(fields, col, "WVHT"); ok {
				ft := round1(hgt * mToFeet)
				p.Waves = &conditions.Range{Low: ft, High: ft}
			}
		}

		if p.Complete() {
			break
		}
	}
	return p
}

func buoyField(fields []string, col map[string]int, name string) (float64, bool) {
	idx, ok := col[name]
	if !ok || ndbcMissing[fields[idx]] {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[idx], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
