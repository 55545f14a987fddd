package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/saltline/surfcast/internal/conditions"
	"github.com/sony/gobreaker"
)

// CoopsWind reads the latest wind observation from a NOAA CO-OPS met
// station. Same station family as the water temperature product, so if
// one works the other usually does too. Wind only, no wave data.
type CoopsWind struct {
	name    string
	url     string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewCoopsWind(client *http.Client, station string) *CoopsWind {
	return &CoopsWind{
		name: "coops-wind",
		url: fmt.Sprintf("https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"+
			"?date=latest&station=%s&product=wind&units=english&time_zone=lst_ldt&format=json", station),
		client:  client,
		circuit: newBreaker("coops-wind"),
	}
}

func (s *CoopsWind) Name() string { return s.name }

func (s *CoopsWind) Fetch(ctx context.Context) (conditions.Partial, error) {
	resp, err := doRequest(ctx, s.client, s.circuit, s.url)
	if err != nil {
		return conditions.Partial{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Data []struct {
			Speed     string `json:"s"`
			Gust      string `json:"g"`
			Direction string `json:"d"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return conditions.Partial{}, eris.Wrap(err, "coops-wind: decode response")
	}
	if len(payload.Data) == 0 {
		return conditions.Partial{}, nil
	}

	entry := payload.Data[0]
	speed, err := strconv.ParseFloat(entry.Speed, 64)
	if err != nil {
		return conditions.Partial{}, nil
	}
	gust := speed
	if entry.Gust != "" && entry.Gust != "0.00" {
		if g, err := strconv.ParseFloat(entry.Gust, 64); err == nil {
			gust = g
		}
	}

	return conditions.Partial{
		Wind: &conditions.Range{
			Low:  round1(speed),
			High: round1(math.Max(speed, gust)),
		},
		WindDir: entry.Direction,
	}, nil
}
