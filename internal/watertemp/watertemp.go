// Package watertemp resolves the current water temperature from the
// NOAA CO-OPS feed, with historical monthly averages as fallback.
package watertemp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Historical average water temperatures (F) for the southern NC coast
// by month, used when the live reading is unavailable.
var monthlyAvgF = map[time.Month]float64{
	time.January: 50, time.February: 50, time.March: 54,
	time.April: 62, time.May: 70, time.June: 78,
	time.July: 82, time.August: 83, time.September: 80,
	time.October: 72, time.November: 62, time.December: 54,
}

// Reading is a resolved water temperature. IsLive distinguishes a live
// station reading from the monthly average.
type Reading struct {
	ValueF float64 `json:"value_f"`
	IsLive bool    `json:"is_live"`
}

// Resolver fetches the latest water temperature for one station. A
// single guarded attempt, no retries: the monthly average is an
// acceptable answer and the caller should not wait on a flaky feed.
type Resolver struct {
	url     string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	logger  *zap.SugaredLogger
}

func NewResolver(client *http.Client, station string, logger *zap.SugaredLogger) *Resolver {
	return &Resolver{
		url: fmt.Sprintf("https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"+
			"?date=latest&station=%s&product=water_temperature&units=english&time_zone=lst_ldt&format=json", station),
		client:  client,
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "coops-watertemp",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
		logger: logger,
	}
}

// Resolve returns the live reading when available, otherwise the
// historical average for the month. Never fails.
func (r *Resolver) Resolve(ctx context.Context, month time.Month) Reading {
	if v, err := r.fetchLive(ctx); err == nil {
		return Reading{ValueF: v, IsLive: true}
	} else {
		r.logger.Warnw("live water temperature unavailable", "error", err)
	}
	return Reading{ValueF: monthlyAvgF[month], IsLive: false}
}

func (r *Resolver) fetchLive(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return 0, eris.Wrap(err, "watertemp: build request")
	}

	result, err := r.circuit.Execute(func() (interface{}, error) {
		resp, execErr := r.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, eris.Errorf("watertemp: unexpected status %d", resp.StatusCode)
		}

		var payload struct {
			Data []struct {
				Value string `json:"v"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, eris.Wrap(err, "watertemp: decode response")
		}
		if len(payload.Data) == 0 {
			return nil, eris.New("watertemp: empty data")
		}
		v, err := strconv.ParseFloat(payload.Data[0].Value, 64)
		if err != nil {
			return nil, eris.Wrap(err, "watertemp: parse value")
		}
		return v, nil
	})
	if err != nil {
		return 0, err
	}
	return result.(float64), nil
}

// MonthlyAverage exposes the fallback table for scoring explanations.
func MonthlyAverage(month time.Month) float64 {
	return monthlyAvgF[month]
}
