// Package sources implements the upstream conditions providers: the NWS
// marine zone forecast, NDBC buoys, CO-OPS met stations and the NWS
// gridpoint forecast.
package sources

import (
	"context"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"github.com/sony/gobreaker"
)

// Unit conversions for the metric upstream feeds.
const (
	msToKnots  = 1.94384
	mToFeet    = 3.28084
	mphToKnots = 0.868976
)

const userAgent = "surfcast/1.0 (github.com/saltline/surfcast)"

var (
	errRateLimited = eris.New("sources: rate limited")
	errServerError = eris.New("sources: server error")
	errCircuitOpen = eris.New("sources: circuit breaker open")
)

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// doRequest executes one guarded HTTP attempt. The chain moves to the
// next source on failure rather than retrying, so there is no backoff
// loop here; the breaker sheds load from a source that keeps failing
// across acquisitions.
func doRequest(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "sources: build request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/ld+json, application/json, text/plain")

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			return nil, errRateLimited
		}
		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return nil, errServerError
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, eris.Errorf("sources: unexpected status %d", resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		if eris.Is(err, gobreaker.ErrOpenState) || eris.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, eris.Wrap(errCircuitOpen, cb.Name())
		}
		return nil, err
	}
	return result.(*http.Response), nil
}
