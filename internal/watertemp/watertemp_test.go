package watertemp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestResolveLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"v": "74.8"}]}`))
	}))
	defer srv.Close()

	res := NewResolver(srv.Client(), "8658163", zap.NewNop().Sugar())
	res.url = srv.URL

	reading := res.Resolve(context.Background(), time.June)

	assert.Equal(t, 74.8, reading.ValueF)
	assert.True(t, reading.IsLive)
}

func TestResolveFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	res := NewResolver(srv.Client(), "8658163", zap.NewNop().Sugar())
	res.url = srv.URL

	reading := res.Resolve(context.Background(), time.January)

	assert.Equal(t, 50.0, reading.ValueF)
	assert.False(t, reading.IsLive)
}

func TestResolveFallsBackOnEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	res := NewResolver(srv.Client(), "8658163", zap.NewNop().Sugar())
	res.url = srv.URL

	reading := res.Resolve(context.Background(), time.August)

	assert.Equal(t, 83.0, reading.ValueF)
	assert.False(t, reading.IsLive)
}

func TestMonthlyAverageTableComplete(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		avg := MonthlyAverage(m)
		assert.GreaterOrEqual(t, avg, 50.0, m)
		assert.LessOrEqual(t, avg, 83.0, m)
	}
}
