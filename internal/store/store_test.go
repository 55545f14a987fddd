package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/saltline/surfcast/internal/conditions"
	"github.com/saltline/surfcast/internal/forecast"
	"github.com/saltline/surfcast/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForecast() *forecast.Forecast {
	return &forecast.Forecast{
		GeneratedAt: time.Date(2025, time.October, 12, 6, 30, 0, 0, time.UTC),
		Location:    forecast.LocationInfo{ID: "wrightsville-beach-nc", Name: "Wrightsville Beach", State: "NC"},
		Conditions: forecast.ConditionsReport{
			Wind:          "NE 10-15 kt",
			Waves:         "2-4 ft",
			Verdict:       conditions.VerdictMarginal,
			WaterTempF:    71.5,
			WaterTempLive: true,
			SunriseSunset: "7:10 AM / 6:45 PM",
			MoonPhase:     "Waxing Gibbous",
			Illumination:  0.82,
			Solunar:       "Good",
		},
		Species: []scoring.RankedSpecies{
			{Rank: 1, Name: "Red drum (puppy drum)", Score: 84.5, Activity: "Hot", Explanation: "fall run"},
		},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data", "forecast.json"))

	want := sampleForecast()
	require.NoError(t, s.Put(want))

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreEmptyReturnsNoForecast(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "forecast.json"))

	_, err := s.Get()
	assert.True(t, eris.Is(err, forecast.ErrNoForecast))
}

func TestFileStoreOverwrite(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "forecast.json"))

	first := sampleForecast()
	require.NoError(t, s.Put(first))

	second := sampleForecast()
	second.GeneratedAt = first.GeneratedAt.Add(4 * time.Hour)
	second.Conditions.Verdict = conditions.VerdictFishable
	require.NoError(t, s.Put(second))

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "forecast.db"))
	require.NoError(t, err)
	defer s.Close()

	want := sampleForecast()
	require.NoError(t, s.Put(want))

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLiteStoreEmptyReturnsNoForecast(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "forecast.db"))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get()
	assert.True(t, eris.Is(err, forecast.ErrNoForecast))
}

func TestSQLiteStoreUpsertKeepsSingleRow(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "forecast.db"))
	require.NoError(t, err)
	defer s.Close()

	first := sampleForecast()
	require.NoError(t, s.Put(first))

	second := sampleForecast()
	second.GeneratedAt = first.GeneratedAt.Add(time.Hour)
	require.NoError(t, s.Put(second))

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM forecast`).Scan(&count))
	assert.Equal(t, 1, count)

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, second.GeneratedAt, got.GeneratedAt)
}
