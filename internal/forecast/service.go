package forecast

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"github.com/saltline/surfcast/internal/astro"
	"github.com/saltline/surfcast/internal/catalog"
	"github.com/saltline/surfcast/internal/conditions"
	"github.com/saltline/surfcast/internal/locations"
	"github.com/saltline/surfcast/internal/scoring"
	"github.com/saltline/surfcast/internal/tackle"
	"github.com/saltline/surfcast/internal/watertemp"
	"go.uber.org/zap"
)

// ConditionsProvider yields current marine conditions. Satisfied by
// *conditions.Chain.
type ConditionsProvider interface {
	Conditions(ctx context.Context, month time.Month) conditions.Reading
}

// WaterTempProvider yields the current water temperature. Satisfied by
// *watertemp.Resolver.
type WaterTempProvider interface {
	Resolve(ctx context.Context, month time.Month) watertemp.Reading
}

// Service generates forecasts on demand and keeps the latest one in the
// store. Serving prefers a fresh cache, then regeneration, then a stale
// cache flagged ServedFromCache; only an empty store plus a failed
// generation yields an error.
type Service struct {
	mu sync.Mutex

	loc     locations.Location
	tz      *time.Location
	chain   ConditionsProvider
	water   WaterTempProvider
	catalog *catalog.Catalog
	store   Store
	ttl     time.Duration
	logger  *zap.SugaredLogger

	now func() time.Time
}

func NewService(
	loc locations.Location,
	chain ConditionsProvider,
	water WaterTempProvider,
	cat *catalog.Catalog,
	store Store,
	ttl time.Duration,
	logger *zap.SugaredLogger,
) (*Service, error) {
	tz, err := time.LoadLocation(loc.Timezone)
	if err != nil {
		return nil, eris.Wrapf(err, "forecast: load timezone %q", loc.Timezone)
	}
	return &Service{
		loc:     loc,
		tz:      tz,
		chain:   chain,
		water:   water,
		catalog: cat,
		store:   store,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// GetOrRefresh returns a forecast no older than the TTL, regenerating
// when needed. A stale cached forecast is served with ServedFromCache
// set if regeneration fails.
func (s *Service) GetOrRefresh(ctx context.Context) (*Forecast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached, err := s.store.Get()
	if err != nil && !eris.Is(err, ErrNoForecast) {
		s.logger.Warnw("cache read failed", "error", err)
	}
	if cached != nil && cached.Age(s.now()) <= s.ttl {
		return cached, nil
	}

	fresh, genErr := s.generate(ctx)
	if genErr != nil {
		if cached != nil {
			s.logger.Warnw("regeneration failed, serving stale forecast",
				"age", cached.Age(s.now()), "error", genErr)
			stale := *cached
			stale.ServedFromCache = true
			return &stale, nil
		}
		return nil, eris.Wrap(ErrNoForecast, genErr.Error())
	}

	if err := s.store.Put(fresh); err != nil {
		s.logger.Errorw("cache write failed", "error", err)
	}
	return fresh, nil
}

// RefreshNow unconditionally regenerates and stores a forecast.
func (s *Service) RefreshNow(ctx context.Context) (*Forecast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh, err := s.generate(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(fresh); err != nil {
		s.logger.Errorw("cache write failed", "error", err)
	}
	return fresh, nil
}

func (s *Service) generate(ctx context.Context) (*Forecast, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "forecast: generate")
	}

	now := s.now().In(s.tz)
	month := now.Month()

	reading := s.chain.Conditions(ctx, month)
	verdict := conditions.Classify(&reading.Wind, &reading.Waves)

	water := s.water.Resolve(ctx, month)

	sunrise, sunset := astro.SunTimes(now, s.loc.Lat, s.loc.Lng, s.tz)
	moon := astro.MoonAt(now)

	cond := scoring.Conditions{
		Month:      month,
		WaterTempF: water.ValueF,
		WindDir:    reading.WindDir,
		Wind:       &reading.Wind,
		Waves:      &reading.Waves,
		Hour:       now.Hour(),
		Coastline:  s.loc.Coastline,
	}
	species := scoring.Rank(s.catalog.Species, cond)

	f := &Forecast{
		GeneratedAt: now,
		Location: LocationInfo{
			ID:    s.loc.ID,
			Name:  s.loc.Name,
			State: s.loc.State,
		},
		Conditions: ConditionsReport{
			Wind:          formatWind(reading.WindDir, reading.Wind),
			Waves:         formatWaves(reading.Waves),
			Verdict:       verdict,
			WaterTempF:    math.Round(water.ValueF*10) / 10,
			WaterTempLive: water.IsLive,
			SunriseSunset: astro.FormatSunWindow(sunrise, sunset),
			MoonPhase:     string(moon.Phase),
			Illumination:  math.Round(moon.Illumination*100) / 100,
			Solunar:       string(moon.Solunar),
		},
		Species: species,
		Rigs:    tackle.BuildRigRecommendations(species, s.catalog.Rigs),
		Baits:   tackle.RankBaits(species, s.catalog.Baits, month),
	}

	s.logger.Infow("forecast generated",
		"location", s.loc.ID,
		"verdict", verdict,
		"water_temp_f", f.Conditions.WaterTempF,
		"water_temp_live", water.IsLive,
		"species", len(species))

	return f, nil
}
