package conditions

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Chain tries sources in priority order, taking each missing field from
// the first source that supplies it. A failed source is skipped, never
// retried within one acquisition. Seasonal averages fill any gaps, so
// Conditions always returns a complete Reading.
type Chain struct {
	sources []Source
	logger  *zap.SugaredLogger
}

func NewChain(logger *zap.SugaredLogger, sources ...Source) *Chain {
	return &Chain{sources: sources, logger: logger}
}

// Conditions acquires current conditions for the given month.
func (c *Chain) Conditions(ctx context.Context, month time.Month) Reading {
	var acc Partial

	for _, src := range c.sources {
		if acc.Complete() {
			break
		}

		p, err := src.Fetch(ctx)
		if err != nil {
			c.logger.Warnw("conditions source unavailable", "source", src.Name(), "error", err)
			continue
		}

		if acc.Wind == nil && p.Wind != nil {
			acc.Wind = p.Wind
			c.logger.Infow("wind acquired", "source", src.Name(), "range", *p.Wind)
		}
		if acc.Waves == nil && p.Waves != nil {
			acc.Waves = p.Waves
			c.logger.Infow("waves acquired", "source", src.Name(), "range", *p.Waves)
		}
		if acc.WindDir == "" && p.WindDir != "" {
			acc.WindDir = p.WindDir
		}
	}

	avgWind, avgWaves, avgDir := SeasonalAverages(month)
	if acc.Wind == nil {
		acc.Wind = &avgWind
		c.logger.Infow("wind from seasonal average", "month", month, "range", avgWind)
	}
	if acc.Waves == nil {
		acc.Waves = &avgWaves
		c.logger.Infow("waves from seasonal average", "month", month, "range", avgWaves)
	}
	if acc.WindDir == "" {
		acc.WindDir = avgDir
	}

	return Reading{Wind: *acc.Wind, Waves: *acc.Waves, WindDir: acc.WindDir}
}
