// Package conditions acquires current marine conditions from a chain of
// upstream sources with layered fallbacks. A Reading never has missing
// fields: seasonal averages fill whatever the live sources could not.
package conditions

import (
	"context"
	"fmt"
)

// Range is a low/high pair, e.g. sustained wind to gust, in one unit.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

func (r Range) Avg() float64 { return (r.Low + r.High) / 2 }

// String renders the range as "10-15" (or "10" when degenerate).
func (r Range) String() string {
	if r.Low == r.High {
		return trimFloat(r.Low)
	}
	return trimFloat(r.Low) + "-" + trimFloat(r.High)
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.1f", f)
}

// Partial is one source's contribution. Any field may be absent; the
// chain fills each field from the first source that provides it.
type Partial struct {
	Wind    *Range
	Waves   *Range
	WindDir string
}

// Complete reports whether no field is missing.
func (p Partial) Complete() bool {
	return p.Wind != nil && p.Waves != nil && p.WindDir != ""
}

// Reading is a fully resolved set of marine conditions. Wind in knots,
// waves in feet.
type Reading struct {
	Wind    Range  `json:"wind_kt"`
	Waves   Range  `json:"waves_ft"`
	WindDir string `json:"wind_dir"`
}

// Source is one upstream conditions provider.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (Partial, error)
}
