package scoring

import (
	"math"
	"sort"

	"github.com/saltline/surfcast/internal/catalog"
)

// Activity labels for ranked species.
const (
	ActivityHot      = "Hot"
	ActivityActive   = "Active"
	ActivityPossible = "Possible"
)

// MaxRanked caps the ranking at the species worth showing an angler.
const MaxRanked = 10

// RankedSpecies is one row of the forecast ranking, carrying the
// species' tackle text for the rig and bait mappers.
type RankedSpecies struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Activity    string  `json:"activity"`
	Explanation string  `json:"explanation"`
	Bait        string  `json:"bait"`
	Rig         string  `json:"rig"`
	HookSize    string  `json:"hook_size"`
	Sinker      string  `json:"sinker"`
}

// Rank scores every species and returns the top MaxRanked above
// ScoreThreshold in descending score order. Ties keep catalog order.
func Rank(species []catalog.SpeciesProfile, c Conditions) []RankedSpecies {
	type scored struct {
		score float64
		sp    catalog.SpeciesProfile
	}

	var keep []scored
	for _, sp := range species {
		s := Score(sp, c)
		if s >= ScoreThreshold {
			keep = append(keep, scored{score: s, sp: sp})
		}
	}

	sort.SliceStable(keep, func(i, j int) bool { return keep[i].score > keep[j].score })

	if len(keep) > MaxRanked {
		keep = keep[:MaxRanked]
	}

	out := make([]RankedSpecies, 0, len(keep))
	for i, k := range keep {
		activity := ActivityPossible
		switch {
		case k.score >= HotCutoff:
			activity = ActivityHot
		case k.score >= ActiveCutoff:
			activity = ActivityActive
		}

		out = append(out, RankedSpecies{
			Rank:        i + 1,
			Name:        k.sp.Name,
			Score:       math.Round(k.score*10) / 10,
			Activity:    activity,
			Explanation: Explanation(k.sp, c.Month, c.WaterTempF),
			Bait:        k.sp.Bait,
			Rig:         k.sp.Rig,
			HookSize:    k.sp.HookSize,
			Sinker:      k.sp.Sinker,
		})
	}
	return out
}
