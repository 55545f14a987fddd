package tackle

import (
	"sort"
	"strings"
	"time"

	"github.com/saltline/surfcast/internal/catalog"
	"github.com/saltline/surfcast/internal/scoring"
)

// OutOfSeasonPenalty demotes baits an angler cannot realistically get
// right now without dropping them from the list entirely.
const OutOfSeasonPenalty = 0.25

// BaitRecommendation is one bait with notes adjusted for the season.
type BaitRecommendation struct {
	Name  string `json:"bait"`
	Notes string `json:"notes"`
}

// RankBaits orders baits by relevance to the current species ranking.
// A bait scores the sum of max(0, 20-rank) over its ranked targets, so
// baits for top species float up; out-of-season baits are penalized.
func RankBaits(ranking []scoring.RankedSpecies, baits []catalog.BaitEntry, month time.Month) []BaitRecommendation {
	season := scoring.SeasonOf(month)

	// Rank lookup by species short name; bait targets use short names.
	ranks := make(map[string]int, len(ranking))
	for _, sp := range ranking {
		short, _, _ := strings.Cut(sp.Name, "(")
		ranks[strings.TrimSpace(short)] = sp.Rank
	}

	type scored struct {
		score float64
		rec   BaitRecommendation
	}
	list := make([]scored, 0, len(baits))

	for _, b := range baits {
		var score float64
		for _, target := range b.Targets {
			if rank, ok := ranks[target]; ok && rank < 20 {
				score += float64(20 - rank)
			}
		}

		if len(b.AvailableMonths) > 0 && !catalog.InMonths(int(month), b.AvailableMonths) {
			score *= OutOfSeasonPenalty
		}

		notes := b.Notes
		if seasonal, ok := b.SeasonalNotes[string(season)]; ok {
			notes = seasonal
		}

		list = append(list, scored{score: score, rec: BaitRecommendation{Name: b.Name, Notes: notes}})
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].score > list[j].score })

	out := make([]BaitRecommendation, 0, len(list))
	for _, s := range list {
		out = append(out, s.rec)
	}
	return out
}
