package conditions

// Verdict is the overall fishability call for small-boat and pier
// anglers.
type Verdict string

const (
	VerdictFishable   Verdict = "Fishable"
	VerdictMarginal   Verdict = "Marginal"
	VerdictNotWorthIt Verdict = "Not worth it"
	VerdictUnknown    Verdict = "Unknown"
)

// Classify applies the fishability policy to wind and wave maxima:
//
//   - Fishable: max wind < 15 kt and max seas < 3 ft
//   - Marginal: max wind <= 20 kt and max seas <= 5 ft
//   - Not worth it: anything beyond (small craft advisory territory)
//
// Nil inputs yield Unknown; the chain's seasonal fallback normally
// guarantees both are present.
func Classify(wind, waves *Range) Verdict {
	if wind == nil || waves == nil {
		return VerdictUnknown
	}
	switch {
	case wind.High < 15 && waves.High < 3:
		return VerdictFishable
	case wind.High <= 20 && waves.High <= 5:
		return VerdictMarginal
	default:
		return VerdictNotWorthIt
	}
}
