// Package tackle maps ranked species to concrete rig and bait
// recommendations.
package tackle

import (
	"strings"

	"github.com/saltline/surfcast/internal/catalog"
	"github.com/saltline/surfcast/internal/common"
	"github.com/saltline/surfcast/internal/scoring"
)

// ClassifyRig normalizes a species' free-text rig description into a
// canonical rig category key. Rule order matters: more specific
// keywords are checked before generic ones ("float bead" must win over
// "float"). An empty key means no rig applies (protected or
// observe-only species).
func ClassifyRig(rigText string) string {
	text := strings.ToLower(rigText)

	switch {
	case common.HasAny(text, "n/a", "observe", "protected"):
		return ""
	case common.HasAny(text, "deep-drop", "deep drop", "electric reel"):
		return "deep-drop"
	case strings.Contains(text, "trolling") && !strings.Contains(text, "slow"):
		return "trolling"
	case common.HasAny(text, "sabiki", "bait catcher", "gold-hook bait"):
		return "sabiki"
	case common.HasAny(text, "shad dart", "tandem"):
		return "tandem-jig"
	case common.HasAny(text, "popping", "cork"):
		return "popping-cork"
	case strings.Contains(text, "stinger"),
		strings.Contains(text, "king") && strings.Contains(text, "wire"):
		return "kingfish-stinger"
	case common.HasAny(text, "shark", "very heavy wire", "stand-up", "heavy wire leader and heavy"):
		return "shark"
	case strings.Contains(text, "knocker"):
		return "knocker"
	case common.HasAny(text, "pier", "structure", "vertical"):
		return "knocker"
	case common.HasAny(text, "pompano", "float bead", "floats above"):
		return "pompano"
	case common.HasAny(text, "double-dropper", "hi-lo", "two-hook"):
		return "hi-lo"
	case common.HasAny(text, "float", "free-line", "balloon"):
		return "float"
	case common.HasAny(text, "carolina", "fishfinder", "fish finder", "sliding"):
		return "fishfinder"
	default:
		return "fishfinder"
	}
}

// RigRecommendation is one rig setup with the hooks, sinkers and
// target species pulled from the ranked species that use it.
type RigRecommendation struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Mainline    string   `json:"mainline"`
	Leader      string   `json:"leader"`
	Hook        string   `json:"hook"`
	Sinker      string   `json:"sinker"`
	Targets     []string `json:"targets"`
}

// BuildRigRecommendations groups the ranking by rig category,
// preserving the order of each category's highest-ranked species. Hook
// and sinker lists keep first-seen order, capped at three.
func BuildRigRecommendations(ranking []scoring.RankedSpecies, rigs map[string]catalog.RigCategory) []RigRecommendation {
	groups := make(map[string][]scoring.RankedSpecies)
	var order []string

	for _, sp := range ranking {
		key := ClassifyRig(sp.Rig)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], sp)
	}

	var out []RigRecommendation
	for _, key := range order {
		category, ok := rigs[key]
		if !ok {
			continue
		}

		group := groups[key]
		targets := make([]string, 0, len(group))
		var hooks, sinkers []string
		for _, sp := range group {
			targets = append(targets, sp.Name)
			hooks = appendUnique(hooks, sp.HookSize)
			sinkers = appendUnique(sinkers, sp.Sinker)
		}

		out = append(out, RigRecommendation{
			Name:        category.Name,
			Description: category.Description,
			Mainline:    category.Mainline,
			Leader:      category.Leader,
			Hook:        joinCapped(hooks, 3),
			Sinker:      joinCapped(sinkers, 3),
			Targets:     targets,
		})
	}
	return out
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func joinCapped(list []string, max int) string {
	if len(list) > max {
		list = list[:max]
	}
	return strings.Join(list, " or ")
}
