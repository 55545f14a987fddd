package scoring

import "github.com/saltline/surfcast/internal/catalog"

// conditionsModifier adjusts the score for wind direction, wind speed,
// wave height and time of day against the species' condition tags.
// Untagged species get no adjustment.
func conditionsModifier(sp catalog.SpeciesProfile, c Conditions) float64 {
	var mod float64

	// Wind direction: onshore wind pushes bait and turbid water toward
	// shore; calm-water species want the opposite.
	if c.WindDir != "" {
		onshore := c.Coastline.IsOnshore(c.WindDir)
		offshore := c.Coastline.IsOffshore(c.WindDir)

		if sp.HasTag(catalog.TagOnshoreSurf) {
			if onshore {
				mod += 5
			} else if offshore {
				mod -= 3
			}
		} else if sp.HasTag(catalog.TagCalmWater) {
			if offshore {
				mod += 5
			} else if onshore {
				mod -= 3
			}
		}
	}

	if c.Wind != nil {
		avg := c.Wind.Avg()
		if sp.HasTag(catalog.TagRoughSurf) {
			// Moderate wind stirs up bait.
			if 10 <= avg && avg <= 18 {
				mod += 3
			} else if avg < 5 {
				mod -= 2
			}
		} else if sp.HasTag(catalog.TagCalmWater) {
			if avg < 8 {
				mod += 3
			} else if avg > 15 {
				mod -= 2
			}
		}
	}

	if c.Waves != nil {
		avg := c.Waves.Avg()
		if sp.HasTag(catalog.TagRoughSurf) {
			// Moderate surf concentrates bait in the troughs.
			if 2 <= avg && avg <= 5 {
				mod += 4
			} else if avg < 1 {
				mod -= 1
			}
		} else if sp.HasTag(catalog.TagCalmWater) {
			if avg < 2 {
				mod += 4
			} else if avg > 4 {
				mod -= 2
			}
		}
	}

	lowLight := c.Hour < 7 || c.Hour > 18
	midday := 10 <= c.Hour && c.Hour <= 15

	if sp.HasTag(catalog.TagLowLight) {
		if lowLight {
			mod += 3
		} else if midday {
			mod -= 1
		}
	} else if sp.HasTag(catalog.TagDaytime) {
		if midday {
			mod += 3
		} else if lowLight {
			mod -= 1
		}
	}

	return mod
}
