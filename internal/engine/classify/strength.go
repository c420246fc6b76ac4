// internal/engine/classify/strength.go

// Package classify assigns strength tiers and brand/generic labels to
// generated combos.
package classify

import "aso-engine/internal/models"

// tierTable is the closed mapping from source pattern to tier. It is a
// lookup table, not a formula: the ordering must stay stable across runs so
// the diff engine's upgrade/downgrade comparisons remain well defined.
// Token relevance never changes the band; it is only a secondary ranking key.
var tierTable = map[models.SourcePattern]models.Tier{
	models.PatternTitleConsecutive:       models.TierTitleConsecutive,
	models.PatternTitleNonconsecutive:    models.TierTitleNonconsecutive,
	models.PatternCrossElement:           models.TierCrossElement,
	models.PatternSubtitleConsecutive:    models.TierSubtitleConsecutive,
	models.PatternSubtitleNonconsecutive: models.TierSubtitleNonconsecutive,
	models.PatternCrossKeywords:          models.TierCrossKeywords,
	models.PatternKeywordNonconsecutive:  models.TierKeywordNonconsecutive,
}

// TierFor returns the tier band for a source pattern. Unknown patterns map
// to the weakest tier rather than panicking; they can only come from callers
// constructing combos by hand.
func TierFor(pattern models.SourcePattern) models.Tier {
	if tier, ok := tierTable[pattern]; ok {
		return tier
	}
	return models.TierKeywordNonconsecutive
}

// ClassifyStrength stamps every combo's tier from its source pattern.
func ClassifyStrength(combos []models.Combo) {
	for i := range combos {
		combos[i].Tier = TierFor(combos[i].SourcePattern)
	}
}
