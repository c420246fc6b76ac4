// internal/engine/fusion/coverage.go
package fusion

import (
	"fmt"
	"sort"

	"aso-engine/internal/models"
)

// underutilizedShare marks a locale as underutilized when it contributes
// less than this share of the non-empty peer average.
const underutilizedShare = 0.5

// analyzeCoverage flags empty locales, locales contributing
// disproportionately little, and keywords repeated verbatim across locales
// without localization. Output ordering is stable across runs.
func analyzeCoverage(locales []models.LocaleComboSet, fused map[string]models.KeywordRank) []models.CoverageRecommendation {
	var recs []models.CoverageRecommendation

	nonEmpty := 0
	totalCombos := 0
	for _, set := range locales {
		if len(set.Combos) > 0 {
			nonEmpty++
			totalCombos += len(set.Combos)
		}
	}

	for _, set := range locales {
		if len(set.Combos) == 0 {
			recs = append(recs, models.CoverageRecommendation{
				Severity:   models.SeverityHigh,
				Suggestion: models.SuggestionAdd,
				Locale:     set.Locale,
				Message:    fmt.Sprintf("locale %s produced zero combos; add metadata text", set.Locale),
			})
			continue
		}
		if nonEmpty < 2 {
			continue
		}
		peerMean := float64(totalCombos-len(set.Combos)) / float64(nonEmpty-1)
		if float64(len(set.Combos)) < underutilizedShare*peerMean {
			recs = append(recs, models.CoverageRecommendation{
				Severity:   models.SeverityMedium,
				Suggestion: models.SuggestionRedistribute,
				Locale:     set.Locale,
				Message: fmt.Sprintf("locale %s contributes %d combos against a peer average of %.0f",
					set.Locale, len(set.Combos), peerMean),
			})
		}
	}

	duplicates := make([]string, 0)
	for keyword, rank := range fused {
		if rank.LocaleCount >= 2 {
			duplicates = append(duplicates, keyword)
		}
	}
	sort.Strings(duplicates)
	for _, keyword := range duplicates {
		recs = append(recs, models.CoverageRecommendation{
			Severity:   models.SeverityLow,
			Suggestion: models.SuggestionMove,
			Locale:     fused[keyword].SourceLocale,
			Keyword:    keyword,
			Message: fmt.Sprintf("keyword %q repeats verbatim in %d locales without localization",
				keyword, fused[keyword].LocaleCount),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Severity != recs[j].Severity {
			return severityRank(recs[i].Severity) < severityRank(recs[j].Severity)
		}
		if recs[i].Locale != recs[j].Locale {
			return recs[i].Locale < recs[j].Locale
		}
		return recs[i].Keyword < recs[j].Keyword
	})

	return recs
}

func severityRank(s models.Severity) int {
	switch s {
	case models.SeverityHigh:
		return 0
	case models.SeverityMedium:
		return 1
	default:
		return 2
	}
}
