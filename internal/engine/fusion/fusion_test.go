// internal/engine/fusion/fusion_test.go
package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aso-engine/internal/models"
)

func TestAnalyze_PerLocaleIsolation(t *testing.T) {
	locales := []models.LocaleMetadata{
		{Locale: "en-US", Title: "Learn Spanish Fast", Subtitle: "Speak Fluently"},
		{Locale: "de-DE", Title: "Spanisch Lernen Schnell", Subtitle: "Fliessend Sprechen"},
	}

	out := Analyze(locales, Options{})

	require.Len(t, out.Locales, 2)
	for _, set := range out.Locales {
		for _, c := range set.Combos {
			assert.Equal(t, set.Locale, c.Locale)
			for _, tok := range c.Keywords {
				assert.Equal(t, set.Locale, tok.Locale,
					"combo %q mixes locales", c.Text)
			}
		}
	}
}

func TestAnalyze_FusedRankingKeepsBestTier(t *testing.T) {
	// "learn spanish" is a title window in en-US but only a keyword-field
	// subset in de-DE; the fused rank must come from en-US.
	locales := []models.LocaleMetadata{
		{Locale: "en-US", Title: "Learn Spanish Fast"},
		{Locale: "de-DE", Title: "Spanisch App", Keywords: "learn,spanish"},
	}

	out := Analyze(locales, Options{})

	rank, ok := out.FusedRanking["learn spanish"]
	require.True(t, ok)
	assert.Equal(t, models.TierTitleConsecutive, rank.Tier)
	assert.Equal(t, models.TierTitleConsecutive.Strength(), rank.Rank)
	assert.Equal(t, "en-US", rank.SourceLocale)
	assert.Equal(t, 2, rank.LocaleCount)
}

func TestAnalyze_EmptyLocaleFlaggedHighSeverity(t *testing.T) {
	locales := []models.LocaleMetadata{
		{Locale: "en-US", Title: "Learn Spanish Fast"},
		{Locale: "fr-FR"},
	}

	out := Analyze(locales, Options{})

	var found bool
	for _, rec := range out.Recommendations {
		if rec.Locale == "fr-FR" && rec.Severity == models.SeverityHigh {
			assert.Equal(t, models.SuggestionAdd, rec.Suggestion)
			found = true
		}
	}
	assert.True(t, found, "empty locale must produce a high severity recommendation")
}

func TestAnalyze_UnderutilizedLocale(t *testing.T) {
	// en-US produces many combos from four words; de-DE produces exactly one
	// from two, landing well under half the peer average.
	locales := []models.LocaleMetadata{
		{Locale: "en-US", Title: "Learn Spanish Fast Today", Subtitle: "Speak Fluently Now"},
		{Locale: "de-DE", Title: "Spanisch Lernen"},
	}

	out := Analyze(locales, Options{})

	var found bool
	for _, rec := range out.Recommendations {
		if rec.Locale == "de-DE" && rec.Severity == models.SeverityMedium {
			assert.Equal(t, models.SuggestionRedistribute, rec.Suggestion)
			found = true
		}
	}
	assert.True(t, found, "underutilized locale must produce a medium severity recommendation")
}

func TestAnalyze_DuplicateKeywordFlaggedLowSeverity(t *testing.T) {
	locales := []models.LocaleMetadata{
		{Locale: "en-US", Title: "Learn Spanish Fast"},
		{Locale: "en-GB", Title: "Learn Spanish Fast"},
	}

	out := Analyze(locales, Options{})

	var found bool
	for _, rec := range out.Recommendations {
		if rec.Keyword == "learn spanish" {
			assert.Equal(t, models.SeverityLow, rec.Severity)
			assert.Equal(t, models.SuggestionMove, rec.Suggestion)
			found = true
		}
	}
	assert.True(t, found, "verbatim cross-locale keyword must be flagged")
}

func TestAnalyze_RecommendationsOrderedBySeverity(t *testing.T) {
	locales := []models.LocaleMetadata{
		{Locale: "en-US", Title: "Learn Spanish Fast Today", Subtitle: "Speak Fluently Now"},
		{Locale: "en-GB", Title: "Learn Spanish Fast Today", Subtitle: "Speak Fluently Now"},
		{Locale: "fr-FR"},
	}

	out := Analyze(locales, Options{})

	require.NotEmpty(t, out.Recommendations)
	lastRank := -1
	for _, rec := range out.Recommendations {
		rank := severityRank(rec.Severity)
		assert.GreaterOrEqual(t, rank, lastRank, "recommendations out of severity order")
		lastRank = rank
	}
}

func TestAnalyze_BrandClassificationApplied(t *testing.T) {
	locales := []models.LocaleMetadata{
		{Locale: "en-US", Title: "Pimsleur Language Learning"},
	}

	out := Analyze(locales, Options{BrandName: "Pimsleur"})

	require.Len(t, out.Locales, 1)
	var sawBrand, sawGeneric bool
	for _, c := range out.Locales[0].Combos {
		switch c.BrandClassification {
		case models.ClassificationBrand:
			sawBrand = true
		case models.ClassificationGeneric:
			sawGeneric = true
		}
	}
	assert.True(t, sawBrand, "combos containing the brand word must be brand")
	assert.True(t, sawGeneric, "combos without the brand word must be generic")
}

func TestAnalyze_Deterministic(t *testing.T) {
	locales := []models.LocaleMetadata{
		{Locale: "en-US", Title: "Learn Spanish Fast", Subtitle: "Speak Fluently"},
		{Locale: "en-GB", Title: "Learn Spanish Quickly"},
	}

	first := Analyze(locales, Options{})
	second := Analyze(locales, Options{})

	assert.Equal(t, first, second)
}

func TestAssertLocaleIsolation_PanicsOnMixedTokens(t *testing.T) {
	mixed := models.Combo{
		Text:   "learn schnell",
		Locale: "en-US",
		Keywords: []models.Token{
			{Text: "learn", Locale: "en-US"},
			{Text: "schnell", Locale: "de-DE"},
		},
	}

	assert.PanicsWithValue(t,
		`LOCALE_MIXING: combo "learn schnell" declared locale "en-US" but contains a token from locale "de-DE"`,
		func() { assertLocaleIsolation(mixed) })
}
