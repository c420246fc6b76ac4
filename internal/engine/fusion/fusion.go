// internal/engine/fusion/fusion.go

// Package fusion runs the tokenize-generate-classify pipeline independently
// per locale and fuses a single best rank per keyword. Tokens from different
// locales never combine; a breach of that invariant is a programming defect
// and panics.
package fusion

import (
	"aso-engine/internal/common/errors"
	"aso-engine/internal/engine/classify"
	"aso-engine/internal/engine/combos"
	"aso-engine/internal/engine/tokenizer"
	"aso-engine/internal/models"
)

type Options struct {
	CapPerPattern int
	BrandName     string
	BrandAliases  []string
}

// Analyze builds per-locale combo sets and the fused ranking table.
// FinalRank(keyword) is the maximum rank the keyword achieves in any locale;
// the locale that achieved it is recorded for explainability.
func Analyze(locales []models.LocaleMetadata, opts Options) models.MultiLocaleIndexation {
	matcher := classify.NewBrandMatcher(opts.BrandName, opts.BrandAliases)
	brandWords := append([]string{opts.BrandName}, opts.BrandAliases...)

	out := models.MultiLocaleIndexation{
		FusedRanking: make(map[string]models.KeywordRank),
	}

	localeCounts := make(map[string]int) // keyword -> distinct locales seen in

	for _, meta := range locales {
		set := buildLocaleSet(meta, brandWords, matcher, opts.CapPerPattern)
		out.Locales = append(out.Locales, set)

		for _, c := range set.Combos {
			assertLocaleIsolation(c)
			localeCounts[c.Text]++

			best, seen := out.FusedRanking[c.Text]
			if !seen || c.Tier.Strength() > best.Rank {
				out.FusedRanking[c.Text] = models.KeywordRank{
					Keyword:      c.Text,
					Tier:         c.Tier,
					Rank:         c.Tier.Strength(),
					SourceLocale: meta.Locale,
				}
			}
		}
	}

	for keyword, count := range localeCounts {
		rank := out.FusedRanking[keyword]
		rank.LocaleCount = count
		out.FusedRanking[keyword] = rank
	}

	out.Recommendations = analyzeCoverage(out.Locales, out.FusedRanking)

	return out
}

// buildLocaleSet runs the single-locale pipeline. Each locale gets its own
// tokenizer; token sequences are never pooled across locales.
func buildLocaleSet(meta models.LocaleMetadata, brandWords []string, matcher *classify.BrandMatcher, capPerPattern int) models.LocaleComboSet {
	tok := tokenizer.New(meta.Locale, brandWords)

	title := tok.Tokenize(meta.Title, models.FieldTitle)
	subtitle := tok.Tokenize(meta.Subtitle, models.FieldSubtitle)
	keywords := tok.Tokenize(meta.Keywords, models.FieldKeywords)

	gen := combos.NewGenerator(combos.Options{CapPerPattern: capPerPattern})
	set := gen.Generate(title.Tokens, subtitle.Tokens, keywords.Tokens)

	classify.ClassifyStrength(set)
	classify.ClassifyBrand(set, matcher)

	return models.LocaleComboSet{
		Locale: meta.Locale,
		Combos: set,
		Stats:  models.BuildComboStats(set),
	}
}

// assertLocaleIsolation verifies every constituent token originates from the
// combo's declared locale.
func assertLocaleIsolation(c models.Combo) {
	for _, tok := range c.Keywords {
		if tok.Locale != c.Locale {
			panic(errors.LocaleMixingMessage(c.Text, c.Locale, tok.Locale))
		}
	}
}
