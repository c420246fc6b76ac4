// internal/engine/kpi/formulas.go
package kpi

import (
	"strings"

	"aso-engine/internal/models"
)

// FormulaInput is the fixed input bundle for raw-value formulas. Upstream
// stages fill it, or callers supply precomputed pieces to drive the KPI
// stage standalone.
type FormulaInput struct {
	Title    string
	Subtitle string
	Platform models.Platform

	TitleTokens    []models.Token
	SubtitleTokens []models.Token

	// Raw word and dropped (stopword/noise) counts across title + subtitle.
	RawWordCount int
	DroppedCount int

	Combos []models.Combo
}

// FormulaFunc computes one KPI's raw value. Formulas are metric-specific
// business rules; the evaluator only treats them as a pluggable step per
// registry id.
type FormulaFunc func(in *FormulaInput) (float64, error)

// Formulas binds registry ids to their raw-value formulas.
var Formulas = map[string]FormulaFunc{
	"title_char_usage":         titleCharUsage,
	"subtitle_char_usage":      subtitleCharUsage,
	"title_word_count":         titleWordCount,
	"subtitle_word_count":      subtitleWordCount,
	"total_combos":             totalCombos,
	"title_consecutive_combos": titleConsecutiveCombos,
	"cross_element_combos":     crossElementCombos,
	"avg_combo_strength":       avgComboStrength,
	"generic_ratio":            genericRatio,
	"noise_ratio":              noiseRatio,
	"relevance_density":        relevanceDensity,
}

// charLimits returns the store title/subtitle character conventions.
func charLimits(p models.Platform) (titleLimit, subtitleLimit int) {
	if p == models.PlatformSecondary {
		return 50, 80
	}
	return 30, 30
}

func titleCharUsage(in *FormulaInput) (float64, error) {
	limit, _ := charLimits(in.Platform)
	return float64(len([]rune(in.Title))) / float64(limit), nil
}

func subtitleCharUsage(in *FormulaInput) (float64, error) {
	_, limit := charLimits(in.Platform)
	return float64(len([]rune(in.Subtitle))) / float64(limit), nil
}

func titleWordCount(in *FormulaInput) (float64, error) {
	return float64(len(strings.Fields(in.Title))), nil
}

func subtitleWordCount(in *FormulaInput) (float64, error) {
	return float64(len(strings.Fields(in.Subtitle))), nil
}

func totalCombos(in *FormulaInput) (float64, error) {
	return float64(len(in.Combos)), nil
}

func titleConsecutiveCombos(in *FormulaInput) (float64, error) {
	n := 0
	for _, c := range in.Combos {
		if c.Tier == models.TierTitleConsecutive {
			n++
		}
	}
	return float64(n), nil
}

func crossElementCombos(in *FormulaInput) (float64, error) {
	n := 0
	for _, c := range in.Combos {
		if c.SourcePattern == models.PatternCrossElement {
			n++
		}
	}
	return float64(n), nil
}

func avgComboStrength(in *FormulaInput) (float64, error) {
	if len(in.Combos) == 0 {
		return 0, nil
	}
	sum := 0
	for _, c := range in.Combos {
		sum += c.Tier.Strength()
	}
	return float64(sum) / float64(len(in.Combos)), nil
}

func genericRatio(in *FormulaInput) (float64, error) {
	if len(in.Combos) == 0 {
		return 0, nil
	}
	generic := 0
	for _, c := range in.Combos {
		if c.BrandClassification == models.ClassificationGeneric {
			generic++
		}
	}
	return float64(generic) / float64(len(in.Combos)), nil
}

func noiseRatio(in *FormulaInput) (float64, error) {
	if in.RawWordCount == 0 {
		return 0, nil
	}
	return float64(in.DroppedCount) / float64(in.RawWordCount), nil
}

func relevanceDensity(in *FormulaInput) (float64, error) {
	tokens := len(in.TitleTokens) + len(in.SubtitleTokens)
	if tokens == 0 {
		return 0, nil
	}
	sum := 0
	for _, t := range in.TitleTokens {
		sum += t.Relevance
	}
	for _, t := range in.SubtitleTokens {
		sum += t.Relevance
	}
	return float64(sum) / float64(tokens), nil
}
