// internal/engine/combos/generator.go

// Package combos enumerates every contiguous, non-contiguous, and
// cross-field word combination of length 2-4 from one locale's token
// sequences. Generation is deterministic; per-pattern caps truncate by
// relevance, never arbitrarily.
package combos

import (
	"sort"
	"strings"

	"aso-engine/internal/models"
)

const (
	MinComboLength = 2
	MaxComboLength = 4

	// DefaultCapPerPattern bounds each source pattern's output.
	DefaultCapPerPattern = 500
)

type Options struct {
	CapPerPattern int
	// ExistingTexts are combo texts already present in the live metadata,
	// used to set the Exists flag. Matching is case-insensitive.
	ExistingTexts []string
}

type Generator struct {
	cap      int
	existing map[string]bool
}

func NewGenerator(opts Options) *Generator {
	capPerPattern := opts.CapPerPattern
	if capPerPattern <= 0 {
		capPerPattern = DefaultCapPerPattern
	}
	existing := make(map[string]bool, len(opts.ExistingTexts))
	for _, t := range opts.ExistingTexts {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			existing[t] = true
		}
	}
	return &Generator{cap: capPerPattern, existing: existing}
}

// Generate builds the combo set for a single locale. Token sequences must
// all come from that locale's text; sequences from different locales are
// never pooled. keywordTokens may be empty when the hidden keywords field is
// not supplied.
func (g *Generator) Generate(titleTokens, subtitleTokens, keywordTokens []models.Token) []models.Combo {
	// Pattern order is strongest band first, so dedupe by text keeps the
	// strongest source for any repeated combination.
	groups := [][]models.Combo{
		consecutive(titleTokens, models.PatternTitleConsecutive),
		nonconsecutive(titleTokens, models.PatternTitleNonconsecutive),
		crossField(titleTokens, subtitleTokens, models.PatternCrossElement),
		consecutive(subtitleTokens, models.PatternSubtitleConsecutive),
		nonconsecutive(subtitleTokens, models.PatternSubtitleNonconsecutive),
		append(
			crossField(titleTokens, keywordTokens, models.PatternCrossKeywords),
			crossField(subtitleTokens, keywordTokens, models.PatternCrossKeywords)...),
		allSubsets(keywordTokens, models.PatternKeywordNonconsecutive),
	}

	seen := make(map[string]bool)
	var out []models.Combo
	for _, group := range groups {
		for _, c := range truncate(group, g.cap) {
			if seen[c.Text] {
				continue
			}
			seen[c.Text] = true
			c.Exists = g.existing[c.Text]
			out = append(out, c)
		}
	}
	return out
}

// truncate keeps the highest-value combos when a pattern overflows its cap.
// The sort is stable and fully keyed so repeated runs produce identical sets.
func truncate(group []models.Combo, limit int) []models.Combo {
	if len(group) <= limit {
		return group
	}
	sort.SliceStable(group, func(i, j int) bool {
		ri, rj := group[i].TotalRelevance(), group[j].TotalRelevance()
		if ri != rj {
			return ri > rj
		}
		// Strategic value grows with combo length.
		if group[i].Length != group[j].Length {
			return group[i].Length > group[j].Length
		}
		return group[i].Text < group[j].Text
	})
	return group[:limit]
}

// consecutive yields every contiguous window of length 2-4.
func consecutive(tokens []models.Token, pattern models.SourcePattern) []models.Combo {
	var out []models.Combo
	for size := MinComboLength; size <= MaxComboLength; size++ {
		for start := 0; start+size <= len(tokens); start++ {
			out = append(out, build(tokens[start:start+size], pattern))
		}
	}
	return out
}

// nonconsecutive yields every order-preserving subset of length 2-4 that is
// not a contiguous window (those belong to the consecutive pattern).
func nonconsecutive(tokens []models.Token, pattern models.SourcePattern) []models.Combo {
	var out []models.Combo
	forEachSubset(len(tokens), func(idx []int) {
		if idx[len(idx)-1]-idx[0] == len(idx)-1 {
			return // contiguous
		}
		out = append(out, build(pick(tokens, idx), pattern))
	})
	return out
}

// allSubsets yields every order-preserving subset of length 2-4, contiguous
// or not. Used for the keywords field, where word order carries no signal.
func allSubsets(tokens []models.Token, pattern models.SourcePattern) []models.Combo {
	var out []models.Combo
	forEachSubset(len(tokens), func(idx []int) {
		out = append(out, build(pick(tokens, idx), pattern))
	})
	return out
}

// crossField pairs one-or-more tokens from each of two fields, first field's
// tokens leading. Total length stays within 2-4.
func crossField(first, second []models.Token, pattern models.SourcePattern) []models.Combo {
	if len(first) == 0 || len(second) == 0 {
		return nil
	}
	var out []models.Combo
	forEachSized(len(first), 1, MaxComboLength-1, func(fi []int) {
		remaining := MaxComboLength - len(fi)
		forEachSized(len(second), 1, remaining, func(si []int) {
			merged := append(pick(first, fi), pick(second, si)...)
			if len(merged) < MinComboLength {
				return
			}
			out = append(out, build(merged, pattern))
		})
	})
	return out
}

func build(tokens []models.Token, pattern models.SourcePattern) models.Combo {
	words := make([]string, len(tokens))
	kws := make([]models.Token, len(tokens))
	locale := ""
	for i, tok := range tokens {
		words[i] = tok.Text
		kws[i] = tok
		locale = tok.Locale
	}
	return models.Combo{
		Text:          strings.Join(words, " "),
		Keywords:      kws,
		Length:        len(tokens),
		SourcePattern: pattern,
		Locale:        locale,
	}
}

func pick(tokens []models.Token, idx []int) []models.Token {
	out := make([]models.Token, len(idx))
	for i, j := range idx {
		out[i] = tokens[j]
	}
	return out
}

// forEachSubset visits index combinations of every size 2-4 in lexicographic
// order.
func forEachSubset(n int, fn func(idx []int)) {
	forEachSized(n, MinComboLength, MaxComboLength, fn)
}

// forEachSized visits index combinations of sizes minSize..maxSize in
// lexicographic order. The callback must copy idx if it retains it.
func forEachSized(n, minSize, maxSize int, fn func(idx []int)) {
	for size := minSize; size <= maxSize && size <= n; size++ {
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		for {
			fn(idx)
			// Advance to the next combination.
			i := size - 1
			for i >= 0 && idx[i] == n-size+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < size; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
