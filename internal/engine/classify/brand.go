// internal/engine/classify/brand.go
package classify

import (
	"strings"

	"aso-engine/internal/models"
)

// BrandMatcher flags combos containing the app's brand name or an alias.
// Matching is case-insensitive and whole-word only: "cat" never matches
// inside "category". The split is boolean; there is no partial-brand notion.
type BrandMatcher struct {
	// word -> the alias (or brand name) that contributed it, kept for
	// reporting which alias triggered a match.
	words map[string]string
}

// NewBrandMatcher builds a matcher from the canonical brand name and its
// alias list. Empty or blank aliases are ignored so they can never match
// everything.
func NewBrandMatcher(brandName string, aliases []string) *BrandMatcher {
	m := &BrandMatcher{words: make(map[string]string)}
	m.add(brandName)
	for _, alias := range aliases {
		m.add(alias)
	}
	return m
}

func (m *BrandMatcher) add(alias string) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return
	}
	folded := strings.ToLower(alias)
	for _, word := range strings.Fields(folded) {
		if _, taken := m.words[word]; !taken {
			m.words[word] = folded
		}
	}
}

// Match returns the alias that matches any of the combo's constituent words,
// or "" when the combo is generic.
func (m *BrandMatcher) Match(c models.Combo) string {
	for _, tok := range c.Keywords {
		if alias, ok := m.words[strings.ToLower(tok.Text)]; ok {
			return alias
		}
	}
	return ""
}

// ClassifyBrand stamps every combo as brand or generic. Exactly one of the
// two holds for every combo.
func ClassifyBrand(combos []models.Combo, matcher *BrandMatcher) {
	for i := range combos {
		if alias := matcher.Match(combos[i]); alias != "" {
			combos[i].BrandClassification = models.ClassificationBrand
			combos[i].MatchedBrandAlias = alias
		} else {
			combos[i].BrandClassification = models.ClassificationGeneric
			combos[i].MatchedBrandAlias = ""
		}
	}
}
