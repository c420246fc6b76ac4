// internal/engine/tokenizer/tokenizer.go

// Package tokenizer splits raw metadata text into normalized, relevance
// weighted tokens. Tokenization is deterministic: the same string always
// yields the same token sequence.
package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"aso-engine/internal/models"
)

// Result carries the token sequence plus the counts KPI formulas need.
type Result struct {
	Tokens       []models.Token
	RawWordCount int
	DroppedCount int // stopwords and noise removed from the sequence
}

// Tokenizer case-folds with locale-aware rules and scores tokens against the
// lexicon. Brand words supplied by the caller score as core terms.
type Tokenizer struct {
	locale     string
	caser      cases.Caser
	brandWords map[string]bool
}

func New(locale string, brandWords []string) *Tokenizer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	caser := cases.Lower(tag)

	brands := make(map[string]bool, len(brandWords))
	for _, w := range brandWords {
		w = strings.TrimSpace(caser.String(w))
		if w == "" {
			continue // empty aliases must never match everything
		}
		for _, part := range strings.Fields(w) {
			brands[part] = true
		}
	}

	return &Tokenizer{locale: locale, caser: caser, brandWords: brands}
}

// Tokenize normalizes one field's text. Empty input yields an empty sequence,
// not an error. The keywords field is comma-separated, so commas split too.
func (t *Tokenizer) Tokenize(text string, role models.FieldRole) Result {
	var res Result
	if strings.TrimSpace(text) == "" {
		return res
	}

	words := splitWords(text, role)
	res.RawWordCount = len(words)

	for _, raw := range words {
		word := t.normalize(raw)
		if word == "" || stopWords[word] || isNoise(word) {
			res.DroppedCount++
			continue
		}
		res.Tokens = append(res.Tokens, models.Token{
			Text:        word,
			Relevance:   t.relevance(word),
			SourceField: role,
			Locale:      t.locale,
		})
	}

	return res
}

func splitWords(text string, role models.FieldRole) []string {
	if role == models.FieldKeywords {
		text = strings.ReplaceAll(text, ",", " ")
	}
	return strings.Fields(text)
}

func (t *Tokenizer) normalize(word string) string {
	word = t.caser.String(word)
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// isNoise flags tokens with no ranking value: single characters and bare
// numbers.
func isNoise(word string) bool {
	if len([]rune(word)) < 2 {
		return true
	}
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (t *Tokenizer) relevance(word string) int {
	switch {
	case t.brandWords[word]:
		return models.RelevanceCore
	case coreTerms[word]:
		return models.RelevanceCore
	case domainTerms[word]:
		return models.RelevanceDomain
	default:
		return models.RelevanceGeneric
	}
}
