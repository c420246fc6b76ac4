// internal/models/locale.go
package models

// LocaleMetadata is the raw per-locale metadata text supplied by the caller.
type LocaleMetadata struct {
	Locale   string `json:"locale"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Keywords string `json:"keywords,omitempty"` // comma-separated keyword field
}

// LocaleComboSet is the independently generated combo set for one locale.
type LocaleComboSet struct {
	Locale string     `json:"locale"`
	Combos []Combo    `json:"combos"`
	Stats  ComboStats `json:"stats"`
}

// KeywordRank is the best rank a keyword achieves across all locales,
// with the locale that achieved it.
type KeywordRank struct {
	Keyword      string `json:"keyword"`
	Tier         Tier   `json:"tier"`
	Rank         int    `json:"rank"` // Tier.Strength() of the best tier
	SourceLocale string `json:"sourceLocale"`
	LocaleCount  int    `json:"localeCount"` // locales in which the keyword appears
}

// Severity of a coverage recommendation.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// SuggestionType is the actionable category of a coverage recommendation.
type SuggestionType string

const (
	SuggestionAdd          SuggestionType = "add"
	SuggestionMove         SuggestionType = "move"
	SuggestionRedistribute SuggestionType = "redistribute"
)

// CoverageRecommendation flags a coverage problem found during fusion.
type CoverageRecommendation struct {
	Severity   Severity       `json:"severity"`
	Suggestion SuggestionType `json:"suggestion"`
	Locale     string         `json:"locale"`
	Keyword    string         `json:"keyword,omitempty"`
	Message    string         `json:"message"`
}

// MultiLocaleIndexation is the fused multi-locale output.
type MultiLocaleIndexation struct {
	Locales         []LocaleComboSet         `json:"locales"`
	FusedRanking    map[string]KeywordRank   `json:"fusedRanking"`
	Recommendations []CoverageRecommendation `json:"recommendations"`
}
