// internal/models/combo.go
package models

// SourcePattern tags how a combo's words are laid out across fields.
type SourcePattern string

const (
	PatternTitleConsecutive      SourcePattern = "title_consecutive"
	PatternTitleNonconsecutive   SourcePattern = "title_nonconsecutive"
	PatternCrossElement          SourcePattern = "cross_element"
	PatternSubtitleConsecutive   SourcePattern = "subtitle_consecutive"
	PatternSubtitleNonconsecutive SourcePattern = "subtitle_nonconsecutive"
	PatternCrossKeywords         SourcePattern = "cross_keywords"
	PatternKeywordNonconsecutive SourcePattern = "keyword_nonconsecutive"
)

// Tier is the closed, totally ordered strength classification of a combo.
// Higher values rank strictly stronger; the numeric value doubles as the
// rank scale used by fusion and the diff engine.
type Tier int

const (
	TierKeywordNonconsecutive Tier = iota + 1
	TierCrossKeywords
	TierSubtitleNonconsecutive
	TierSubtitleConsecutive
	TierCrossElement
	TierTitleNonconsecutive
	TierTitleConsecutive
)

// Strength returns the numeric rank of the tier (1 weakest .. 7 strongest).
func (t Tier) Strength() int { return int(t) }

func (t Tier) String() string {
	switch t {
	case TierTitleConsecutive:
		return "title_consecutive"
	case TierTitleNonconsecutive:
		return "title_nonconsecutive"
	case TierCrossElement:
		return "cross_element"
	case TierSubtitleConsecutive:
		return "subtitle_consecutive"
	case TierSubtitleNonconsecutive:
		return "subtitle_nonconsecutive"
	case TierCrossKeywords:
		return "cross_keywords"
	case TierKeywordNonconsecutive:
		return "keyword_nonconsecutive"
	default:
		return "unknown"
	}
}

// BrandClassification is a boolean split, not a spectrum.
type BrandClassification string

const (
	ClassificationBrand   BrandClassification = "brand"
	ClassificationGeneric BrandClassification = "generic"
)

// Combo is a 2-4 word keyword combination drawn from metadata text.
// Combo text is unique within one generation pass for one locale;
// cross-locale duplicates stay distinct and are never merged.
type Combo struct {
	Text                string              `json:"text"`
	Keywords            []Token             `json:"keywords"`
	Length              int                 `json:"length"` // 2..4
	SourcePattern       SourcePattern       `json:"sourcePattern"`
	Tier                Tier                `json:"tier"`
	BrandClassification BrandClassification `json:"brandClassification"`
	MatchedBrandAlias   string              `json:"matchedBrandAlias,omitempty"`
	Exists              bool                `json:"exists"`
	Locale              string              `json:"locale,omitempty"`
}

// TotalRelevance sums the relevance weights of the constituent tokens.
func (c Combo) TotalRelevance() int {
	sum := 0
	for _, k := range c.Keywords {
		sum += k.Relevance
	}
	return sum
}

// ComboStats summarizes a generation pass.
type ComboStats struct {
	Total    int            `json:"total"`
	ByTier   map[string]int `json:"byTier"`
	Brand    int            `json:"brand"`
	Generic  int            `json:"generic"`
	Existing int            `json:"existing"`
	Missing  int            `json:"missing"`
}

// ComboAnalysis is the combo-side output of one audit run.
type ComboAnalysis struct {
	AllPossibleCombos []Combo    `json:"allPossibleCombos"`
	MissingCombos     []Combo    `json:"missingCombos"`
	ExistingCombos    []Combo    `json:"existingCombos"`
	RecommendedToAdd  []Combo    `json:"recommendedToAdd"`
	Stats             ComboStats `json:"stats"`
}
