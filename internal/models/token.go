// internal/models/token.go
package models

// FieldRole identifies which metadata field a token was drawn from.
type FieldRole string

const (
	FieldTitle    FieldRole = "title"
	FieldSubtitle FieldRole = "subtitle"
	FieldKeywords FieldRole = "keywords"
)

// Relevance weights assigned by the tokenizer lexicon.
const (
	RelevanceNoise   = 0
	RelevanceGeneric = 1
	RelevanceDomain  = 2
	RelevanceCore    = 3
)

// Token is a normalized word with its relevance weight. Tokens are produced
// fresh per audit run and never persisted.
type Token struct {
	Text        string    `json:"text"`
	Relevance   int       `json:"relevance"` // 0..3
	SourceField FieldRole `json:"sourceField"`
	Locale      string    `json:"locale,omitempty"`
}
