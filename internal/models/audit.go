// internal/models/audit.go
package models

import "time"

// Platform selects the store character conventions used by KPI formulas.
type Platform string

const (
	PlatformPrimary   Platform = "primary"
	PlatformSecondary Platform = "secondary"
)

// PrecomputedTokens lets callers drive the KPI stage standalone, skipping
// tokenization. Defaults: nil means the engine tokenizes the raw strings.
type PrecomputedTokens struct {
	Title    []Token `json:"title"`
	Subtitle []Token `json:"subtitle"`
}

// AuditInput is the fixed input bundle for one evaluation call. Optional
// fields are explicit; there is no dynamic merging of signal sources.
type AuditInput struct {
	Title          string             `json:"title"`
	Subtitle       string             `json:"subtitle"`
	Keywords       string             `json:"keywords,omitempty"` // comma-separated hidden keywords field
	Locale         string             `json:"locale"`
	Platform       Platform           `json:"platform"`
	BrandName      string             `json:"brandName,omitempty"`
	BrandAliases   []string           `json:"brandAliases,omitempty"`
	ExistingCombos []string           `json:"existingCombos,omitempty"` // combo texts already live
	Tokens         *PrecomputedTokens `json:"tokens,omitempty"`
}

// AuditResult is the full output of one audit run.
type AuditResult struct {
	AuditID       string          `json:"auditId"`
	Locale        string          `json:"locale"`
	Platform      Platform        `json:"platform"`
	ComboAnalysis ComboAnalysis   `json:"comboAnalysis"`
	KpiResult     KpiEngineResult `json:"kpiResult"`
	GeneratedAt   time.Time       `json:"generatedAt"`
	DurationMs    int64           `json:"durationMs"`
}
