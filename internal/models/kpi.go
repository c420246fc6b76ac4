// internal/models/kpi.go
package models

// KpiResult is one evaluated metric.
type KpiResult struct {
	ID              string  `json:"id"`
	RawValue        float64 `json:"rawValue"`
	NormalizedValue float64 `json:"normalizedValue"` // 0..100
	Failed          bool    `json:"failed,omitempty"`
	FailureCode     string  `json:"failureCode,omitempty"`
}

// KpiFamilyResult is the weighted mean of a family's member KPIs.
type KpiFamilyResult struct {
	ID     string  `json:"id"`
	Score  float64 `json:"score"` // 0..100
	Weight float64 `json:"weight"`
}

// KpiEngineResult is the full scored output for one evaluation. Vector order
// matches registry order, so vectors from the same registry version are
// directly comparable.
type KpiEngineResult struct {
	Version      string                     `json:"version"`
	Vector       []float64                  `json:"vector"`
	Kpis         map[string]KpiResult       `json:"kpis"`
	Families     map[string]KpiFamilyResult `json:"families"`
	OverallScore float64                    `json:"overallScore"`
}
