// pkg/registry/schema.go
package registry

// Direction selects the normalization strategy for a KPI.
type Direction string

const (
	HigherIsBetter Direction = "higher_is_better"
	LowerIsBetter  Direction = "lower_is_better"
	TargetRange    Direction = "target_range"
)

// KpiRegistry is a versioned, immutable set of metric definitions. It is
// loaded once at process start and safely shared by concurrent evaluations.
type KpiRegistry struct {
	Version     string          `json:"version"`
	LastUpdated string          `json:"lastUpdated"`
	Families    []KpiFamily     `json:"families"`
	Kpis        []KpiDefinition `json:"kpis"`

	byID     map[string]*KpiDefinition
	byFamily map[string]*KpiFamily
}

// KpiFamily declares a metric family and its cross-family weight.
type KpiFamily struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}

// KpiDefinition is one registry entry. Target fields are only meaningful for
// the target_range direction.
type KpiDefinition struct {
	ID                 string    `json:"id"`
	FamilyID           string    `json:"familyId"`
	Direction          Direction `json:"direction"`
	MinValue           float64   `json:"minValue"`
	MaxValue           float64   `json:"maxValue"`
	TargetValue        *float64  `json:"targetValue,omitempty"`
	TargetTolerance    *float64  `json:"targetTolerance,omitempty"`
	WeightWithinFamily float64   `json:"weightWithinFamily"`
}

// Definition returns the entry for id, or nil.
func (r *KpiRegistry) Definition(id string) *KpiDefinition {
	return r.byID[id]
}

// Family returns the declared family for id, or nil.
func (r *KpiRegistry) Family(id string) *KpiFamily {
	return r.byFamily[id]
}

// Size is the registry's KPI count, which is also the vector length.
func (r *KpiRegistry) Size() int { return len(r.Kpis) }

// schemaDocument is the JSON Schema every registry document must satisfy
// before semantic validation runs.
const schemaDocument = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "families", "kpis"],
  "properties": {
    "version": { "type": "string", "minLength": 1 },
    "lastUpdated": { "type": "string" },
    "families": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "weight"],
        "properties": {
          "id": { "type": "string", "minLength": 1 },
          "weight": { "type": "number", "exclusiveMinimum": 0, "maximum": 1 }
        }
      }
    },
    "kpis": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "familyId", "direction", "minValue", "maxValue", "weightWithinFamily"],
        "properties": {
          "id": { "type": "string", "minLength": 1 },
          "familyId": { "type": "string", "minLength": 1 },
          "direction": { "enum": ["higher_is_better", "lower_is_better", "target_range"] },
          "minValue": { "type": "number" },
          "maxValue": { "type": "number" },
          "targetValue": { "type": "number" },
          "targetTolerance": { "type": "number", "minimum": 0 },
          "weightWithinFamily": { "type": "number", "exclusiveMinimum": 0, "maximum": 1 }
        }
      }
    }
  }
}`
