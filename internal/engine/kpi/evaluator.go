// internal/engine/kpi/evaluator.go

// Package kpi converts raw metric values into a normalized, versioned 0-100
// vector with weighted family scores and one overall score. Identical input
// always yields a bit-identical vector for a given registry version.
package kpi

import (
	"fmt"
	"math"

	"aso-engine/internal/common/errors"
	"aso-engine/internal/models"
	"aso-engine/pkg/registry"
)

// Evaluator scores a FormulaInput against an immutable registry. It holds no
// per-call state and is safe for concurrent use.
type Evaluator struct {
	registry *registry.KpiRegistry
	formulas map[string]FormulaFunc
}

func NewEvaluator(reg *registry.KpiRegistry) *Evaluator {
	return &Evaluator{registry: reg, formulas: Formulas}
}

// NewEvaluatorWithFormulas allows swapping the formula table, mainly for
// tests that need a failing or custom formula.
func NewEvaluatorWithFormulas(reg *registry.KpiRegistry, formulas map[string]FormulaFunc) *Evaluator {
	return &Evaluator{registry: reg, formulas: formulas}
}

// Evaluate computes the full engine result. A broken formula never aborts
// the vector: the KPI is recorded as a zero contribution with a failure flag
// and the rest of the vector stays usable.
func (e *Evaluator) Evaluate(in *FormulaInput) models.KpiEngineResult {
	result := models.KpiEngineResult{
		Version:  e.registry.Version,
		Vector:   make([]float64, 0, e.registry.Size()),
		Kpis:     make(map[string]models.KpiResult, e.registry.Size()),
		Families: make(map[string]models.KpiFamilyResult, len(e.registry.Families)),
	}

	familyScores := make(map[string]float64, len(e.registry.Families))

	for _, def := range e.registry.Kpis {
		kpiRes := e.evaluateOne(&def, in)
		result.Kpis[def.ID] = kpiRes
		result.Vector = append(result.Vector, kpiRes.NormalizedValue)
		familyScores[def.FamilyID] += kpiRes.NormalizedValue * def.WeightWithinFamily
	}

	overall := 0.0
	for _, fam := range e.registry.Families {
		score := familyScores[fam.ID]
		result.Families[fam.ID] = models.KpiFamilyResult{
			ID:     fam.ID,
			Score:  score,
			Weight: fam.Weight,
		}
		overall += score * fam.Weight
	}
	result.OverallScore = overall

	return result
}

func (e *Evaluator) evaluateOne(def *registry.KpiDefinition, in *FormulaInput) models.KpiResult {
	formula, ok := e.formulas[def.ID]
	if !ok {
		return failedResult(def.ID, errors.NewKpiFormulaMissingError(def.ID))
	}

	raw, err := runFormula(formula, in)
	if err != nil {
		return failedResult(def.ID, errors.NewKpiFormulaFailedError(def.ID, err))
	}

	return models.KpiResult{
		ID:              def.ID,
		RawValue:        raw,
		NormalizedValue: Normalize(def, raw),
	}
}

// failedResult records a KPI as a zero contribution carrying the structured
// failure code.
func failedResult(id string, failure *errors.StandardError) models.KpiResult {
	return models.KpiResult{
		ID:          id,
		Failed:      true,
		FailureCode: string(failure.Code),
	}
}

// runFormula isolates formula panics so one broken metric definition cannot
// take down the whole vector.
func runFormula(formula FormulaFunc, in *FormulaInput) (raw float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("formula panic: %v", r)
		}
	}()
	return formula(in)
}

// Normalize maps a raw value to 0-100 using the definition's direction.
// Out-of-bounds raw inputs clamp; they never overflow the range.
func Normalize(def *registry.KpiDefinition, value float64) float64 {
	span := def.MaxValue - def.MinValue

	switch def.Direction {
	case registry.HigherIsBetter:
		return clamp(100 * (value - def.MinValue) / span)

	case registry.LowerIsBetter:
		return clamp(100 * (def.MaxValue - value) / span)

	case registry.TargetRange:
		target := *def.TargetValue
		tolerance := 0.0
		if def.TargetTolerance != nil {
			tolerance = *def.TargetTolerance
		}
		distance := math.Abs(value - target)
		if distance <= tolerance {
			return 100
		}
		maxDistance := math.Max(def.MaxValue-target, target-def.MinValue)
		if maxDistance <= 0 {
			return 0
		}
		return math.Max(0, 100*(maxDistance-distance)/maxDistance)
	}

	return 0
}

func clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), 100)
}
