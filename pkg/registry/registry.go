// pkg/registry/registry.go

// Package registry loads and validates the versioned KPI registry document.
// A registry is read-only after load; changing any bound, weight, or formula
// requires a new version identifier so historical vectors stay comparable.
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"aso-engine/internal/common/errors"
)

//go:embed kpi_registry_v1.json
var defaultDocument []byte

const weightEpsilon = 1e-6

// LoadDefault loads the embedded v1 registry.
func LoadDefault() (*KpiRegistry, error) {
	return Parse(defaultDocument)
}

// LoadRegistry loads a registry document from disk.
func LoadRegistry(path string) (*KpiRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewRegistryReadFailedError(path, err)
	}
	return Parse(data)
}

// Parse validates a registry document (schema first, then semantics) and
// returns an indexed, immutable registry. Malformed documents fail fast here
// rather than producing NaN/Inf at evaluation time.
func Parse(data []byte) (*KpiRegistry, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaDocument)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, errors.NewRegistrySchemaInvalidError(err.Error())
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, errors.NewRegistrySchemaInvalidError(strings.Join(msgs, "; "))
	}

	var reg KpiRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, errors.NewRegistrySchemaInvalidError(err.Error())
	}

	if err := validate(&reg); err != nil {
		return nil, err
	}

	reg.byID = make(map[string]*KpiDefinition, len(reg.Kpis))
	for i := range reg.Kpis {
		reg.byID[reg.Kpis[i].ID] = &reg.Kpis[i]
	}
	reg.byFamily = make(map[string]*KpiFamily, len(reg.Families))
	for i := range reg.Families {
		reg.byFamily[reg.Families[i].ID] = &reg.Families[i]
	}

	return &reg, nil
}

func validate(reg *KpiRegistry) error {
	familyWeights := make(map[string]float64, len(reg.Families))
	familySum := 0.0
	for _, fam := range reg.Families {
		if _, dup := familyWeights[fam.ID]; dup {
			return errors.NewRegistryWeightsInvalidError(
				fmt.Sprintf("family %s declared twice", fam.ID), fam.Weight)
		}
		familyWeights[fam.ID] = 0
		familySum += fam.Weight
	}
	if math.Abs(familySum-1.0) > weightEpsilon {
		return errors.NewRegistryWeightsInvalidError("families", familySum)
	}

	seen := make(map[string]bool, len(reg.Kpis))
	for _, def := range reg.Kpis {
		if seen[def.ID] {
			return errors.NewRegistryDuplicateKpiError(def.ID)
		}
		seen[def.ID] = true

		if _, ok := familyWeights[def.FamilyID]; !ok {
			return errors.NewRegistryUnknownFamilyError(def.ID, def.FamilyID)
		}

		if def.MaxValue <= def.MinValue {
			return errors.NewRegistryBoundsInvalidError(def.ID,
				fmt.Sprintf("maxValue (%v) must exceed minValue (%v)", def.MaxValue, def.MinValue))
		}

		if def.Direction == TargetRange {
			if def.TargetValue == nil {
				return errors.NewRegistryBoundsInvalidError(def.ID, "target_range requires targetValue")
			}
			if *def.TargetValue < def.MinValue || *def.TargetValue > def.MaxValue {
				return errors.NewRegistryBoundsInvalidError(def.ID,
					fmt.Sprintf("targetValue (%v) outside [%v, %v]", *def.TargetValue, def.MinValue, def.MaxValue))
			}
			if def.TargetTolerance != nil && *def.TargetTolerance < 0 {
				return errors.NewRegistryBoundsInvalidError(def.ID, "targetTolerance must be >= 0")
			}
		}

		familyWeights[def.FamilyID] += def.WeightWithinFamily
	}

	for famID, sum := range familyWeights {
		if math.Abs(sum-1.0) > weightEpsilon {
			return errors.NewRegistryWeightsInvalidError("family "+famID, sum)
		}
	}

	return nil
}
