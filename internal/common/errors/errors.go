// internal/common/errors/errors.go

// Package errors provides standardized error handling for the audit engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Registry / configuration errors are detected at load time and fail fast.
// Evaluation-time errors are isolated per KPI and never abort a vector.
const (
	ErrCodeRegistryReadFailed     ErrorCode = "REGISTRY_READ_FAILED"
	ErrCodeRegistrySchemaInvalid  ErrorCode = "REGISTRY_SCHEMA_INVALID"
	ErrCodeRegistryBoundsInvalid  ErrorCode = "REGISTRY_BOUNDS_INVALID"
	ErrCodeRegistryWeightsInvalid ErrorCode = "REGISTRY_WEIGHTS_INVALID"
	ErrCodeRegistryDuplicateKpi   ErrorCode = "REGISTRY_DUPLICATE_KPI"
	ErrCodeRegistryUnknownFamily  ErrorCode = "REGISTRY_UNKNOWN_FAMILY"

	ErrCodeKpiFormulaMissing ErrorCode = "KPI_FORMULA_MISSING"
	ErrCodeKpiFormulaFailed  ErrorCode = "KPI_FORMULA_FAILED"

	ErrCodeInputParseFailed  ErrorCode = "INPUT_PARSE_FAILED"
	ErrCodeBrandAliasInvalid ErrorCode = "BRAND_ALIAS_INVALID"

	ErrCodeLocaleMixing ErrorCode = "LOCALE_MIXING"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewRegistryReadFailedError creates an error for a registry document that could not be read.
func NewRegistryReadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryReadFailed,
		Message:   "KPI registry document could not be read",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistrySchemaInvalidError creates an error for a registry document failing schema validation.
func NewRegistrySchemaInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistrySchemaInvalid,
		Message:   "KPI registry document failed schema validation",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryBoundsInvalidError creates an error for a KPI definition with malformed bounds.
func NewRegistryBoundsInvalidError(kpiID, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryBoundsInvalid,
		Message:   "KPI definition has malformed bounds",
		Details:   fmt.Sprintf("kpiId: %s, %s", kpiID, details),
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryWeightsInvalidError creates an error for weights that do not sum to 1.0.
func NewRegistryWeightsInvalidError(scope string, sum float64) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryWeightsInvalid,
		Message:   "registry weights must sum to 1.0",
		Details:   fmt.Sprintf("scope: %s, sum: %.6f", scope, sum),
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryDuplicateKpiError creates an error for a duplicate KPI id.
func NewRegistryDuplicateKpiError(kpiID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryDuplicateKpi,
		Message:   "duplicate KPI id in registry",
		Details:   fmt.Sprintf("kpiId: %s", kpiID),
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryUnknownFamilyError creates an error for a KPI referencing an undeclared family.
func NewRegistryUnknownFamilyError(kpiID, familyID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryUnknownFamily,
		Message:   "KPI references an undeclared family",
		Details:   fmt.Sprintf("kpiId: %s, familyId: %s", kpiID, familyID),
		Timestamp: time.Now().UTC(),
	}
}

// NewKpiFormulaMissingError creates an error for a registry id with no bound formula.
func NewKpiFormulaMissingError(kpiID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeKpiFormulaMissing,
		Message:   "no formula registered for KPI id",
		Details:   fmt.Sprintf("kpiId: %s", kpiID),
		Timestamp: time.Now().UTC(),
	}
}

// NewKpiFormulaFailedError creates an error for a formula that failed during evaluation.
func NewKpiFormulaFailedError(kpiID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeKpiFormulaFailed,
		Message:   "KPI formula evaluation failed",
		Details:   fmt.Sprintf("kpiId: %s, error: %s", kpiID, err.Error()),
		Timestamp: time.Now().UTC(),
	}
}

// NewInputParseFailedError creates an error for unparseable caller input.
func NewInputParseFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputParseFailed,
		Message:   "audit input could not be parsed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewBrandAliasInvalidError creates an error for a rejected brand alias entry.
func NewBrandAliasInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrandAliasInvalid,
		Message:   "brand alias list entry is invalid",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// LocaleMixingMessage builds the panic message for a locale-isolation breach.
// A combo whose tokens span two locales is a programming defect, not a
// recoverable runtime condition.
func LocaleMixingMessage(comboText, comboLocale, tokenLocale string) string {
	return fmt.Sprintf("%s: combo %q declared locale %q but contains a token from locale %q",
		ErrCodeLocaleMixing, comboText, comboLocale, tokenLocale)
}
