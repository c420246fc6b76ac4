// internal/engine/audit/service_test.go
package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aso-engine/internal/common/errors"
	"aso-engine/internal/common/logger"
	"aso-engine/internal/models"
	"aso-engine/pkg/registry"
)

func createTestService(t *testing.T, opts Options) *Service {
	t.Helper()
	reg, err := registry.LoadDefault()
	require.NoError(t, err)
	return NewService(reg, opts, logger.NewTestLogger(t))
}

func createPimsleurInput() *models.AuditInput {
	return &models.AuditInput{
		Title:     "Pimsleur: Language Learning",
		Subtitle:  "Speak Spanish, French & More",
		Locale:    "en-US",
		Platform:  models.PlatformPrimary,
		BrandName: "Pimsleur",
	}
}

func findCombo(t *testing.T, combos []models.Combo, text string) models.Combo {
	t.Helper()
	for _, c := range combos {
		if c.Text == text {
			return c
		}
	}
	t.Fatalf("combo %q not found", text)
	return models.Combo{}
}

func TestExecute_FullPipeline(t *testing.T) {
	svc := createTestService(t, Options{})

	result, err := svc.Execute(context.Background(), createPimsleurInput())

	require.NoError(t, err)
	assert.NotEmpty(t, result.AuditID)
	assert.Equal(t, "en-US", result.Locale)
	assert.Equal(t, models.PlatformPrimary, result.Platform)
	assert.False(t, result.GeneratedAt.IsZero())

	combos := result.ComboAnalysis.AllPossibleCombos
	require.NotEmpty(t, combos)

	// The strongest pattern for "language learning" is the title window.
	c := findCombo(t, combos, "language learning")
	assert.Equal(t, models.TierTitleConsecutive, c.Tier)
	assert.Equal(t, models.ClassificationGeneric, c.BrandClassification)

	// Combos containing the brand word classify as brand.
	c = findCombo(t, combos, "pimsleur language")
	assert.Equal(t, models.ClassificationBrand, c.BrandClassification)
	assert.Equal(t, "pimsleur", c.MatchedBrandAlias)

	// Cross-field pairing picks up subtitle words.
	c = findCombo(t, combos, "language spanish")
	assert.Equal(t, models.TierCrossElement, c.Tier)
}

func TestExecute_KpiVector(t *testing.T) {
	svc := createTestService(t, Options{})

	result, err := svc.Execute(context.Background(), createPimsleurInput())
	require.NoError(t, err)

	kpis := result.KpiResult
	assert.Equal(t, "v1", kpis.Version)
	assert.Len(t, kpis.Vector, len(kpis.Kpis))

	// Three raw title words sit inside the 4±1 target band.
	wordCount := kpis.Kpis["title_word_count"]
	assert.False(t, wordCount.Failed)
	assert.Equal(t, 3.0, wordCount.RawValue)
	assert.Equal(t, 100.0, wordCount.NormalizedValue)

	for id, r := range kpis.Kpis {
		assert.Falsef(t, r.Failed, "kpi %s unexpectedly failed", id)
		assert.GreaterOrEqualf(t, r.NormalizedValue, 0.0, "kpi %s below range", id)
		assert.LessOrEqualf(t, r.NormalizedValue, 100.0, "kpi %s above range", id)
	}
	assert.GreaterOrEqual(t, kpis.OverallScore, 0.0)
	assert.LessOrEqual(t, kpis.OverallScore, 100.0)
}

func TestExecute_ExistingCombosSplit(t *testing.T) {
	svc := createTestService(t, Options{})
	in := createPimsleurInput()
	in.ExistingCombos = []string{"language learning"}

	result, err := svc.Execute(context.Background(), in)
	require.NoError(t, err)

	analysis := result.ComboAnalysis
	require.Len(t, analysis.ExistingCombos, 1)
	assert.Equal(t, "language learning", analysis.ExistingCombos[0].Text)

	for _, c := range analysis.MissingCombos {
		assert.False(t, c.Exists)
		assert.NotEqual(t, "language learning", c.Text)
	}

	assert.Equal(t, analysis.Stats.Total, len(analysis.MissingCombos)+len(analysis.ExistingCombos))
	assert.Equal(t, 1, analysis.Stats.Existing)
}

func TestExecute_RecommendLimit(t *testing.T) {
	svc := createTestService(t, Options{RecommendLimit: 3})

	result, err := svc.Execute(context.Background(), createPimsleurInput())
	require.NoError(t, err)

	recommended := result.ComboAnalysis.RecommendedToAdd
	require.Len(t, recommended, 3)

	// Recommendations are the strongest missing combos.
	for _, c := range recommended {
		assert.False(t, c.Exists)
	}
	for i := 1; i < len(recommended); i++ {
		assert.GreaterOrEqual(t,
			recommended[i-1].Tier.Strength(), recommended[i].Tier.Strength())
	}
}

func TestExecute_KeywordsField(t *testing.T) {
	svc := createTestService(t, Options{})
	in := createPimsleurInput()
	in.Keywords = "vocabulary,grammar"

	result, err := svc.Execute(context.Background(), in)
	require.NoError(t, err)

	c := findCombo(t, result.ComboAnalysis.AllPossibleCombos, "vocabulary grammar")
	assert.Equal(t, models.TierKeywordNonconsecutive, c.Tier)

	c = findCombo(t, result.ComboAnalysis.AllPossibleCombos, "language vocabulary")
	assert.Equal(t, models.TierCrossKeywords, c.Tier)
}

func TestExecute_PrecomputedTokensSkipTokenization(t *testing.T) {
	svc := createTestService(t, Options{})
	in := createPimsleurInput()
	in.Tokens = &models.PrecomputedTokens{
		Title: []models.Token{
			{Text: "custom", Relevance: models.RelevanceCore, SourceField: models.FieldTitle, Locale: "en-US"},
			{Text: "tokens", Relevance: models.RelevanceCore, SourceField: models.FieldTitle, Locale: "en-US"},
		},
		Subtitle: []models.Token{},
	}

	result, err := svc.Execute(context.Background(), in)
	require.NoError(t, err)

	c := findCombo(t, result.ComboAnalysis.AllPossibleCombos, "custom tokens")
	assert.Equal(t, models.TierTitleConsecutive, c.Tier)
}

func TestExecute_DefaultsApplied(t *testing.T) {
	svc := createTestService(t, Options{})
	in := &models.AuditInput{Title: "Budget Planner"}

	result, err := svc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "en-US", result.Locale)
	assert.Equal(t, models.PlatformPrimary, result.Platform)
}

func TestExecute_Deterministic(t *testing.T) {
	svc := createTestService(t, Options{})

	first, err := svc.Execute(context.Background(), createPimsleurInput())
	require.NoError(t, err)
	second, err := svc.Execute(context.Background(), createPimsleurInput())
	require.NoError(t, err)

	assert.Equal(t, first.ComboAnalysis, second.ComboAnalysis)
	assert.Equal(t, first.KpiResult, second.KpiResult)
	assert.NotEqual(t, first.AuditID, second.AuditID)
}

func TestExecute_EmptyMetadataIsNotAnError(t *testing.T) {
	svc := createTestService(t, Options{})

	result, err := svc.Execute(context.Background(), &models.AuditInput{Locale: "en-US"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AuditID)
	assert.Empty(t, result.ComboAnalysis.AllPossibleCombos)
	assert.Empty(t, result.ComboAnalysis.MissingCombos)
	assert.Empty(t, result.ComboAnalysis.RecommendedToAdd)
	assert.Zero(t, result.ComboAnalysis.Stats.Total)

	// The KPI vector stays usable: full length, every value in range, no
	// formula failures.
	kpis := result.KpiResult
	assert.Len(t, kpis.Vector, len(kpis.Kpis))
	require.NotEmpty(t, kpis.Kpis)
	for id, r := range kpis.Kpis {
		assert.Falsef(t, r.Failed, "kpi %s failed on empty input", id)
		assert.GreaterOrEqualf(t, r.NormalizedValue, 0.0, "kpi %s below range", id)
		assert.LessOrEqualf(t, r.NormalizedValue, 100.0, "kpi %s above range", id)
	}
}

func TestExecute_InputValidation(t *testing.T) {
	svc := createTestService(t, Options{})
	ctx := context.Background()

	tests := []struct {
		name string
		in   *models.AuditInput
		code errors.ErrorCode
	}{
		{"nil input", nil, errors.ErrCodeInputParseFailed},
		{"unknown platform", &models.AuditInput{Title: "App", Platform: "desktop"}, errors.ErrCodeInputParseFailed},
		{
			"oversized alias",
			&models.AuditInput{
				Title:        "App",
				BrandAliases: []string{string(make([]rune, 65))},
			},
			errors.ErrCodeBrandAliasInvalid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Execute(ctx, tc.in)
			require.Error(t, err)
			var stdErr *errors.StandardError
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, tc.code, stdErr.Code)
		})
	}
}
