// internal/engine/diff/diff_test.go
package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aso-engine/internal/models"
)

func makeCombo(text string, tier models.Tier) models.Combo {
	return models.Combo{Text: text, Tier: tier, Length: len([]rune(text))/8 + 2}
}

func TestCompare_AddedAndRemoved(t *testing.T) {
	baseline := []models.Combo{
		makeCombo("learn spanish", models.TierTitleConsecutive),
		makeCombo("old phrase", models.TierSubtitleConsecutive),
	}
	candidate := []models.Combo{
		makeCombo("learn spanish", models.TierTitleConsecutive),
		makeCombo("new phrase", models.TierCrossElement),
	}

	d := Compare(baseline, candidate)

	require.Len(t, d.Added, 1)
	assert.Equal(t, "new phrase", d.Added[0].Text)
	require.Len(t, d.Removed, 1)
	assert.Equal(t, "old phrase", d.Removed[0].Text)
	assert.Empty(t, d.TierUpgrades)
	assert.Empty(t, d.TierDowngrades)
}

func TestCompare_TierTransitions(t *testing.T) {
	baseline := []models.Combo{
		makeCombo("moved up", models.TierSubtitleConsecutive),
		makeCombo("moved down", models.TierTitleConsecutive),
		makeCombo("unchanged", models.TierCrossElement),
	}
	candidate := []models.Combo{
		makeCombo("moved up", models.TierTitleConsecutive),
		makeCombo("moved down", models.TierCrossElement),
		makeCombo("unchanged", models.TierCrossElement),
	}

	d := Compare(baseline, candidate)

	require.Len(t, d.TierUpgrades, 1)
	up := d.TierUpgrades[0]
	assert.Equal(t, "moved up", up.Combo.Text)
	assert.Equal(t, models.TierSubtitleConsecutive, up.FromTier)
	assert.Equal(t, models.TierTitleConsecutive, up.ToTier)
	assert.Equal(t, 3, up.Improvement)

	require.Len(t, d.TierDowngrades, 1)
	down := d.TierDowngrades[0]
	assert.Equal(t, "moved down", down.Combo.Text)
	assert.Equal(t, -2, down.Improvement)

	assert.Empty(t, d.Added)
	assert.Empty(t, d.Removed)
}

func TestCompare_Symmetry(t *testing.T) {
	a := []models.Combo{
		makeCombo("only in a", models.TierTitleConsecutive),
		makeCombo("shared", models.TierCrossElement),
	}
	b := []models.Combo{
		makeCombo("only in b", models.TierSubtitleConsecutive),
		makeCombo("shared", models.TierCrossElement),
	}

	forward := Compare(a, b)
	backward := Compare(b, a)

	assert.Equal(t, forward.Added, backward.Removed)
	assert.Equal(t, forward.Removed, backward.Added)
}

func TestCompare_UpgradeDowngradeMirror(t *testing.T) {
	a := []models.Combo{makeCombo("shifts", models.TierKeywordNonconsecutive)}
	b := []models.Combo{makeCombo("shifts", models.TierTitleConsecutive)}

	forward := Compare(a, b)
	backward := Compare(b, a)

	require.Len(t, forward.TierUpgrades, 1)
	require.Len(t, backward.TierDowngrades, 1)
	assert.Equal(t, forward.TierUpgrades[0].Improvement, -backward.TierDowngrades[0].Improvement)
}

func TestCompare_DeterministicOrdering(t *testing.T) {
	candidate := []models.Combo{
		{Text: "zeta pair", Tier: models.TierCrossElement, Length: 2},
		{Text: "alpha pair", Tier: models.TierCrossElement, Length: 2},
		{Text: "strong pair", Tier: models.TierTitleConsecutive, Length: 2},
		{Text: "long alpha triple", Tier: models.TierCrossElement, Length: 3},
	}

	d := Compare(nil, candidate)

	require.Len(t, d.Added, 4)
	// Strongest tier first, then shorter combos, then lexicographic.
	assert.Equal(t, "strong pair", d.Added[0].Text)
	assert.Equal(t, "alpha pair", d.Added[1].Text)
	assert.Equal(t, "zeta pair", d.Added[2].Text)
	assert.Equal(t, "long alpha triple", d.Added[3].Text)

	again := Compare(nil, candidate)
	assert.Equal(t, d, again)
}

func TestCompare_EmptySets(t *testing.T) {
	d := Compare(nil, nil)

	assert.Empty(t, d.Added)
	assert.Empty(t, d.Removed)
	assert.Empty(t, d.TierUpgrades)
	assert.Empty(t, d.TierDowngrades)
}
