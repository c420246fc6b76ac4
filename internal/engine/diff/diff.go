// internal/engine/diff/diff.go

// Package diff compares two independently generated combo sets for
// optimization-impact reporting.
package diff

import (
	"sort"

	"aso-engine/internal/models"
)

// Compare reports combos present only in candidate (added), only in baseline
// (removed), and tier transitions for combos present in both. All result
// lists are sorted by tier strength, then combo length, then text, so
// repeated runs produce identical ordering.
func Compare(baseline, candidate []models.Combo) models.ComboDiff {
	base := indexByText(baseline)
	cand := indexByText(candidate)

	var out models.ComboDiff

	for text, c := range cand {
		b, inBase := base[text]
		if !inBase {
			out.Added = append(out.Added, c)
			continue
		}
		if c.Tier == b.Tier {
			continue
		}
		change := models.TierChange{
			Combo:       c,
			FromTier:    b.Tier,
			ToTier:      c.Tier,
			Improvement: c.Tier.Strength() - b.Tier.Strength(),
		}
		if change.Improvement > 0 {
			out.TierUpgrades = append(out.TierUpgrades, change)
		} else {
			out.TierDowngrades = append(out.TierDowngrades, change)
		}
	}

	for text, b := range base {
		if _, inCand := cand[text]; !inCand {
			out.Removed = append(out.Removed, b)
		}
	}

	sortCombos(out.Added)
	sortCombos(out.Removed)
	sortChanges(out.TierUpgrades)
	sortChanges(out.TierDowngrades)

	return out
}

func indexByText(combos []models.Combo) map[string]models.Combo {
	idx := make(map[string]models.Combo, len(combos))
	for _, c := range combos {
		idx[c.Text] = c
	}
	return idx
}

func sortCombos(list []models.Combo) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Tier != list[j].Tier {
			return list[i].Tier.Strength() > list[j].Tier.Strength()
		}
		if list[i].Length != list[j].Length {
			return list[i].Length < list[j].Length
		}
		return list[i].Text < list[j].Text
	})
}

func sortChanges(list []models.TierChange) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].ToTier != list[j].ToTier {
			return list[i].ToTier.Strength() > list[j].ToTier.Strength()
		}
		if list[i].Combo.Length != list[j].Combo.Length {
			return list[i].Combo.Length < list[j].Combo.Length
		}
		return list[i].Combo.Text < list[j].Combo.Text
	})
}
