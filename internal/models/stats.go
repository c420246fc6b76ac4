// internal/models/stats.go
package models

// BuildComboStats summarizes a classified combo set.
func BuildComboStats(combos []Combo) ComboStats {
	stats := ComboStats{
		Total:  len(combos),
		ByTier: make(map[string]int),
	}
	for _, c := range combos {
		stats.ByTier[c.Tier.String()]++
		if c.BrandClassification == ClassificationBrand {
			stats.Brand++
		} else {
			stats.Generic++
		}
		if c.Exists {
			stats.Existing++
		} else {
			stats.Missing++
		}
	}
	return stats
}
