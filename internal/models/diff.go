// internal/models/diff.go
package models

// TierChange records a combo whose tier moved between two generation passes.
type TierChange struct {
	Combo       Combo `json:"combo"`
	FromTier    Tier  `json:"fromTier"`
	ToTier      Tier  `json:"toTier"`
	Improvement int   `json:"improvement"` // signed strength distance
}

// ComboDiff is the set comparison of two combo collections keyed by text.
type ComboDiff struct {
	Added          []Combo      `json:"added"`
	Removed        []Combo      `json:"removed"`
	TierUpgrades   []TierChange `json:"tierUpgrades"`
	TierDowngrades []TierChange `json:"tierDowngrades"`
}
