package usecase

import "maplehub/internal/domain/entity"

// CrystalSelection marks the bosses one character cleared this week.
type CrystalSelection struct {
	CharacterID string   `json:"character_id"`
	BossIDs     []string `json:"boss_ids"`
}

// CharacterCrystalTotal is the crystal income of one character.
type CharacterCrystalTotal struct {
	CharacterID string `json:"character_id"`
	Total       int64  `json:"total"`
}

// CrystalTotalOutput sums crystal income per character and across all of them.
type CrystalTotalOutput struct {
	Characters []CharacterCrystalTotal `json:"characters"`
	GrandTotal int64                   `json:"grand_total"`
}

// DistributionInput describes a loot split: how many people share an amount
// after a percentage fee is taken off the top.
type DistributionInput struct {
	People     int64 `json:"people"`
	Amount     int64 `json:"amount"`
	FeePercent int64 `json:"fee_percent"`
}

// DistributionOutput is the resolved split.
type DistributionOutput struct {
	TotalAfterFee float64 `json:"total_after_fee"`
	PerPerson     float64 `json:"per_person"`
}

// CalculatorUsecase defines the boss-loot arithmetic operations. The
// calculations are pure; no context is needed.
type CalculatorUsecase interface {
	// BossTable returns the boss crystal price table.
	BossTable() []entity.Boss

	// CrystalTotal sums the crystal values of the selected bosses per
	// character. Unknown boss IDs contribute nothing.
	CrystalTotal(selections []CrystalSelection) *CrystalTotalOutput

	// DistributionSplit divides an amount net of fee between people.
	DistributionSplit(input *DistributionInput) (*DistributionOutput, error)
}
