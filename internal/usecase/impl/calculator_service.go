package impl

import (
	"maplehub/internal/domain/entity"
	domainerrors "maplehub/internal/domain/errors"
	"maplehub/internal/usecase"
)

// calculatorService implements the CalculatorUsecase interface. It is pure
// arithmetic over the static boss table and request inputs.
type calculatorService struct {
	crystalValues map[string]int64
}

// NewCalculatorService is the constructor for calculatorService.
func NewCalculatorService() usecase.CalculatorUsecase {
	crystalValues := make(map[string]int64, len(entity.BossTable))
	for _, boss := range entity.BossTable {
		crystalValues[boss.ID] = boss.CrystalValue
	}

	return &calculatorService{crystalValues: crystalValues}
}

// BossTable returns the boss crystal price table.
func (srv *calculatorService) BossTable() []entity.Boss {
	return entity.BossTable
}

// CrystalTotal sums the crystal values of the selected bosses per character.
// Unknown boss IDs contribute nothing.
func (srv *calculatorService) CrystalTotal(selections []usecase.CrystalSelection) *usecase.CrystalTotalOutput {
	output := &usecase.CrystalTotalOutput{
		Characters: make([]usecase.CharacterCrystalTotal, 0, len(selections)),
	}

	for _, selection := range selections {
		var total int64
		for _, bossID := range selection.BossIDs {
			total += srv.crystalValues[bossID]
		}

		output.Characters = append(output.Characters, usecase.CharacterCrystalTotal{
			CharacterID: selection.CharacterID,
			Total:       total,
		})
		output.GrandTotal += total
	}

	return output
}

// DistributionSplit divides an amount net of fee between people.
// People and amount must be positive; the fee percentage may be zero but not
// negative or above 100.
func (srv *calculatorService) DistributionSplit(input *usecase.DistributionInput) (*usecase.DistributionOutput, error) {
	if input.People <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("people must be positive")
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("amount must be positive")
	}
	if input.FeePercent < 0 || input.FeePercent > 100 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fee percent must be between 0 and 100")
	}

	totalAfterFee := float64(input.Amount) * float64(100-input.FeePercent) / 100
	perPerson := totalAfterFee / float64(input.People)

	return &usecase.DistributionOutput{
		TotalAfterFee: totalAfterFee,
		PerPerson:     perPerson,
	}, nil
}
