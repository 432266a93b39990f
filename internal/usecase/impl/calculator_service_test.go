package impl

import (
	"testing"

	domainerrors "maplehub/internal/domain/errors"
	"maplehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorService_BossTable(t *testing.T) {
	service := NewCalculatorService()

	table := service.BossTable()

	require.NotEmpty(t, table)
	for _, boss := range table {
		assert.NotEmpty(t, boss.ID)
		assert.NotEmpty(t, boss.Name)
		assert.Positive(t, boss.CrystalValue)
	}
}

func TestCalculatorService_CrystalTotal(t *testing.T) {
	service := NewCalculatorService()

	output := service.CrystalTotal([]usecase.CrystalSelection{
		{CharacterID: "main", BossIDs: []string{"zakum_chaos", "magnus_hard"}},
		{CharacterID: "alt", BossIDs: []string{"hilla_hard"}},
	})

	require.Len(t, output.Characters, 2)
	assert.Equal(t, int64(9620000+16740000), output.Characters[0].Total)
	assert.Equal(t, int64(5520000), output.Characters[1].Total)
	assert.Equal(t, int64(9620000+16740000+5520000), output.GrandTotal)
}

func TestCalculatorService_CrystalTotal_UnknownBossIgnored(t *testing.T) {
	service := NewCalculatorService()

	output := service.CrystalTotal([]usecase.CrystalSelection{
		{CharacterID: "main", BossIDs: []string{"no_such_boss", "zakum_chaos"}},
	})

	require.Len(t, output.Characters, 1)
	assert.Equal(t, int64(9620000), output.Characters[0].Total)
	assert.Equal(t, int64(9620000), output.GrandTotal)
}

func TestCalculatorService_CrystalTotal_Empty(t *testing.T) {
	service := NewCalculatorService()

	output := service.CrystalTotal(nil)

	assert.Empty(t, output.Characters)
	assert.Zero(t, output.GrandTotal)
}

func TestCalculatorService_DistributionSplit(t *testing.T) {
	service := NewCalculatorService()

	output, err := service.DistributionSplit(&usecase.DistributionInput{
		People:     4,
		Amount:     1000000,
		FeePercent: 5,
	})

	require.NoError(t, err)
	assert.InDelta(t, 950000, output.TotalAfterFee, 0.001)
	assert.InDelta(t, 237500, output.PerPerson, 0.001)
}

func TestCalculatorService_DistributionSplit_ZeroFee(t *testing.T) {
	service := NewCalculatorService()

	output, err := service.DistributionSplit(&usecase.DistributionInput{
		People: 3,
		Amount: 100,
	})

	require.NoError(t, err)
	assert.InDelta(t, 100, output.TotalAfterFee, 0.001)
	assert.InDelta(t, 100.0/3.0, output.PerPerson, 0.001)
}

func TestCalculatorService_DistributionSplit_InvalidInput(t *testing.T) {
	service := NewCalculatorService()

	tests := []struct {
		name  string
		input *usecase.DistributionInput
	}{
		{name: "zero people", input: &usecase.DistributionInput{People: 0, Amount: 100}},
		{name: "negative people", input: &usecase.DistributionInput{People: -1, Amount: 100}},
		{name: "zero amount", input: &usecase.DistributionInput{People: 2, Amount: 0}},
		{name: "negative fee", input: &usecase.DistributionInput{People: 2, Amount: 100, FeePercent: -1}},
		{name: "fee above hundred", input: &usecase.DistributionInput{People: 2, Amount: 100, FeePercent: 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := service.DistributionSplit(tt.input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}
