package settlement

import (
	"errors"
	"testing"
	"time"

	"posrecon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	engine := testEngine()

	// Worked example: 10000 single-payment personal on a 1.69% rate,
	// 12.80 EFT fee, 150 monthly maintenance, next-day settlement
	// starting on a Wednesday.
	result, err := engine.Calculate(Input{
		GrossAmount:      10000,
		CardType:         models.CardPersonal,
		InstallmentCount: 1,
		TerminalID:       "term-next",
		Date:             wednesday,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.69, result.CommissionRate)
	assert.InDelta(t, 169.00, result.CommissionAmount, 0.001)
	assert.InDelta(t, 9831.00, result.NetAmount, 0.001)
	assert.InDelta(t, 12.80, result.EFTFee, 0.001)
	assert.InDelta(t, 5.00, result.MaintenanceFee, 0.001)
	assert.InDelta(t, 9813.20, result.FinalAmount, 0.001)
	assert.Equal(t, date(2024, time.January, 4), result.ValueDate)
	assert.Equal(t, time.Thursday, result.ValueDate.Weekday())

	assert.Contains(t, result.Breakdown, "1.69")
	assert.Contains(t, result.Breakdown, "9813.20")
	assert.Contains(t, result.Breakdown, "2024-01-04")
}

func TestCalculate_FinalAmountIdentity(t *testing.T) {
	engine := testEngine()

	inputs := []Input{
		{GrossAmount: 150.33, CardType: models.CardPersonal, InstallmentCount: 1, TerminalID: "term-next", Date: wednesday},
		{GrossAmount: 7500, CardType: models.CardCommercial, InstallmentCount: 6, TerminalID: "term-blocked", Date: wednesday},
		{GrossAmount: 999.99, CardType: models.CardPersonal, InstallmentCount: 9, TerminalID: "term-hybrid-blocked", Date: wednesday},
		{GrossAmount: 20000, CardType: models.CardPersonal, InstallmentCount: 12, TerminalID: "term-b", Date: wednesday},
	}

	for _, in := range inputs {
		result, err := engine.Calculate(in)
		require.NoError(t, err)

		expected := in.GrossAmount -
			in.GrossAmount*result.CommissionRate/100 -
			result.EFTFee -
			result.MaintenanceFee
		assert.InDelta(t, expected, result.FinalAmount, 1e-9)
	}
}

func TestCalculate_NotFound(t *testing.T) {
	engine := testEngine()

	t.Run("unknown terminal", func(t *testing.T) {
		_, err := engine.Calculate(Input{
			GrossAmount: 100, CardType: models.CardPersonal,
			InstallmentCount: 1, TerminalID: "term-missing", Date: wednesday,
		})
		assert.True(t, errors.Is(err, ErrTerminalNotFound))
	})

	t.Run("terminal pointing at unknown bank", func(t *testing.T) {
		_, err := engine.Calculate(Input{
			GrossAmount: 100, CardType: models.CardPersonal,
			InstallmentCount: 1, TerminalID: "term-orphan", Date: wednesday,
		})
		assert.True(t, errors.Is(err, ErrBankNotFound))
	})
}

func TestCalculate_ZeroAmountNotRejected(t *testing.T) {
	// Amount validation belongs to the caller; the engine still
	// produces a number.
	engine := testEngine()
	result, err := engine.Calculate(Input{
		GrossAmount: 0, CardType: models.CardPersonal,
		InstallmentCount: 1, TerminalID: "term-next", Date: wednesday,
	})
	require.NoError(t, err)
	assert.InDelta(t, -17.80, result.FinalAmount, 0.001) // -EFT -maintenance
}
