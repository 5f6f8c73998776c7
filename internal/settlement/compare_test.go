package settlement

import (
	"testing"

	"posrecon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	engine := testEngine()

	first := ScenarioChoice{TerminalID: "term-next", InstallmentCount: 1}
	second := ScenarioChoice{TerminalID: "term-b", InstallmentCount: 1}

	cmp, err := engine.Compare(10000, models.CardPersonal, first, second, wednesday)
	require.NoError(t, err)

	// term-next: 10000 - 169 - 12.80 - 5 = 9813.20
	// term-b:    10000 - 125 (1.25% override) - 15 - 3 = 9857.00
	assert.InDelta(t, 9813.20, cmp.Scenario1.FinalAmount, 0.001)
	assert.InDelta(t, 9857.00, cmp.Scenario2.FinalAmount, 0.001)
	assert.Equal(t, 2, cmp.BetterOption)
	assert.InDelta(t, 43.80, cmp.Difference, 0.001)
	assert.InDelta(t, 0.438, cmp.SavingsPercentage, 0.001)

	assert.Equal(t, "Alpha Bank", cmp.Scenario1.BankName)
	assert.Equal(t, "Beta Bank - BET001", cmp.Scenario2.TerminalInfo)
}

func TestCompare_Antisymmetric(t *testing.T) {
	engine := testEngine()

	first := ScenarioChoice{TerminalID: "term-next", InstallmentCount: 1}
	second := ScenarioChoice{TerminalID: "term-b", InstallmentCount: 1}

	forward, err := engine.Compare(10000, models.CardPersonal, first, second, wednesday)
	require.NoError(t, err)
	reverse, err := engine.Compare(10000, models.CardPersonal, second, first, wednesday)
	require.NoError(t, err)

	assert.InDelta(t, forward.Difference, reverse.Difference, 1e-9)
	assert.InDelta(t, forward.SavingsPercentage, reverse.SavingsPercentage, 1e-9)
	assert.NotEqual(t, forward.BetterOption, reverse.BetterOption)
}

func TestCompare_TieFavorsFirstOption(t *testing.T) {
	engine := testEngine()

	choice := ScenarioChoice{TerminalID: "term-next", InstallmentCount: 1}
	cmp, err := engine.Compare(5000, models.CardPersonal, choice, choice, wednesday)
	require.NoError(t, err)

	assert.Equal(t, 1, cmp.BetterOption)
	assert.InDelta(t, 0, cmp.Difference, 1e-9)
}

func TestCompare_UnknownTerminal(t *testing.T) {
	engine := testEngine()

	_, err := engine.Compare(1000, models.CardPersonal,
		ScenarioChoice{TerminalID: "term-missing", InstallmentCount: 1},
		ScenarioChoice{TerminalID: "term-next", InstallmentCount: 1},
		wednesday)
	assert.ErrorIs(t, err, ErrTerminalNotFound)
}

func TestRecommend(t *testing.T) {
	engine := testEngine()

	recs, err := engine.Recommend(10000, models.CardPersonal, 1,
		[]string{"term-next", "term-b", "term-blocked"}, wednesday)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Sorted descending by final amount, best first.
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].FinalAmount, recs[i].FinalAmount)
	}

	assert.Equal(t, "term-b", recs[0].TerminalID)
	assert.InDelta(t, 0, recs[0].Savings, 1e-9)
	for _, rec := range recs[1:] {
		assert.LessOrEqual(t, rec.Savings, 0.0)
		assert.InDelta(t, rec.FinalAmount-recs[0].FinalAmount, rec.Savings, 1e-9)
	}

	assert.Equal(t, "Beta Bank (BET001)", recs[0].BankName)
}

func TestRecommend_Empty(t *testing.T) {
	engine := testEngine()
	recs, err := engine.Recommend(10000, models.CardPersonal, 1, nil, wednesday)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
