package settlement

import (
	"testing"
	"time"

	"posrecon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "txn-1", Date: wednesday, GrossAmount: 10000, CardType: models.CardPersonal,
			InstallmentCount: 1, TerminalID: "term-next", BankID: "bank-a", Status: models.StatusPending},
		{ID: "txn-2", Date: wednesday, GrossAmount: 5000, CardType: models.CardPersonal,
			InstallmentCount: 1, TerminalID: "term-b", BankID: "bank-b", Status: models.StatusPending},
		{ID: "txn-3", Date: wednesday.AddDate(0, 0, -1), GrossAmount: 2500, CardType: models.CardCommercial,
			InstallmentCount: 1, TerminalID: "term-next", BankID: "bank-a", Status: models.StatusPending},
	}
}

func TestCalculateBatch(t *testing.T) {
	engine := testEngine()
	input := testTransactions()

	out, err := engine.CalculateBatch(input)
	require.NoError(t, err)
	require.Len(t, out, 3)

	for _, txn := range out {
		require.True(t, txn.Calculated())
		assert.InDelta(t, txn.GrossAmount-*txn.CommissionAmount, *txn.NetAmount, 1e-9)
		assert.Less(t, *txn.FinalAmount, *txn.NetAmount) // fees always deducted
	}

	assert.InDelta(t, 9813.20, *out[0].FinalAmount, 0.001)

	// Input records are untouched.
	for _, txn := range input {
		assert.Nil(t, txn.FinalAmount)
		assert.Nil(t, txn.ValueDate)
	}
}

func TestCalculateBatch_PropagatesNotFound(t *testing.T) {
	engine := testEngine()
	txns := []models.Transaction{
		{ID: "txn-x", Date: wednesday, GrossAmount: 100, CardType: models.CardPersonal,
			InstallmentCount: 1, TerminalID: "term-missing"},
	}
	_, err := engine.CalculateBatch(txns)
	assert.ErrorIs(t, err, ErrTerminalNotFound)
}

func TestGenerateDailyReport(t *testing.T) {
	engine := testEngine()

	report, err := engine.GenerateDailyReport(testTransactions(), wednesday)
	require.NoError(t, err)

	// txn-3 is dated the day before and must be excluded.
	assert.Equal(t, 2, report.TransactionCount)
	assert.InDelta(t, 15000, report.TotalGross, 0.001)
	// commission: 169 (1.69% of 10000) + 62.50 (1.25% override of 5000)
	assert.InDelta(t, 231.50, report.TotalCommission, 0.001)
	assert.InDelta(t, 27.80, report.TotalEFTFee, 0.001)

	require.Len(t, report.ByBank, 2)
	byID := make(map[string]BankDayTotal)
	for _, line := range report.ByBank {
		byID[line.BankID] = line
	}
	assert.Equal(t, 1, byID["bank-a"].Count)
	assert.InDelta(t, 10000, byID["bank-a"].Gross, 0.001)
	assert.Equal(t, 1, byID["bank-b"].Count)
}

func TestGenerateDailyReport_DateOnlyComparison(t *testing.T) {
	engine := testEngine()

	// Record "a" lands late the same evening; record "b" just before
	// midnight the previous day.
	txns := []models.Transaction{
		{ID: "a", Date: wednesday.Add(9 * time.Hour), GrossAmount: 100, CardType: models.CardPersonal,
			InstallmentCount: 1, TerminalID: "term-next", BankID: "bank-a"},
		{ID: "b", Date: wednesday.Add(-15 * time.Hour), GrossAmount: 100, CardType: models.CardPersonal,
			InstallmentCount: 1, TerminalID: "term-next", BankID: "bank-a"},
	}

	report, err := engine.GenerateDailyReport(txns, wednesday)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TransactionCount) // only the same-day record
}

func TestGenerateDailyReport_EmptyDay(t *testing.T) {
	engine := testEngine()
	report, err := engine.GenerateDailyReport(testTransactions(), date(2024, time.June, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, report.TransactionCount)
	assert.Empty(t, report.ByBank)
	assert.InDelta(t, 0, report.TotalGross, 1e-9)
}

func TestForecast(t *testing.T) {
	engine := testEngine()

	// Both Wednesday next-day transactions settle on Thursday.
	forecast, err := engine.Forecast(testTransactions(), wednesday, 7)
	require.NoError(t, err)
	require.Len(t, forecast, 7)

	// txn-1 and txn-2 settle Thursday; txn-3 was dated Tuesday and
	// settles Wednesday, the first forecast day.
	assert.Equal(t, date(2024, time.January, 4), forecast[1].Date)
	assert.Len(t, forecast[0].Transactions, 1)
	assert.Equal(t, "txn-3", forecast[0].Transactions[0].ID)

	day1 := forecast[1]
	require.Len(t, day1.Transactions, 2)
	total := *day1.Transactions[0].FinalAmount + *day1.Transactions[1].FinalAmount
	assert.InDelta(t, total, day1.ExpectedAmount, 1e-9)

	require.Len(t, day1.BankBreakdown, 2)
	sum := 0.0
	for _, line := range day1.BankBreakdown {
		sum += line.Amount
	}
	assert.InDelta(t, day1.ExpectedAmount, sum, 1e-9)

	// Days with no settlements report zero and omit banks entirely.
	weekend := forecast[3] // Saturday
	assert.Empty(t, weekend.Transactions)
	assert.Empty(t, weekend.BankBreakdown)
	assert.InDelta(t, 0, weekend.ExpectedAmount, 1e-9)
}

func TestForecast_DefaultHorizon(t *testing.T) {
	engine := testEngine()
	forecast, err := engine.Forecast(nil, wednesday, 0)
	require.NoError(t, err)
	assert.Len(t, forecast, DefaultForecastDays)
}
