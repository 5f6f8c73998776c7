package settlement

import (
	"time"

	"posrecon/internal/models"
)

// CalculateBatch runs the calculator over every transaction and returns
// new records with the computed fields attached. Input records are not
// mutated.
func (e *Engine) CalculateBatch(transactions []models.Transaction) ([]models.Transaction, error) {
	out := make([]models.Transaction, 0, len(transactions))

	for _, txn := range transactions {
		result, err := e.Calculate(Input{
			GrossAmount:      txn.GrossAmount,
			CardType:         txn.CardType,
			InstallmentCount: txn.InstallmentCount,
			TerminalID:       txn.TerminalID,
			Date:             txn.Date,
		})
		if err != nil {
			return nil, err
		}

		txn.CommissionRate = &result.CommissionRate
		txn.CommissionAmount = &result.CommissionAmount
		txn.NetAmount = &result.NetAmount
		txn.EFTFee = &result.EFTFee
		txn.FinalAmount = &result.FinalAmount
		txn.ValueDate = &result.ValueDate
		out = append(out, txn)
	}
	return out, nil
}

// GenerateDailyReport aggregates the transactions of a single calendar
// day: totals across all banks plus a per-bank rollup. Banks without
// transactions that day are omitted from the rollup.
func (e *Engine) GenerateDailyReport(transactions []models.Transaction, date time.Time) (*DailyReport, error) {
	target := startOfDay(date)

	var dayTxns []models.Transaction
	for _, txn := range transactions {
		if sameDay(txn.Date, target) {
			dayTxns = append(dayTxns, txn)
		}
	}

	calculated, err := e.CalculateBatch(dayTxns)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{
		Date:             target,
		TransactionCount: len(calculated),
	}
	for _, txn := range calculated {
		report.TotalGross += txn.GrossAmount
		report.TotalCommission += *txn.CommissionAmount
		report.TotalEFTFee += *txn.EFTFee
		report.TotalNet += *txn.FinalAmount
	}

	for _, bank := range e.data.Banks {
		line := BankDayTotal{BankID: bank.ID, BankName: bank.Name}
		for _, txn := range calculated {
			if txn.BankID != bank.ID {
				continue
			}
			line.Gross += txn.GrossAmount
			line.Commission += *txn.CommissionAmount
			line.Net += *txn.FinalAmount
			line.Count++
		}
		if line.Count > 0 {
			report.ByBank = append(report.ByBank, line)
		}
	}
	return report, nil
}

// Forecast projects expected cash inflows for the next `days` calendar
// days starting at `from`: for each day, the transactions whose value
// date lands exactly on it and their summed final amounts, in total and
// per bank.
//
// Every call recalculates the full transaction set; value dates are not
// cached between calls, so reference-data edits show up immediately.
func (e *Engine) Forecast(transactions []models.Transaction, from time.Time, days int) ([]ForecastEntry, error) {
	if days <= 0 {
		days = DefaultForecastDays
	}
	start := startOfDay(from)

	calculated, err := e.CalculateBatch(transactions)
	if err != nil {
		return nil, err
	}

	forecast := make([]ForecastEntry, 0, days)
	for i := 0; i < days; i++ {
		target := start.AddDate(0, 0, i)

		var dayTxns []models.Transaction
		total := 0.0
		for _, txn := range calculated {
			if txn.ValueDate != nil && sameDay(*txn.ValueDate, target) {
				dayTxns = append(dayTxns, txn)
				total += *txn.FinalAmount
			}
		}

		var breakdown []BankForecastAmount
		for _, bank := range e.data.Banks {
			amount := 0.0
			for _, txn := range dayTxns {
				if txn.BankID == bank.ID {
					amount += *txn.FinalAmount
				}
			}
			if amount > 0 {
				breakdown = append(breakdown, BankForecastAmount{
					BankID:   bank.ID,
					BankName: bank.Name,
					Amount:   amount,
				})
			}
		}

		forecast = append(forecast, ForecastEntry{
			Date:           target,
			ExpectedAmount: total,
			Transactions:   dayTxns,
			BankBreakdown:  breakdown,
		})
	}
	return forecast, nil
}
