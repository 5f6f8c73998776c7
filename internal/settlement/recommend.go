package settlement

import (
	"fmt"
	"sort"
	"time"
)

// Recommend runs the calculator over every candidate terminal and ranks
// them by final amount, best first. Each entry's Savings is measured
// against the winner, so the top entry carries 0 and the rest are
// negative.
func (e *Engine) Recommend(grossAmount float64, cardType string, installments int, terminalIDs []string, date time.Time) ([]Recommendation, error) {
	results := make([]Recommendation, 0, len(terminalIDs))

	for _, id := range terminalIDs {
		result, err := e.Calculate(Input{
			GrossAmount:      grossAmount,
			CardType:         cardType,
			InstallmentCount: installments,
			TerminalID:       id,
			Date:             date,
		})
		if err != nil {
			return nil, err
		}

		terminal, _ := e.Terminal(id)
		bank, _ := e.Bank(terminal.BankID)

		results = append(results, Recommendation{
			TerminalID:     id,
			BankName:       fmt.Sprintf("%s (%s)", bank.Name, terminal.TerminalNo),
			FinalAmount:    result.FinalAmount,
			CommissionRate: result.CommissionRate,
		})
	}

	if len(results) == 0 {
		return results, nil
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalAmount > results[j].FinalAmount
	})

	best := results[0].FinalAmount
	for i := range results {
		results[i].Savings = results[i].FinalAmount - best
	}
	return results, nil
}
