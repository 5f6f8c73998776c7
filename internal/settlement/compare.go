package settlement

import (
	"fmt"
	"math"
	"time"
)

// ScenarioChoice is one (terminal, installment plan) option under
// comparison.
type ScenarioChoice struct {
	TerminalID       string `json:"terminal_id"`
	InstallmentCount int    `json:"installment_count"`
}

// Compare runs the calculator over two independent terminal/installment
// choices for the same sale and reports which one leaves more money
// with the merchant. Ties favor the first option.
func (e *Engine) Compare(grossAmount float64, cardType string, first, second ScenarioChoice, date time.Time) (*Comparison, error) {
	s1, err := e.scenario(grossAmount, cardType, first, date)
	if err != nil {
		return nil, err
	}
	s2, err := e.scenario(grossAmount, cardType, second, date)
	if err != nil {
		return nil, err
	}

	difference := s1.FinalAmount - s2.FinalAmount
	betterOption := 1
	if difference < 0 {
		betterOption = 2
	}

	return &Comparison{
		Scenario1:         *s1,
		Scenario2:         *s2,
		Difference:        math.Abs(difference),
		BetterOption:      betterOption,
		SavingsPercentage: math.Abs(difference) / grossAmount * 100,
	}, nil
}

func (e *Engine) scenario(grossAmount float64, cardType string, choice ScenarioChoice, date time.Time) (*Scenario, error) {
	result, err := e.Calculate(Input{
		GrossAmount:      grossAmount,
		CardType:         cardType,
		InstallmentCount: choice.InstallmentCount,
		TerminalID:       choice.TerminalID,
		Date:             date,
	})
	if err != nil {
		return nil, err
	}

	// Calculate already proved both lookups succeed.
	terminal, _ := e.Terminal(choice.TerminalID)
	bank, _ := e.Bank(terminal.BankID)

	return &Scenario{
		Result:       *result,
		BankName:     bank.Name,
		TerminalInfo: fmt.Sprintf("%s - %s", bank.Name, terminal.TerminalNo),
	}, nil
}
