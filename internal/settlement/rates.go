package settlement

import (
	"sort"

	"posrecon/internal/models"
)

// ResolveRate finds the commission percentage for a sale. Resolution
// order:
//
//  1. terminal-specific entry matching (terminalID, cardType,
//     installments) exactly
//  2. bank-wide entry matching (bankID, cardType, installments) exactly
//  3. the bank's lowest tier whose installment count covers the
//     request, or the highest tier when the request exceeds them all
//  4. DefaultRate when the bank has no entries for the card type
//
// ResolveRate never fails; an empty rate table still yields a rate.
func (e *Engine) ResolveRate(bankID, cardType string, installments int, terminalID string) float64 {
	if terminalID != "" {
		for _, r := range e.data.Rates {
			if r.TerminalID != nil && *r.TerminalID == terminalID &&
				r.CardType == cardType && r.InstallmentCount == installments {
				return r.Rate
			}
		}
	}

	for _, r := range e.data.Rates {
		if r.TerminalID == nil && r.BankID == bankID &&
			r.CardType == cardType && r.InstallmentCount == installments {
			return r.Rate
		}
	}

	// No exact tier; round up to the nearest defined tier.
	var bankRates []models.CommissionRate
	for _, r := range e.data.Rates {
		if r.TerminalID == nil && r.BankID == bankID && r.CardType == cardType {
			bankRates = append(bankRates, r)
		}
	}
	if len(bankRates) == 0 {
		return DefaultRate
	}

	sort.Slice(bankRates, func(i, j int) bool {
		return bankRates[i].InstallmentCount < bankRates[j].InstallmentCount
	})
	for _, r := range bankRates {
		if r.InstallmentCount >= installments {
			return r.Rate
		}
	}
	// Request is beyond every defined tier; the highest tier acts as a
	// ceiling.
	return bankRates[len(bankRates)-1].Rate
}
