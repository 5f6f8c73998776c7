package simulation

import (
	"time"

	"posrecon/internal/settlement"
)

// CalculateRequest asks for a single settlement breakdown without
// persisting anything.
type CalculateRequest struct {
	GrossAmount      float64   `json:"gross_amount"`
	CardType         string    `json:"card_type"`
	InstallmentCount int       `json:"installment_count"`
	TerminalID       string    `json:"terminal_id"`
	Date             time.Time `json:"date"`
}

// CompareRequest pits two terminal/installment choices against each
// other for the same sale.
type CompareRequest struct {
	GrossAmount float64                   `json:"gross_amount"`
	CardType    string                    `json:"card_type"`
	Scenario1   settlement.ScenarioChoice `json:"scenario1"`
	Scenario2   settlement.ScenarioChoice `json:"scenario2"`
	Date        time.Time                 `json:"date"`
}

// RecommendRequest ranks candidate terminals for a prospective sale.
// Empty TerminalIDs means every active terminal is considered.
type RecommendRequest struct {
	GrossAmount      float64  `json:"gross_amount"`
	CardType         string   `json:"card_type"`
	InstallmentCount int      `json:"installment_count"`
	TerminalIDs      []string `json:"terminal_ids,omitempty"`
}
