package transaction

import (
	"time"

	"posrecon/internal/models"
)

// CreateRequest is a manual transaction entry. Branch and bank are
// derived from the terminal, never supplied by the caller. Metadata is
// stored verbatim for the importing client.
type CreateRequest struct {
	Date             time.Time   `json:"date"`
	GrossAmount      float64     `json:"gross_amount"`
	CardType         string      `json:"card_type"`
	InstallmentCount int         `json:"installment_count"`
	TerminalID       string      `json:"terminal_id"`
	CardLastFour     string      `json:"card_last_four,omitempty"`
	AuthCode         string      `json:"auth_code,omitempty"`
	Metadata         models.JSON `json:"metadata,omitempty"`
}
