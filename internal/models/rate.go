package models

import (
	"time"
)

// Card categories the commission matrix distinguishes between.
const (
	CardPersonal   = "personal"
	CardCommercial = "commercial"
)

// CommissionRate is one entry of the sparse commission matrix. A nil
// TerminalID marks a bank-wide rate; entries with a terminal id are
// terminal-specific overrides and take precedence during resolution.
// InstallmentCount of 1 means a single payment.
type CommissionRate struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	BankID           string     `gorm:"index;not null" json:"bank_id"`
	TerminalID       *string    `gorm:"index" json:"terminal_id,omitempty"`
	CardType         string     `gorm:"not null" json:"card_type"`
	InstallmentCount int        `gorm:"not null" json:"installment_count"`
	Rate             float64    `gorm:"not null" json:"rate"`
	ValidFrom        time.Time  `json:"valid_from"`
	ValidTo          *time.Time `json:"valid_to,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
