package models

import (
	"time"
)

// Transaction lifecycle statuses
const (
	StatusPending     = "pending"
	StatusProcessed   = "processed"
	StatusTransferred = "transferred"
)

// Transaction is one POS sale. BranchID and BankID are derived from the
// terminal at creation time. The computed fields stay nil until the
// settlement engine has run over the record; recalculation overwrites
// them whenever commission or fee inputs change.
type Transaction struct {
	ID               string    `gorm:"primarykey" json:"id"`
	Date             time.Time `gorm:"index;not null" json:"date"`
	GrossAmount      float64   `gorm:"not null" json:"gross_amount"`
	CardType         string    `gorm:"not null" json:"card_type"`
	InstallmentCount int       `gorm:"not null;default:1" json:"installment_count"`
	TerminalID       string    `gorm:"index;not null" json:"terminal_id"`
	BranchID         string    `gorm:"index" json:"branch_id"`
	BankID           string    `gorm:"index" json:"bank_id"`
	Status           string    `gorm:"not null;default:'pending'" json:"status"`
	CardLastFour     string    `json:"card_last_four,omitempty"`
	AuthCode         string    `json:"auth_code,omitempty"`
	Metadata         JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`

	// Computed by the settlement engine
	CommissionRate   *float64   `json:"commission_rate,omitempty"`
	CommissionAmount *float64   `json:"commission_amount,omitempty"`
	NetAmount        *float64   `json:"net_amount,omitempty"`
	EFTFee           *float64   `json:"eft_fee,omitempty"`
	FinalAmount      *float64   `json:"final_amount,omitempty"`
	ValueDate        *time.Time `json:"value_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Calculated reports whether the settlement engine has filled in the
// derived fields for this record.
func (t *Transaction) Calculated() bool {
	return t.FinalAmount != nil && t.ValueDate != nil
}
