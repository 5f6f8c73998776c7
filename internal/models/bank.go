package models

import (
	"time"
)

// Agreement tiers a merchant can hold with an acquiring bank.
const (
	AgreementStandard  = "standard"
	AgreementSpecial   = "special"
	AgreementCorporate = "corporate"
)

// Bank is acquiring-bank reference data. Terminals and rate entries
// reference banks by id; banks are only ever created or edited by an
// administrator.
type Bank struct {
	ID            string    `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	DefaultEFTFee float64   `gorm:"not null;default:0" json:"default_eft_fee"`
	AgreementType string    `gorm:"default:'standard'" json:"agreement_type"`
	Color         string    `json:"color"` // hex color used by dashboard clients
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Branch is a physical store location owning one or more terminals.
type Branch struct {
	ID        string    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Location  string    `json:"location"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
