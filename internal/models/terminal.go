package models

import (
	"time"
)

// Settlement policies a POS terminal can be configured with.
const (
	SettlementNextDay = "next_day"
	SettlementBlocked = "blocked"
	SettlementHybrid  = "hybrid"
)

// Terminal is a POS device tied to exactly one bank and one branch.
// BlockedDays of 0 means unconfigured; the settlement engine falls back
// to its default in that case.
type Terminal struct {
	ID                    string    `gorm:"primarykey" json:"id"`
	BankID                string    `gorm:"index;not null" json:"bank_id"`
	BranchID              string    `gorm:"index;not null" json:"branch_id"`
	TerminalNo            string    `gorm:"not null" json:"terminal_no"`
	SettlementPolicy      string    `gorm:"default:'next_day'" json:"settlement_policy"`
	BlockedDays           int       `gorm:"default:0" json:"blocked_days"`
	HybridNextDayShare    float64   `gorm:"default:0" json:"hybrid_next_day_share"`
	HybridBlockedShare    float64   `gorm:"default:0" json:"hybrid_blocked_share"`
	MonthlyMaintenanceFee float64   `gorm:"default:0" json:"monthly_maintenance_fee"`
	Active                bool      `gorm:"default:true" json:"active"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
