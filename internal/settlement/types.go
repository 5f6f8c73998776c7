package settlement

import (
	"time"

	"posrecon/internal/models"
)

// Dataset is the read-only reference data snapshot the engine computes
// against. Callers own the slices; the engine never mutates them.
type Dataset struct {
	Banks     []models.Bank
	Terminals []models.Terminal
	Rates     []models.CommissionRate
}

// Input holds the scalar parameters for a single settlement calculation.
type Input struct {
	GrossAmount      float64
	CardType         string
	InstallmentCount int
	TerminalID       string
	Date             time.Time
}

// Result is the full settlement breakdown for one transaction. It is
// derived fresh on every call and never stored on its own.
type Result struct {
	GrossAmount      float64   `json:"gross_amount"`
	CommissionRate   float64   `json:"commission_rate"`
	CommissionAmount float64   `json:"commission_amount"`
	NetAmount        float64   `json:"net_amount"`
	EFTFee           float64   `json:"eft_fee"`
	MaintenanceFee   float64   `json:"maintenance_fee"`
	FinalAmount      float64   `json:"final_amount"`
	ValueDate        time.Time `json:"value_date"`
	Breakdown        string    `json:"breakdown"`
}

// Scenario is a Result annotated with where it was computed, for
// side-by-side display.
type Scenario struct {
	Result
	BankName     string `json:"bank_name"`
	TerminalInfo string `json:"terminal_info"`
}

// Comparison is the outcome of running the calculator over two
// independent (terminal, installment) choices for the same sale.
type Comparison struct {
	Scenario1         Scenario `json:"scenario1"`
	Scenario2         Scenario `json:"scenario2"`
	Difference        float64  `json:"difference"`
	BetterOption      int      `json:"better_option"`
	SavingsPercentage float64  `json:"savings_percentage"`
}

// Recommendation ranks one candidate terminal for a prospective sale.
// Savings is relative to the top-ranked candidate, so the best entry
// carries 0 and every other entry is negative or zero.
type Recommendation struct {
	TerminalID     string  `json:"terminal_id"`
	BankName       string  `json:"bank_name"`
	FinalAmount    float64 `json:"final_amount"`
	CommissionRate float64 `json:"commission_rate"`
	Savings        float64 `json:"savings"`
}

// BankDayTotal is a per-bank rollup line inside a daily report.
type BankDayTotal struct {
	BankID     string  `json:"bank_id"`
	BankName   string  `json:"bank_name"`
	Gross      float64 `json:"gross"`
	Commission float64 `json:"commission"`
	Net        float64 `json:"net"`
	Count      int     `json:"count"`
}

// DailyReport aggregates all transactions of a single calendar day.
type DailyReport struct {
	Date             time.Time      `json:"date"`
	TotalGross       float64        `json:"total_gross"`
	TotalCommission  float64        `json:"total_commission"`
	TotalEFTFee      float64        `json:"total_eft_fee"`
	TotalNet         float64        `json:"total_net"`
	TransactionCount int            `json:"transaction_count"`
	ByBank           []BankDayTotal `json:"by_bank"`
}

// BankForecastAmount is a per-bank slice of one forecast day.
type BankForecastAmount struct {
	BankID   string  `json:"bank_id"`
	BankName string  `json:"bank_name"`
	Amount   float64 `json:"amount"`
}

// ForecastEntry is the expected cash inflow for one future day: the
// transactions whose value date lands on that day and their summed
// final amounts.
type ForecastEntry struct {
	Date           time.Time            `json:"date"`
	ExpectedAmount float64              `json:"expected_amount"`
	Transactions   []models.Transaction `json:"transactions"`
	BankBreakdown  []BankForecastAmount `json:"bank_breakdown"`
}
