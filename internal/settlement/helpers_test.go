package settlement

import (
	"time"

	"posrecon/internal/models"
)

func strPtr(s string) *string { return &s }

// testDataset is the snapshot used across the engine tests: two banks,
// terminals covering every settlement policy, and a sparse rate matrix
// with a terminal-specific override on term-b.
func testDataset() Dataset {
	return Dataset{
		Banks: []models.Bank{
			{ID: "bank-a", Name: "Alpha Bank", DefaultEFTFee: 12.80, AgreementType: models.AgreementCorporate},
			{ID: "bank-b", Name: "Beta Bank", DefaultEFTFee: 15.00, AgreementType: models.AgreementStandard},
		},
		Terminals: []models.Terminal{
			{ID: "term-next", BankID: "bank-a", BranchID: "branch-1", TerminalNo: "ALP001",
				SettlementPolicy: models.SettlementNextDay, MonthlyMaintenanceFee: 150, Active: true},
			{ID: "term-blocked", BankID: "bank-a", BranchID: "branch-1", TerminalNo: "ALP002",
				SettlementPolicy: models.SettlementBlocked, BlockedDays: 3, MonthlyMaintenanceFee: 120, Active: true},
			{ID: "term-blocked-default", BankID: "bank-a", BranchID: "branch-2", TerminalNo: "ALP003",
				SettlementPolicy: models.SettlementBlocked, MonthlyMaintenanceFee: 120, Active: true},
			{ID: "term-hybrid-next", BankID: "bank-a", BranchID: "branch-2", TerminalNo: "ALP004",
				SettlementPolicy: models.SettlementHybrid, HybridNextDayShare: 70, HybridBlockedShare: 30,
				BlockedDays: 14, MonthlyMaintenanceFee: 160, Active: true},
			{ID: "term-hybrid-blocked", BankID: "bank-a", BranchID: "branch-2", TerminalNo: "ALP005",
				SettlementPolicy: models.SettlementHybrid, HybridNextDayShare: 40, HybridBlockedShare: 60,
				BlockedDays: 10, MonthlyMaintenanceFee: 160, Active: true},
			{ID: "term-hybrid-unset", BankID: "bank-a", BranchID: "branch-2", TerminalNo: "ALP007",
				SettlementPolicy: models.SettlementHybrid, MonthlyMaintenanceFee: 160, Active: true},
			{ID: "term-b", BankID: "bank-b", BranchID: "branch-3", TerminalNo: "BET001",
				SettlementPolicy: models.SettlementNextDay, MonthlyMaintenanceFee: 90, Active: true},
			{ID: "term-legacy", BankID: "bank-a", BranchID: "branch-3", TerminalNo: "ALP006",
				SettlementPolicy: "instant", MonthlyMaintenanceFee: 100, Active: true},
			{ID: "term-orphan", BankID: "ghost", BranchID: "branch-3", TerminalNo: "XXX001",
				SettlementPolicy: models.SettlementNextDay, Active: true},
		},
		Rates: []models.CommissionRate{
			// Alpha Bank personal tiers {1, 2, 3, 6}
			{BankID: "bank-a", CardType: models.CardPersonal, InstallmentCount: 1, Rate: 1.69},
			{BankID: "bank-a", CardType: models.CardPersonal, InstallmentCount: 2, Rate: 2.49},
			{BankID: "bank-a", CardType: models.CardPersonal, InstallmentCount: 3, Rate: 2.99},
			{BankID: "bank-a", CardType: models.CardPersonal, InstallmentCount: 6, Rate: 4.29},
			// Alpha Bank commercial
			{BankID: "bank-a", CardType: models.CardCommercial, InstallmentCount: 1, Rate: 2.29},
			// Beta Bank personal, with a terminal override on term-b
			{BankID: "bank-b", CardType: models.CardPersonal, InstallmentCount: 1, Rate: 1.89},
			{BankID: "bank-b", CardType: models.CardPersonal, InstallmentCount: 3, Rate: 3.19},
			{BankID: "bank-b", TerminalID: strPtr("term-b"), CardType: models.CardPersonal, InstallmentCount: 1, Rate: 1.25},
		},
	}
}

func testEngine() *Engine {
	return NewEngine(testDataset())
}

// wednesday is a known mid-week anchor date for value-date assertions.
var wednesday = time.Date(2024, time.January, 3, 14, 30, 0, 0, time.UTC)
