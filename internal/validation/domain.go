package validation

import (
	"posrecon/internal/models"
)

// CalculationInput validates the scalar parameters shared by the
// single-transaction, comparison and recommendation requests.
func (v *Validator) CalculationInput(grossAmount float64, cardType string, installments int) {
	v.Range("gross_amount", grossAmount, MinGrossAmount, MaxGrossAmount)
	v.CardType("card_type", cardType)
	v.Range("installment_count", float64(installments), MinInstallments, MaxInstallments)
}

// CardType checks a card category against the closed set.
func (v *Validator) CardType(field, cardType string) {
	v.OneOf(field, cardType, models.CardPersonal, models.CardCommercial)
}

// Transaction validates a manual transaction entry.
func (v *Validator) Transaction(txn *models.Transaction) {
	v.CalculationInput(txn.GrossAmount, txn.CardType, txn.InstallmentCount)
	v.Required("terminal_id", txn.TerminalID)
	v.Check(!txn.Date.IsZero(), "date", "must be set")
	v.MaxLength("auth_code", txn.AuthCode, MaxAuthCodeLength)
	if txn.CardLastFour != "" {
		v.Check(len(txn.CardLastFour) == 4, "card_last_four", "must be exactly 4 digits")
	}
}

// Bank validates bank reference data.
func (v *Validator) Bank(bank *models.Bank) {
	v.Required("id", bank.ID)
	v.Required("name", bank.Name)
	v.MaxLength("name", bank.Name, MaxNameLength)
	v.Check(bank.DefaultEFTFee >= 0, "default_eft_fee", "must not be negative")
	v.OneOf("agreement_type", bank.AgreementType,
		models.AgreementStandard, models.AgreementSpecial, models.AgreementCorporate)
}

// Terminal validates POS terminal reference data.
func (v *Validator) Terminal(terminal *models.Terminal) {
	v.Required("id", terminal.ID)
	v.Required("bank_id", terminal.BankID)
	v.Required("branch_id", terminal.BranchID)
	v.Required("terminal_no", terminal.TerminalNo)
	v.OneOf("settlement_policy", terminal.SettlementPolicy,
		models.SettlementNextDay, models.SettlementBlocked, models.SettlementHybrid)
	v.Check(terminal.BlockedDays >= 0, "blocked_days", "must not be negative")
	v.Check(terminal.MonthlyMaintenanceFee >= 0, "monthly_maintenance_fee", "must not be negative")

	if terminal.SettlementPolicy == models.SettlementHybrid {
		total := terminal.HybridNextDayShare + terminal.HybridBlockedShare
		v.Check(total > 0, "hybrid_ratio", "shares must be set for hybrid terminals")
	}
}

// CommissionRate validates one rate matrix entry.
func (v *Validator) CommissionRate(rate *models.CommissionRate) {
	v.Required("bank_id", rate.BankID)
	v.CardType("card_type", rate.CardType)
	v.Range("installment_count", float64(rate.InstallmentCount), MinInstallments, MaxInstallments)
	v.Range("rate", rate.Rate, 0, 100)
}
