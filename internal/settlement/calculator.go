package settlement

import (
	"fmt"
	"strings"
)

// Calculate produces the full settlement breakdown for one sale.
//
// It fails only when the input references a terminal missing from the
// snapshot, or a terminal whose bank is missing. Amounts are not
// validated here; callers gate on gross > 0 before invoking.
func (e *Engine) Calculate(in Input) (*Result, error) {
	terminal, ok := e.Terminal(in.TerminalID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTerminalNotFound, in.TerminalID)
	}

	bank, ok := e.Bank(terminal.BankID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBankNotFound, terminal.BankID)
	}

	rate := e.ResolveRate(terminal.BankID, in.CardType, in.InstallmentCount, in.TerminalID)
	commission := in.GrossAmount * rate / 100
	net := in.GrossAmount - commission

	// EFT is a flat per-transfer fee; this engine applies it to every
	// transaction, matching the pricing sheets it reconciles against.
	eftFee := bank.DefaultEFTFee
	maintenance := terminal.MonthlyMaintenanceFee / DaysPerMonth

	final := net - eftFee - maintenance
	valueDate := ValueDate(in.Date, terminal)

	result := &Result{
		GrossAmount:      in.GrossAmount,
		CommissionRate:   rate,
		CommissionAmount: commission,
		NetAmount:        net,
		EFTFee:           eftFee,
		MaintenanceFee:   maintenance,
		FinalAmount:      final,
		ValueDate:        valueDate,
	}
	result.Breakdown = breakdownText(result, in.CardType, in.InstallmentCount)
	return result, nil
}

func breakdownText(r *Result, cardType string, installments int) string {
	plan := "single payment"
	if installments > 1 {
		plan = fmt.Sprintf("%d installments", installments)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Settlement breakdown\n")
	fmt.Fprintf(&b, "Gross amount: %.2f\n", r.GrossAmount)
	fmt.Fprintf(&b, "Card type: %s, %s\n", cardType, plan)
	fmt.Fprintf(&b, "Commission (%.2f%%): -%.2f\n", r.CommissionRate, r.CommissionAmount)
	fmt.Fprintf(&b, "EFT fee: -%.2f\n", r.EFTFee)
	fmt.Fprintf(&b, "Maintenance (daily): -%.2f\n", r.MaintenanceFee)
	fmt.Fprintf(&b, "Final amount: %.2f\n", r.FinalAmount)
	fmt.Fprintf(&b, "Value date: %s", r.ValueDate.Format("2006-01-02"))
	return b.String()
}
