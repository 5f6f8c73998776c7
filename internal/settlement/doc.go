/*
Package settlement implements the calculation engine for POS
reconciliation.

The engine answers one question: given a card transaction on a specific
terminal, how much money lands in the merchant's account, and when. It
covers:

- Commission rate resolution against the sparse rate matrix
  (terminal override, bank-wide exact match, nearest-tier fallback)
- Value-date projection from the terminal's settlement policy
- Full per-transaction settlement breakdowns
- Scenario comparison and best-terminal recommendation
- Batch calculation, daily reports and cash-flow forecasts

Usage:

	engine := settlement.NewEngine(settlement.Dataset{
	    Banks:     banks,
	    Terminals: terminals,
	    Rates:     rates,
	})

	result, err := engine.Calculate(settlement.Input{
	    GrossAmount:      10000,
	    CardType:         models.CardPersonal,
	    InstallmentCount: 1,
	    TerminalID:       "pos-1",
	    Date:             time.Now(),
	})

Everything in this package is a pure function over the dataset the
engine was built with. There is no I/O and no shared mutable state; the
dataset is treated as a read-only snapshot for the engine's lifetime.

Error Handling:

Only two operations can fail, both with caller errors:
- ErrTerminalNotFound: the transaction references an unknown terminal
- ErrBankNotFound: the terminal references an unknown bank

Every other gap in the data (missing rate tiers, empty rate tables,
unconfigured blocked-day counts) resolves to a deterministic fallback
so that comparison and reporting callers never see an error.
*/
package settlement
