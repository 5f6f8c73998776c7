package settlement

// Default values applied when the reference data leaves a gap
const (
	// DefaultRate is the commission percentage used when a bank has no
	// matrix entries at all for the requested card type.
	DefaultRate = 2.50

	// DefaultBlockedDays is used for blocked and hybrid terminals that
	// never had a blocked-day count configured.
	DefaultBlockedDays = 7

	// DaysPerMonth prorates the monthly maintenance fee to a daily
	// charge. Flat 30 regardless of calendar month.
	DaysPerMonth = 30
)

// DefaultForecastDays is how far ahead the cash-flow forecast looks
// when the caller does not say otherwise.
const DefaultForecastDays = 14
