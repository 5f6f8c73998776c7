package validation

const (
	// Amount limits
	MinGrossAmount = 0.01
	MaxGrossAmount = 1000000.00

	// Installment plans banks actually offer
	MinInstallments = 1
	MaxInstallments = 24

	// Forecast horizon cap
	MaxForecastDays = 90

	// String lengths
	MaxNameLength     = 100
	MaxAuthCodeLength = 20
)
