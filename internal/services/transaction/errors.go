package transaction

import "errors"

// Service errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidInput        = errors.New("invalid transaction input")
	ErrUnknownTerminal     = errors.New("terminal does not exist")
)
