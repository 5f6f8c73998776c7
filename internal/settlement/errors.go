package settlement

import "errors"

// Engine errors
var (
	ErrTerminalNotFound = errors.New("terminal not found")
	ErrBankNotFound     = errors.New("bank not found")
)
