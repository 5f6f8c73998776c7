package simulation

import "errors"

// Service errors
var (
	ErrInvalidInput = errors.New("invalid simulation input")
	ErrNoCandidates = errors.New("no candidate terminals available")
)
