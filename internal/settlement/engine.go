package settlement

import (
	"posrecon/internal/models"
)

// Engine evaluates settlement calculations against one reference-data
// snapshot. Build a fresh engine whenever the snapshot changes; engines
// are cheap to construct and safe for concurrent readers.
type Engine struct {
	data      Dataset
	banks     map[string]models.Bank
	terminals map[string]models.Terminal
}

// NewEngine indexes the snapshot and returns an engine bound to it.
func NewEngine(data Dataset) *Engine {
	e := &Engine{
		data:      data,
		banks:     make(map[string]models.Bank, len(data.Banks)),
		terminals: make(map[string]models.Terminal, len(data.Terminals)),
	}
	for _, b := range data.Banks {
		e.banks[b.ID] = b
	}
	for _, t := range data.Terminals {
		e.terminals[t.ID] = t
	}
	return e
}

// Terminal returns the terminal with the given id, if present.
func (e *Engine) Terminal(id string) (models.Terminal, bool) {
	t, ok := e.terminals[id]
	return t, ok
}

// Bank returns the bank with the given id, if present.
func (e *Engine) Bank(id string) (models.Bank, bool) {
	b, ok := e.banks[id]
	return b, ok
}
