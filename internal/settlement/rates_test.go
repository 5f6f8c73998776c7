package settlement

import (
	"testing"

	"posrecon/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveRate(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		name         string
		bankID       string
		cardType     string
		installments int
		terminalID   string
		want         float64
	}{
		{
			name:   "exact bank-wide match",
			bankID: "bank-a", cardType: models.CardPersonal, installments: 1,
			want: 1.69,
		},
		{
			name:   "terminal override beats bank-wide entry",
			bankID: "bank-b", cardType: models.CardPersonal, installments: 1,
			terminalID: "term-b",
			want:       1.25,
		},
		{
			name:   "no override for other terminals of same bank",
			bankID: "bank-b", cardType: models.CardPersonal, installments: 1,
			terminalID: "term-other",
			want:       1.89,
		},
		{
			name:   "missing tier rounds up to next defined tier",
			bankID: "bank-a", cardType: models.CardPersonal, installments: 4,
			want: 4.29, // tiers are {1,2,3,6}; first tier >= 4 is 6
		},
		{
			name:   "request beyond all tiers returns highest tier",
			bankID: "bank-a", cardType: models.CardPersonal, installments: 12,
			want: 4.29,
		},
		{
			name:   "no entries for card type falls back to default",
			bankID: "bank-b", cardType: models.CardCommercial, installments: 1,
			want: DefaultRate,
		},
		{
			name:   "unknown bank falls back to default",
			bankID: "bank-z", cardType: models.CardPersonal, installments: 1,
			want: DefaultRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.ResolveRate(tt.bankID, tt.cardType, tt.installments, tt.terminalID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRate_EmptyTable(t *testing.T) {
	engine := NewEngine(Dataset{})
	got := engine.ResolveRate("bank-a", models.CardPersonal, 1, "term-next")
	assert.Equal(t, DefaultRate, got)
}

func TestResolveRate_OverrideWinsRegardlessOfOrder(t *testing.T) {
	data := testDataset()

	// Move the override to the front of the slice; precedence must not
	// depend on insertion order.
	for i, r := range data.Rates {
		if r.TerminalID != nil {
			data.Rates[0], data.Rates[i] = data.Rates[i], data.Rates[0]
			break
		}
	}

	engine := NewEngine(data)
	got := engine.ResolveRate("bank-b", models.CardPersonal, 1, "term-b")
	assert.Equal(t, 1.25, got)
}
