package settlement

import (
	"testing"
	"time"

	"posrecon/internal/models"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValueDate(t *testing.T) {
	data := testDataset()
	terminals := make(map[string]models.Terminal)
	for _, term := range data.Terminals {
		terminals[term.ID] = term
	}

	friday := date(2024, time.January, 5)

	tests := []struct {
		name     string
		terminal string
		txDate   time.Time
		want     time.Time
	}{
		{
			name:     "next day from a Wednesday",
			terminal: "term-next",
			txDate:   wednesday,
			want:     date(2024, time.January, 4), // Thursday
		},
		{
			name:     "next day from a Friday skips the weekend",
			terminal: "term-next",
			txDate:   friday,
			want:     date(2024, time.January, 8), // Monday
		},
		{
			name:     "blocked 3 days from a Friday",
			terminal: "term-blocked",
			txDate:   friday,
			want:     date(2024, time.January, 10), // Mon, Tue, Wed
		},
		{
			name:     "blocked without configured days defaults to 7",
			terminal: "term-blocked-default",
			txDate:   wednesday,
			want:     date(2024, time.January, 12),
		},
		{
			name:     "hybrid with larger next-day share settles next day",
			terminal: "term-hybrid-next",
			txDate:   wednesday,
			want:     date(2024, time.January, 4),
		},
		{
			name:     "hybrid with larger blocked share waits out the block",
			terminal: "term-hybrid-blocked",
			txDate:   wednesday,
			want:     date(2024, time.January, 17), // 10 business days
		},
		{
			name:     "hybrid with unset shares is treated as blocked",
			terminal: "term-hybrid-unset",
			txDate:   wednesday,
			want:     date(2024, time.January, 12), // default 7 business days
		},
		{
			name:     "unrecognized policy behaves as next day",
			terminal: "term-legacy",
			txDate:   wednesday,
			want:     date(2024, time.January, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueDate(tt.txDate, terminals[tt.terminal])
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueDate_TimeOfDayIgnored(t *testing.T) {
	data := testDataset()
	var terminal models.Terminal
	for _, term := range data.Terminals {
		if term.ID == "term-next" {
			terminal = term
		}
	}

	morning := time.Date(2024, time.January, 3, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2024, time.January, 3, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, ValueDate(morning, terminal), ValueDate(evening, terminal))
}

func TestValueDate_NeverLandsOnWeekend(t *testing.T) {
	terminals := []models.Terminal{
		{SettlementPolicy: models.SettlementNextDay},
		{SettlementPolicy: models.SettlementBlocked, BlockedDays: 5},
		{SettlementPolicy: models.SettlementBlocked}, // default days
		{SettlementPolicy: models.SettlementHybrid, HybridNextDayShare: 80, HybridBlockedShare: 20},
		{SettlementPolicy: models.SettlementHybrid, HybridNextDayShare: 20, HybridBlockedShare: 80, BlockedDays: 9},
		{SettlementPolicy: models.SettlementHybrid}, // unset split, default block
		{SettlementPolicy: "something-else"},
	}

	// One full week of starting days covers every weekday.
	for offset := 0; offset < 7; offset++ {
		start := date(2024, time.March, 4).AddDate(0, 0, offset)
		for _, terminal := range terminals {
			got := ValueDate(start, terminal)
			assert.NotEqual(t, time.Saturday, got.Weekday(),
				"start %s policy %s", start.Weekday(), terminal.SettlementPolicy)
			assert.NotEqual(t, time.Sunday, got.Weekday(),
				"start %s policy %s", start.Weekday(), terminal.SettlementPolicy)
			assert.True(t, got.After(start), "value date must advance")
		}
	}
}
