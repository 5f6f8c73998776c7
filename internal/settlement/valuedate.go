package settlement

import (
	"time"

	"posrecon/internal/models"
)

// ValueDate projects the business day on which a transaction settles,
// according to the terminal's settlement policy. Only weekends count as
// non-business days; there is no holiday calendar.
//
// A hybrid terminal does not actually split the payment: whichever
// share is larger picks the whole policy, ties going to next-day. A
// hybrid terminal whose split was never configured is treated as
// blocked. This mirrors how the rate agreements are applied in
// practice today.
func ValueDate(transactionDate time.Time, terminal models.Terminal) time.Time {
	txDate := startOfDay(transactionDate)

	switch terminal.SettlementPolicy {
	case models.SettlementNextDay:
		return addBusinessDays(txDate, 1)

	case models.SettlementBlocked:
		return addBusinessDays(txDate, blockedDays(terminal))

	case models.SettlementHybrid:
		if hybridConfigured(terminal) && terminal.HybridNextDayShare >= terminal.HybridBlockedShare {
			return addBusinessDays(txDate, 1)
		}
		return addBusinessDays(txDate, blockedDays(terminal))

	default:
		return addBusinessDays(txDate, 1)
	}
}

func hybridConfigured(terminal models.Terminal) bool {
	return terminal.HybridNextDayShare != 0 || terminal.HybridBlockedShare != 0
}

func blockedDays(terminal models.Terminal) int {
	if terminal.BlockedDays <= 0 {
		return DefaultBlockedDays
	}
	return terminal.BlockedDays
}

// addBusinessDays advances one calendar day at a time, counting a day
// toward the target only when it is not a Saturday or Sunday. The
// result can therefore never land on a weekend.
func addBusinessDays(date time.Time, days int) time.Time {
	result := date
	added := 0
	for added < days {
		result = result.AddDate(0, 0, 1)
		if wd := result.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return result
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay compares two timestamps by calendar day, ignoring
// time-of-day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
