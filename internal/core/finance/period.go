package finance

import (
	"time"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// allTimeStart is the effectively-unbounded lower bound for the all-time
// preset; any real transaction date falls after it.
var allTimeStart = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// PeriodRange resolves a preset to an inclusive [start, end] date range
// relative to now. "Last N months" starts on the first day of the month
// that is N-1 months before the current month and ends today, so the
// current partial month always counts as one of the N.
func PeriodRange(p domain.Period, now time.Time) (start, end time.Time) {
	end = truncateToDate(now)
	switch p {
	case domain.PeriodLast6Months:
		start = firstOfMonthsAgo(now, 5)
	case domain.PeriodLast12Months:
		start = firstOfMonthsAgo(now, 11)
	case domain.PeriodYearToDate:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case domain.PeriodAllTime:
		start = allTimeStart
	default:
		start = allTimeStart
	}
	return start, end
}

func firstOfMonthsAgo(now time.Time, months int) time.Time {
	year, month, _ := now.Date()
	// time.Date normalizes out-of-range months, so month-months may
	// roll back across year boundaries.
	return time.Date(year, month-time.Month(months), 1, 0, 0, 0, 0, time.UTC)
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
