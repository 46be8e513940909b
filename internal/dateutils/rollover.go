package dateutils

import (
	"time"

	"github.com/Sandeep0076/budget-sage/internal/models"
)

// NextDueDate computes the next occurrence of a due date for the given
// frequency. Month-based frequencies keep the day-of-month of the input
// date, clamping to the last day of shorter target months: Jan 31 rolls to
// Feb 29 in a leap year, to Feb 28 otherwise.
//
// Unknown frequency values fall back to the monthly rule.
func NextDueDate(current time.Time, frequency models.Frequency) time.Time {
	current = Truncate(current)

	switch frequency {
	case models.FrequencyDaily:
		return current.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return current.AddDate(0, 0, 7)
	case models.FrequencyBiweekly:
		return current.AddDate(0, 0, 14)
	case models.FrequencyQuarterly:
		return addMonthsClamped(current, 3)
	case models.FrequencyBiannually:
		return addMonthsClamped(current, 6)
	case models.FrequencyAnnually:
		return addMonthsClamped(current, 12)
	default:
		return addMonthsClamped(current, 1)
	}
}

// addMonthsClamped advances by whole months, clamping the day-of-month to the
// length of the target month. Going through the first of the target month
// avoids time.AddDate's overflow behavior (Jan 31 + 1 month = Mar 3) and
// handles Feb 29 to a non-leap year for the annual case.
func addMonthsClamped(date time.Time, months int) time.Time {
	day := date.Day()

	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	first = first.AddDate(0, months, 0)

	lastDay := EndOfMonth(first).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
