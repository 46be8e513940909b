package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sandeep0076/budget-sage/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name      string
		current   time.Time
		frequency models.Frequency
		expected  time.Time
	}{
		{"daily", date(2024, time.March, 10), models.FrequencyDaily, date(2024, time.March, 11)},
		{"daily across month end", date(2024, time.January, 31), models.FrequencyDaily, date(2024, time.February, 1)},
		{"weekly", date(2024, time.March, 10), models.FrequencyWeekly, date(2024, time.March, 17)},
		{"biweekly", date(2024, time.March, 10), models.FrequencyBiweekly, date(2024, time.March, 24)},
		{"monthly mid-month", date(2024, time.May, 15), models.FrequencyMonthly, date(2024, time.June, 15)},
		{"monthly jan 31 to leap feb", date(2024, time.January, 31), models.FrequencyMonthly, date(2024, time.February, 29)},
		{"monthly jan 31 to non-leap feb", date(2023, time.January, 31), models.FrequencyMonthly, date(2023, time.February, 28)},
		{"monthly mar 31 to apr 30", date(2024, time.March, 31), models.FrequencyMonthly, date(2024, time.April, 30)},
		{"monthly dec 31 to jan 31", date(2024, time.December, 31), models.FrequencyMonthly, date(2025, time.January, 31)},
		{"quarterly", date(2024, time.May, 15), models.FrequencyQuarterly, date(2024, time.August, 15)},
		{"quarterly nov 30 to feb", date(2023, time.November, 30), models.FrequencyQuarterly, date(2024, time.February, 29)},
		{"biannually", date(2024, time.March, 31), models.FrequencyBiannually, date(2024, time.September, 30)},
		{"annually", date(2024, time.May, 15), models.FrequencyAnnually, date(2025, time.May, 15)},
		{"annually leap day to non-leap year", date(2024, time.February, 29), models.FrequencyAnnually, date(2025, time.February, 28)},
		{"unknown frequency falls back to monthly", date(2024, time.May, 15), models.Frequency("fortnightly"), date(2024, time.June, 15)},
		{"empty frequency falls back to monthly", date(2024, time.May, 15), models.Frequency(""), date(2024, time.June, 15)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next := NextDueDate(tc.current, tc.frequency)
			assert.Equal(t, tc.expected, next)
		})
	}
}

// Each rollover derives from the incoming due date, so the February clamp
// carries forward as the new anchor day.
func TestNextDueDateClampCarriesForward(t *testing.T) {
	due := date(2024, time.January, 31)

	due = NextDueDate(due, models.FrequencyMonthly)
	assert.Equal(t, date(2024, time.February, 29), due)

	due = NextDueDate(due, models.FrequencyMonthly)
	assert.Equal(t, date(2024, time.March, 29), due)
}

func TestNextDueDateDropsTimeOfDay(t *testing.T) {
	current := time.Date(2024, time.May, 15, 13, 45, 12, 0, time.UTC)
	next := NextDueDate(current, models.FrequencyMonthly)
	assert.Equal(t, date(2024, time.June, 15), next)
}

func TestNextDueDateAlwaysAdvances(t *testing.T) {
	start := date(2024, time.January, 31)
	for _, frequency := range models.ValidFrequencies {
		next := NextDueDate(start, frequency)
		assert.True(t, next.After(start), "frequency %s did not advance the date", frequency)
	}
}
