package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name       string
		dateStr    string
		expectedOk bool
		expectedY  int
		expectedM  time.Month
		expectedD  int
	}{
		{"ISO format", "2023-01-15", true, 2023, time.January, 15},
		{"European format", "15.01.2023", true, 2023, time.January, 15},
		{"US format", "01/15/2023", true, 2023, time.January, 15},
		{"Full timestamp", "2023-01-15 10:30:45", true, 2023, time.January, 15},
		{"Whitespace around date", "  2023-01-15  ", true, 2023, time.January, 15},
		{"Empty string", "", false, 0, 0, 0},
		{"Invalid format", "not a date", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseDate(tc.dateStr)

			if tc.expectedOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedY, parsed.Year())
				assert.Equal(t, tc.expectedM, parsed.Month())
				assert.Equal(t, tc.expectedD, parsed.Day())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	parsed, err := ParseMonth("2024-02")
	assert.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.February, parsed.Month())
	assert.Equal(t, 1, parsed.Day())

	_, err = ParseMonth("February 2024")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	full := time.Date(2024, time.May, 15, 13, 45, 12, 999, time.Local)
	truncated := Truncate(full)

	assert.Equal(t, time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), truncated)
}

func TestStartAndEndOfMonth(t *testing.T) {
	mid := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, StartOfMonth(mid).Day())
	assert.Equal(t, 29, EndOfMonth(mid).Day())

	nonLeap := time.Date(2023, time.February, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 28, EndOfMonth(nonLeap).Day())
}

func TestCompareDates(t *testing.T) {
	tests := []struct {
		name     string
		date1    time.Time
		date2    time.Time
		expected int
	}{
		{"earlier day", time.Date(2024, time.May, 14, 0, 0, 0, 0, time.UTC), time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), -1},
		{"later day", time.Date(2024, time.May, 16, 0, 0, 0, 0, time.UTC), time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), 1},
		{"same day ignores time", time.Date(2024, time.May, 15, 23, 59, 0, 0, time.UTC), time.Date(2024, time.May, 15, 0, 1, 0, 0, time.UTC), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CompareDates(tc.date1, tc.date2))
		})
	}
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
	c := time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameMonth(a, b))
	assert.False(t, SameMonth(a, c))
}
