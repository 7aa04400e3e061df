package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasterSunday(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
		{2030, time.April, 21},
	}

	for _, tc := range cases {
		got := easterSunday(tc.year)
		assert.Equal(t, tc.year, got.Year())
		assert.Equal(t, tc.month, got.Month(), "year %d", tc.year)
		assert.Equal(t, tc.day, got.Day(), "year %d", tc.year)
	}
}

func TestComputedHolidaysCount(t *testing.T) {
	// 6 fixed + 7 Emiliani + 5 Easter-relative, every year.
	for year := 2024; year <= 2027; year++ {
		assert.Len(t, computedHolidays(year), 18, "year %d", year)
	}
}

func TestComputedHolidaysSorted(t *testing.T) {
	holidays := computedHolidays(2025)
	for i := 1; i < len(holidays); i++ {
		assert.True(t, holidays[i-1].Date.Before(holidays[i].Date),
			"%s before %s", holidays[i-1].Date, holidays[i].Date)
	}
}

func TestEmilianiShiftToMonday(t *testing.T) {
	// Jan 6 2024 fell on a Saturday, so Reyes Magos moved to Monday Jan 8.
	assert.True(t, hasHoliday(t, 2024, time.January, 8))
	assert.False(t, hasHoliday(t, 2024, time.January, 6))

	// Jan 6 2025 was already a Monday and stays put.
	assert.True(t, hasHoliday(t, 2025, time.January, 6))
}

func TestFixedHolidaysNeverShift(t *testing.T) {
	// Jul 20 2024 was a Saturday; independence day does not move.
	assert.True(t, hasHoliday(t, 2024, time.July, 20))
	assert.False(t, hasHoliday(t, 2024, time.July, 22))
}

func TestEasterRelativeHolidays2024(t *testing.T) {
	assert.True(t, hasHoliday(t, 2024, time.March, 28), "Jueves Santo")
	assert.True(t, hasHoliday(t, 2024, time.March, 29), "Viernes Santo")
	assert.True(t, hasHoliday(t, 2024, time.May, 13), "Ascension")
	assert.True(t, hasHoliday(t, 2024, time.June, 3), "Corpus Christi")
	assert.True(t, hasHoliday(t, 2024, time.June, 10), "Sagrado Corazon")
}

func TestEmilianiEasterHolidayAlreadyMonday(t *testing.T) {
	// Ascension falls on Easter+43 which is always a Monday; the shift is a
	// no-op but the date must still be present.
	for year := 2024; year <= 2026; year++ {
		easter := easterSunday(year)
		ascension := easter.AddDate(0, 0, 43)
		require.Equal(t, time.Monday, ascension.Weekday())
		assert.True(t, hasHoliday(t, year, ascension.Month(), ascension.Day()), "year %d", year)
	}
}

func hasHoliday(t *testing.T, year int, month time.Month, day int) bool {
	t.Helper()
	for _, h := range computedHolidays(year) {
		if h.Date.Year() == year && h.Date.Month() == month && h.Date.Day() == day {
			return true
		}
	}
	return false
}
