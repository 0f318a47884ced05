package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEaster(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2023, time.April, 9},
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
	}

	for _, tt := range tests {
		got := Easter(tt.year)
		assert.Equal(t, date(tt.year, tt.month, tt.day), got, "Easter %d", tt.year)
	}
}

func TestIsHoliday(t *testing.T) {
	holidays := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 6),
		date(2024, time.March, 31), // Easter Sunday
		date(2024, time.April, 1),  // Easter Monday
		date(2024, time.April, 25),
		date(2024, time.May, 1),
		date(2024, time.June, 2),
		date(2024, time.August, 15),
		date(2024, time.November, 1),
		date(2024, time.December, 8),
		date(2024, time.December, 25),
		date(2024, time.December, 26),
	}
	for _, d := range holidays {
		assert.True(t, IsHoliday(d), "%s should be a holiday", d.Format("2006-01-02"))
	}

	workdays := []time.Time{
		date(2024, time.March, 4), // a plain Monday
		date(2024, time.March, 9), // a plain Saturday
		date(2024, time.April, 2), // day after Easter Monday
	}
	for _, d := range workdays {
		assert.False(t, IsHoliday(d), "%s should not be a holiday", d.Format("2006-01-02"))
	}
}

func TestIsBusinessDay(t *testing.T) {
	// Saturday is nominally a business day
	assert.True(t, IsBusinessDay(date(2024, time.March, 9)))
	// Sunday is not
	assert.False(t, IsBusinessDay(date(2024, time.March, 10)))
	// weekday holiday is not
	assert.False(t, IsBusinessDay(date(2024, time.December, 25)))
	// regular Monday is
	assert.True(t, IsBusinessDay(date(2024, time.March, 4)))
}
