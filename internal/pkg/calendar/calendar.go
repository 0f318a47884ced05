// Package calendar provides the working-day predicates used by the
// overtime calculation: Italian national holidays (including the
// Easter-dependent ones) and business days.
package calendar

import "time"

// fixed-date national holidays, month/day
var fixedHolidays = [...]struct {
	month time.Month
	day   int
}{
	{time.January, 1},   // Capodanno
	{time.January, 6},   // Epifania
	{time.April, 25},    // Liberazione
	{time.May, 1},       // Festa dei Lavoratori
	{time.June, 2},      // Festa della Repubblica
	{time.August, 15},   // Ferragosto
	{time.November, 1},  // Ognissanti
	{time.December, 8},  // Immacolata
	{time.December, 25}, // Natale
	{time.December, 26}, // Santo Stefano
}

// Easter returns Easter Sunday for the given year in the Gregorian
// calendar (Anonymous Gregorian computus).
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// IsHoliday reports whether date falls on an Italian national holiday.
func IsHoliday(date time.Time) bool {
	for _, h := range fixedHolidays {
		if date.Month() == h.month && date.Day() == h.day {
			return true
		}
	}

	easter := Easter(date.Year())
	if sameDay(date, easter) {
		return true
	}
	// Pasquetta
	return sameDay(date, easter.AddDate(0, 0, 1))
}

// IsBusinessDay reports whether date is a working day. Saturday counts
// as a business day here; the overtime rule special-cases it separately.
func IsBusinessDay(date time.Time) bool {
	if date.Weekday() == time.Sunday {
		return false
	}
	return !IsHoliday(date)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
