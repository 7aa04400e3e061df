package holiday

import (
	"sort"
	"time"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/holiday"
)

// Colombian public holiday almanac (Ley 51 de 1983). Three kinds of dates:
// fixed, Easter-relative, and Emiliani dates that move to the following
// Monday when they do not already fall on one.

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

var fixedHolidays = []fixedHoliday{
	{time.January, 1, "Año Nuevo"},
	{time.May, 1, "Día del Trabajo"},
	{time.July, 20, "Día de la Independencia"},
	{time.August, 7, "Batalla de Boyacá"},
	{time.December, 8, "Inmaculada Concepción"},
	{time.December, 25, "Navidad"},
}

// emilianiHolidays shift to the next Monday.
var emilianiHolidays = []fixedHoliday{
	{time.January, 6, "Día de los Reyes Magos"},
	{time.March, 19, "Día de San José"},
	{time.June, 29, "San Pedro y San Pablo"},
	{time.August, 15, "Asunción de la Virgen"},
	{time.October, 12, "Día de la Raza"},
	{time.November, 1, "Todos los Santos"},
	{time.November, 11, "Independencia de Cartagena"},
}

type easterHoliday struct {
	offsetDays int
	name       string
	emiliani   bool
}

var easterHolidays = []easterHoliday{
	{-3, "Jueves Santo", false},
	{-2, "Viernes Santo", false},
	{43, "Ascensión del Señor", true},
	{64, "Corpus Christi", true},
	{71, "Sagrado Corazón", true},
}

// easterSunday computes the Gregorian Easter date using Butcher's algorithm.
func easterSunday(year int) time.Time {
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

// nextMonday moves the date forward to the following Monday unless it
// already is one.
func nextMonday(d time.Time) time.Time {
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// computedHolidays returns every Colombian public holiday of the year,
// sorted by date.
func computedHolidays(year int) []holiday.Holiday {
	var holidays []holiday.Holiday

	for _, f := range fixedHolidays {
		holidays = append(holidays, holiday.Holiday{
			Date:   time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC),
			Name:   f.name,
			Source: holiday.SourceComputed,
		})
	}

	for _, f := range emilianiHolidays {
		holidays = append(holidays, holiday.Holiday{
			Date:   nextMonday(time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC)),
			Name:   f.name,
			Source: holiday.SourceComputed,
		})
	}

	easter := easterSunday(year)
	for _, e := range easterHolidays {
		date := easter.AddDate(0, 0, e.offsetDays)
		if e.emiliani {
			date = nextMonday(date)
		}
		holidays = append(holidays, holiday.Holiday{
			Date:   date,
			Name:   e.name,
			Source: holiday.SourceComputed,
		})
	}

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays
}
