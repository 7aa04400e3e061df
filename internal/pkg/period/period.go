package period

import "time"

// Period is one payroll cycle. The company cycle runs from the 15th of a
// month to the 14th of the following month, inclusive on both ends.
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) StartISO() string { return p.Start.Format("2006-01-02") }
func (p Period) EndISO() string   { return p.End.Format("2006-01-02") }

// Contains reports whether the date falls inside the period.
func (p Period) Contains(date time.Time) bool {
	d := truncate(date)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Current returns the payroll period the given date belongs to.
func Current(date time.Time) Period {
	d := truncate(date)
	start := time.Date(d.Year(), d.Month(), 15, 0, 0, 0, 0, d.Location())
	if d.Day() < 15 {
		start = start.AddDate(0, -1, 0)
	}
	end := time.Date(start.Year(), start.Month(), 15, 0, 0, 0, 0, start.Location()).
		AddDate(0, 1, -1)
	return Period{Start: start, End: end}
}

// Previous returns the period immediately before the one containing date.
func Previous(date time.Time) Period {
	cur := Current(date)
	return Current(cur.Start.AddDate(0, 0, -1))
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
