package shift

import "time"

// Shift is a reusable shift template (turno). Codes like "M8" or "N12" are
// referenced by workday computations; start and end are wall-clock "HH:MM".
// An end at or before the start means the shift crosses midnight.
type Shift struct {
	Code          string
	Name          string
	StartTime     string
	EndTime       string
	DurationHours float64
	Description   *string
	Location      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CrossesMidnight reports whether the shift ends on the following calendar day.
func (s Shift) CrossesMidnight() bool {
	return s.EndTime <= s.StartTime
}
