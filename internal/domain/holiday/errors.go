package holiday

import "errors"

var (
	ErrHolidayExists   = errors.New("holiday already registered for that date")
	ErrHolidayNotFound = errors.New("holiday not found")
)
