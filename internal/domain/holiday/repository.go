package holiday

import (
	"context"
	"time"
)

// HolidayRepository stores manually-registered holidays only; computed
// almanac dates never touch the database.
type HolidayRepository interface {
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	Exists(ctx context.Context, date time.Time) (bool, error)
	Register(ctx context.Context, h Holiday) (Holiday, error)
	Remove(ctx context.Context, date time.Time) error
}
