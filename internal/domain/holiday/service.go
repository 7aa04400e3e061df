package holiday

import (
	"context"
	"time"
)

// HolidayService is the holiday oracle: Sundays plus Colombian public
// holidays (computed and manually registered). Caching strategy is the
// oracle's own concern; callers only see the boolean contract.
type HolidayService interface {
	// IsRestDay reports whether the date triggers holiday surcharge rates.
	IsRestDay(ctx context.Context, date time.Time) (bool, error)

	// ListYear returns every holiday of the year, computed and manual.
	ListYear(ctx context.Context, year int) ([]HolidayResponse, error)

	// Register stores a manual holiday.
	Register(ctx context.Context, req RegisterHolidayRequest) (HolidayResponse, error)

	// Remove deletes a manual holiday. Computed holidays cannot be removed.
	Remove(ctx context.Context, date time.Time) error

	// WarmYear precomputes the almanac for the year so later lookups hit the cache.
	WarmYear(ctx context.Context, year int) error
}
