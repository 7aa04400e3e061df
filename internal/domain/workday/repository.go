package workday

import (
	"context"
	"time"
)

type WorkdayRepository interface {
	// Create persists a new record. The store enforces one record per
	// (employee_id, date); a duplicate insert returns ErrWorkdayExists.
	Create(ctx context.Context, w Workday) (Workday, error)

	GetByID(ctx context.Context, id string) (Workday, error)

	// GetByEmployeeAndDate returns nil when no record exists. Used by the
	// builder's check-then-write conflict detection.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Workday, error)

	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Workday, error)

	// ListRange returns all records in [from, to], optionally filtered by
	// company, with employee names joined for reporting.
	ListRange(ctx context.Context, from, to time.Time, company *string) ([]Workday, error)

	// Close transitions computed -> closed and stamps closed_at.
	Close(ctx context.Context, id string, closedAt time.Time) error

	// Delete removes a record. Only used by explicit recomputation.
	Delete(ctx context.Context, id string) error
}
