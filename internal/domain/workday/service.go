package workday

import "context"

// WorkdayService builds and serves jornada records.
type WorkdayService interface {
	// Compute resolves the shift, configuration and holiday flag, runs the
	// decomposition engine and persists one record for the employee-day.
	Compute(ctx context.Context, req ComputeRequest) (WorkdayResponse, error)

	// ComputeBulk computes a date range for a set of employees. Days are
	// independent; individual failures are collected, not fatal.
	ComputeBulk(ctx context.Context, req BulkComputeRequest) (BulkComputeResponse, error)

	Get(ctx context.Context, id string) (WorkdayResponse, error)

	ListByEmployee(ctx context.Context, employeeID string, filter RangeFilter) ([]WorkdayResponse, error)

	// Close finalises a computed record.
	Close(ctx context.Context, id string) (WorkdayResponse, error)
}
