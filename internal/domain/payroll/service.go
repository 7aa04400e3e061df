package payroll

import "context"

// PayrollService aggregates workday records into payroll rows. Pure fold:
// records with a missing employee reference are skipped with a warning,
// never fatal to the run.
type PayrollService interface {
	Summary(ctx context.Context, filter SummaryFilter) (SummaryResponse, error)
}
