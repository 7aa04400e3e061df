package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Update(ctx context.Context, e Employee) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// GetNameMap returns id -> full name for every employee.
	// Used by the payroll aggregation to label rows.
	GetNameMap(ctx context.Context) (map[string]string, error)
}
