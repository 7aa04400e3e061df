package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full configuration and payroll access
	RoleLider    Role = "lider"    // Can compute workdays and read payroll for their area
	RoleEmpleado Role = "empleado" // Regular employee, own records only
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	EmployeeID      *string
	OAuthProvider   *string
	OAuthProviderID *string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if the user can manage configuration and employees.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanViewPayroll checks if the user can read cross-employee payroll summaries.
func (u *User) CanViewPayroll() bool {
	return u.Role == RoleAdmin || u.Role == RoleLider
}
