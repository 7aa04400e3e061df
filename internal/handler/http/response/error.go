package response

import (
	"errors"
	"net/http"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/auth"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/employee"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/holiday"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payconfig"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/shift"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/user"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/workday"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired), errors.Is(err, user.ErrPayrollAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrDocumentoExists):
		Conflict(w, "Documento already registered")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftCodeExists):
		Conflict(w, "Shift code already exists")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already registered for that date")

	// Workday domain errors
	case errors.Is(err, workday.ErrWorkdayNotFound):
		NotFound(w, "Workday record not found")
	case errors.Is(err, workday.ErrWorkdayExists):
		Conflict(w, "Workday already computed for that employee and date")
	case errors.Is(err, workday.ErrWorkdayAlreadyClosed):
		Conflict(w, "Workday record is already closed")
	case errors.Is(err, workday.ErrInvalidInput):
		BadRequest(w, err.Error(), nil)

	// Configuration errors
	case errors.Is(err, payconfig.ErrInvalidConfiguration):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
