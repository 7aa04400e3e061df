package employee

import (
	"github.com/shopspring/decimal"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName          string          `json:"full_name"`
	Email             string          `json:"email"`
	Documento         *string         `json:"documento,omitempty"`
	Area              *string         `json:"area,omitempty"`
	Company           string          `json:"company"`
	MonthlyBaseSalary decimal.Decimal `json:"monthly_base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	} else if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name must not exceed 255 characters"})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if r.Documento != nil && !validator.IsValidDocumento(*r.Documento) {
		errs = append(errs, validator.ValidationError{Field: "documento", Message: "documento must be 6-12 digits"})
	}

	if !validator.IsInSlice(r.Company, Companies()) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "company must be one of NETCOL, TRIANGULUM, INTEEGRA"})
	}

	if r.MonthlyBaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_base_salary", Message: "monthly_base_salary must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FullName          *string          `json:"full_name,omitempty"`
	Documento         *string          `json:"documento,omitempty"`
	Area              *string          `json:"area,omitempty"`
	Company           *string          `json:"company,omitempty"`
	MonthlyBaseSalary *decimal.Decimal `json:"monthly_base_salary,omitempty"`
	Active            *bool            `json:"active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name must not be empty"})
	}
	if r.Documento != nil && !validator.IsValidDocumento(*r.Documento) {
		errs = append(errs, validator.ValidationError{Field: "documento", Message: "documento must be 6-12 digits"})
	}
	if r.Company != nil && !validator.IsInSlice(*r.Company, Companies()) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "company must be one of NETCOL, TRIANGULUM, INTEEGRA"})
	}
	if r.MonthlyBaseSalary != nil && r.MonthlyBaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_base_salary", Message: "monthly_base_salary must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Company *string
	Active  *bool
	Search  *string
	Page    int
	Limit   int
}

type EmployeeResponse struct {
	ID                string          `json:"id"`
	FullName          string          `json:"full_name"`
	Email             string          `json:"email"`
	Documento         *string         `json:"documento,omitempty"`
	Area              *string         `json:"area,omitempty"`
	Company           string          `json:"company"`
	MonthlyBaseSalary decimal.Decimal `json:"monthly_base_salary"`
	Active            bool            `json:"active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		FullName:          e.FullName,
		Email:             e.Email,
		Documento:         e.Documento,
		Area:              e.Area,
		Company:           e.Company,
		MonthlyBaseSalary: e.MonthlyBaseSalary,
		Active:            e.Active,
	}
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalItems int64              `json:"total_items"`
}
