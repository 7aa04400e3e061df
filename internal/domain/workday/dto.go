package workday

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payconfig"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/validator"
)

type ComputeRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"` // "YYYY-MM-DD"
	ShiftCode  string  `json:"shift_code"`
	Location   *string `json:"location,omitempty"` // "lat,lng"

	// Force deletes a pre-existing record for the same employee-day and
	// recomputes. Without it an existing record is a conflict.
	Force bool `json:"force,omitempty"`
}

func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be \"YYYY-MM-DD\""})
	}
	if validator.IsEmpty(r.ShiftCode) {
		errs = append(errs, validator.ValidationError{Field: "shift_code", Message: "shift_code is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkComputeRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	StartDate   string   `json:"start_date"` // "YYYY-MM-DD", inclusive
	EndDate     string   `json:"end_date"`   // "YYYY-MM-DD", inclusive
	ShiftCode   string   `json:"shift_code"`
	Force       bool     `json:"force,omitempty"`
}

func (r *BulkComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee_id is required"})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be \"YYYY-MM-DD\""})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be \"YYYY-MM-DD\""})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if validator.IsEmpty(r.ShiftCode) {
		errs = append(errs, validator.ValidationError{Field: "shift_code", Message: "shift_code is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RangeFilter struct {
	StartDate *string
	EndDate   *string
}

func (f RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be \"YYYY-MM-DD\""})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be \"YYYY-MM-DD\""})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkdayResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Date            string  `json:"date"`
	ShiftCode       string  `json:"shift_code"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	CrossedMidnight bool    `json:"crossed_midnight"`
	RestDay         bool    `json:"rest_day"`
	Location        *string `json:"location,omitempty"`

	AppliedSalary       decimal.Decimal                `json:"applied_salary"`
	AppliedDivisorHours float64                        `json:"applied_divisor_hours"`
	AppliedHourlyRate   decimal.Decimal                `json:"applied_hourly_rate"`
	AppliedRules        payconfig.SurchargeRules       `json:"applied_rules"`
	AppliedMultipliers  payconfig.SurchargeMultipliers `json:"applied_multipliers"`

	Hours  HourBreakdown  `json:"hours"`
	Values ValueBreakdown `json:"values"`

	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

func ToResponse(w Workday) WorkdayResponse {
	return WorkdayResponse{
		ID:                  w.ID,
		EmployeeID:          w.EmployeeID,
		EmployeeName:        w.EmployeeName,
		Date:                w.Date.Format("2006-01-02"),
		ShiftCode:           w.ShiftCode,
		StartTime:           w.StartTime,
		EndTime:             w.EndTime,
		CrossedMidnight:     w.CrossedMidnight,
		RestDay:             w.RestDay,
		Location:            w.Location,
		AppliedSalary:       w.AppliedSalary,
		AppliedDivisorHours: w.AppliedDivisorHours,
		AppliedHourlyRate:   w.AppliedHourlyRate,
		AppliedRules:        w.AppliedRules,
		AppliedMultipliers:  w.AppliedMultipliers,
		Hours:               w.Hours,
		Values:              w.Values,
		Status:              w.Status,
		CreatedAt:           w.CreatedAt,
		ClosedAt:            w.ClosedAt,
	}
}

// BulkComputeResponse reports per-day outcomes of a bulk run. Days that
// failed keep their error message; successful days carry the record.
type BulkComputeResponse struct {
	Computed []WorkdayResponse `json:"computed"`
	Failed   []BulkFailure     `json:"failed,omitempty"`
}

type BulkFailure struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Reason     string `json:"reason"`
}
