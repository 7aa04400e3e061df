package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/validator"
)

type SummaryFilter struct {
	StartDate string  // "YYYY-MM-DD", inclusive
	EndDate   string  // "YYYY-MM-DD", inclusive
	Company   *string // optional
}

func (f SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be \"YYYY-MM-DD\""})
	}
	end, okEnd := validator.IsValidDate(f.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be \"YYYY-MM-DD\""})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Row is one employee's payroll line: every hour and value category summed
// over the period, plus the grouped figures the nomina table displays.
type Row struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Days         int    `json:"days"`

	OrdinaryHours               float64 `json:"ordinary_hours"`
	NightSurchargeOrdinaryHours float64 `json:"night_surcharge_ordinary_hours"`
	HolidayDaySurchargeHours    float64 `json:"holiday_day_surcharge_hours"`
	HolidayNightSurchargeHours  float64 `json:"holiday_night_surcharge_hours"`
	OvertimeDayHours            float64 `json:"overtime_day_hours"`
	OvertimeNightHours          float64 `json:"overtime_night_hours"`
	OvertimeDayHolidayHours     float64 `json:"overtime_day_holiday_hours"`
	OvertimeNightHolidayHours   float64 `json:"overtime_night_holiday_hours"`
	TotalHours                  float64 `json:"total_hours"`

	// Grouped figures: overtime across the four extra categories and
	// surcharge across the three recargo categories.
	OvertimeHours  float64 `json:"overtime_hours"`
	SurchargeHours float64 `json:"surcharge_hours"`

	OrdinaryValue               decimal.Decimal `json:"ordinary_value"`
	NightSurchargeOrdinaryValue decimal.Decimal `json:"night_surcharge_ordinary_value"`
	HolidayDaySurchargeValue    decimal.Decimal `json:"holiday_day_surcharge_value"`
	HolidayNightSurchargeValue  decimal.Decimal `json:"holiday_night_surcharge_value"`
	OvertimeDayValue            decimal.Decimal `json:"overtime_day_value"`
	OvertimeNightValue          decimal.Decimal `json:"overtime_night_value"`
	OvertimeDayHolidayValue     decimal.Decimal `json:"overtime_day_holiday_value"`
	OvertimeNightHolidayValue   decimal.Decimal `json:"overtime_night_holiday_value"`
	TotalValue                  decimal.Decimal `json:"total_value"`
}

type SummaryResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Rows      []Row  `json:"rows"`
}
