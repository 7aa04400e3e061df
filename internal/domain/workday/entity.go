package workday

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payconfig"
)

type Status string

const (
	StatusComputed Status = "computed"
	StatusClosed   Status = "closed"
)

// ShiftInterval is one shift instance on one calendar day. An end time at
// or before the start time means the shift ends on date+1.
type ShiftInterval struct {
	Date      time.Time
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
}

// HourBreakdown splits a shift's elapsed hours into eight mutually
// exclusive categories. Quantities are decimal hours rounded to 2 places;
// the categories sum to Total within rounding tolerance. The field names
// and JSON keys are a stable contract with reporting tooling.
type HourBreakdown struct {
	Ordinary               float64 `json:"ordinary_hours"`
	NightSurchargeOrdinary float64 `json:"night_surcharge_ordinary"`
	HolidayDaySurcharge    float64 `json:"holiday_day_surcharge"`
	HolidayNightSurcharge  float64 `json:"holiday_night_surcharge"`
	OvertimeDay            float64 `json:"overtime_day"`
	OvertimeNight          float64 `json:"overtime_night"`
	OvertimeDayHoliday     float64 `json:"overtime_day_holiday"`
	OvertimeNightHoliday   float64 `json:"overtime_night_holiday"`
	Total                  float64 `json:"total_hours"`
}

// ValueBreakdown prices each hour category in 2-decimal currency units.
// Total is the sum of the eight already-rounded components.
type ValueBreakdown struct {
	Ordinary               decimal.Decimal `json:"ordinary_value"`
	NightSurchargeOrdinary decimal.Decimal `json:"night_surcharge_ordinary_value"`
	HolidayDaySurcharge    decimal.Decimal `json:"holiday_day_surcharge_value"`
	HolidayNightSurcharge  decimal.Decimal `json:"holiday_night_surcharge_value"`
	OvertimeDay            decimal.Decimal `json:"overtime_day_value"`
	OvertimeNight          decimal.Decimal `json:"overtime_night_value"`
	OvertimeDayHoliday     decimal.Decimal `json:"overtime_day_holiday_value"`
	OvertimeNightHoliday   decimal.Decimal `json:"overtime_night_holiday_value"`
	Total                  decimal.Decimal `json:"total_value"`
}

// Computation is the engine output for a single shift.
type Computation struct {
	HourlyRate decimal.Decimal
	Hours      HourBreakdown
	Values     ValueBreakdown
}

// Workday (jornada) is the persisted record for one employee-day. The
// Applied* fields snapshot every input used by the engine so that later
// configuration changes never alter a stored record.
type Workday struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	ShiftCode       string
	StartTime       string
	EndTime         string
	CrossedMidnight bool
	RestDay         bool // dominical/festivo
	Location        *string

	AppliedSalary       decimal.Decimal
	AppliedDivisorHours float64
	AppliedHourlyRate   decimal.Decimal
	AppliedRules        payconfig.SurchargeRules
	AppliedMultipliers  payconfig.SurchargeMultipliers

	Hours  HourBreakdown
	Values ValueBreakdown

	Status    Status
	CreatedAt time.Time
	ClosedAt  *time.Time

	// DTO / join
	EmployeeName *string
}
