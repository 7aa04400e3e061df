package payconfig

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/validator"
)

// Bundle names used as storage keys.
const (
	BundleRate        = "pay_rate"
	BundleMultipliers = "surcharge_multipliers"
	BundleRules       = "surcharge_rules"
)

// PayRateConfig converts a monthly salary into an hourly rate.
type PayRateConfig struct {
	MonthlyDivisorHours float64 `json:"monthly_divisor_hours"`
}

func (c PayRateConfig) Validate() error {
	if c.MonthlyDivisorHours <= 0 {
		return fmt.Errorf("%w: monthly_divisor_hours must be positive, got %v", ErrInvalidConfiguration, c.MonthlyDivisorHours)
	}
	return nil
}

// SurchargeMultipliers holds the seven premium fractions. The two holiday
// surcharge multipliers are effective total-pay multipliers applied to
// replaced ordinary hours; the rest are additive on top of the base rate.
type SurchargeMultipliers struct {
	NightOrdinary        decimal.Decimal `json:"night_ordinary"`
	HolidayDay           decimal.Decimal `json:"holiday_day"`
	HolidayNight         decimal.Decimal `json:"holiday_night"`
	OvertimeDay          decimal.Decimal `json:"overtime_day"`
	OvertimeNight        decimal.Decimal `json:"overtime_night"`
	OvertimeDayHoliday   decimal.Decimal `json:"overtime_day_holiday"`
	OvertimeNightHoliday decimal.Decimal `json:"overtime_night_holiday"`
}

func (m SurchargeMultipliers) Validate() error {
	named := []struct {
		name  string
		value decimal.Decimal
	}{
		{"night_ordinary", m.NightOrdinary},
		{"holiday_day", m.HolidayDay},
		{"holiday_night", m.HolidayNight},
		{"overtime_day", m.OvertimeDay},
		{"overtime_night", m.OvertimeNight},
		{"overtime_day_holiday", m.OvertimeDayHoliday},
		{"overtime_night_holiday", m.OvertimeNightHoliday},
	}
	for _, n := range named {
		if n.value.IsNegative() {
			return fmt.Errorf("%w: multiplier %s must be non-negative, got %s", ErrInvalidConfiguration, n.name, n.value)
		}
	}
	return nil
}

// SurchargeRules defines the night window and ordinary-hours threshold.
// NightEnd is interpreted as the following morning relative to NightStart.
type SurchargeRules struct {
	NightStart     string  `json:"night_start"` // "21:00"
	NightEnd       string  `json:"night_end"`   // "06:00"
	BaseDailyHours float64 `json:"base_daily_hours"`
	RoundToMinutes int     `json:"round_to_minutes,omitempty"`
}

func (r SurchargeRules) Validate() error {
	if !validator.IsValidClockTime(r.NightStart) {
		return fmt.Errorf("%w: night_start %q is not \"HH:MM\"", ErrInvalidConfiguration, r.NightStart)
	}
	if !validator.IsValidClockTime(r.NightEnd) {
		return fmt.Errorf("%w: night_end %q is not \"HH:MM\"", ErrInvalidConfiguration, r.NightEnd)
	}
	if r.BaseDailyHours <= 0 {
		return fmt.Errorf("%w: base_daily_hours must be positive, got %v", ErrInvalidConfiguration, r.BaseDailyHours)
	}
	if r.RoundToMinutes < 0 {
		return fmt.Errorf("%w: round_to_minutes must not be negative, got %d", ErrInvalidConfiguration, r.RoundToMinutes)
	}
	return nil
}
