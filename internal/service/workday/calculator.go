package workday

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payconfig"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/workday"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/validator"
)

const minutesPerDay = 24 * 60

// Decompose splits one shift's elapsed time into the eight pay categories
// and prices them. Pure function: no I/O, no shared state, deterministic
// for identical inputs.
//
// The night window runs from rules.NightStart on the shift's start date to
// rules.NightEnd on the following morning. A shift whose end time is not
// strictly after its start time crosses midnight. Ordinary hours are capped
// at rules.BaseDailyHours and allocated proportionally between day and
// night minutes; the remainder is overtime. On a rest day (Sunday/holiday)
// the ordinary and overtime buckets move to their holiday counterparts.
//
// Night and overtime categories are priced at rate*(1+multiplier). The two
// holiday surcharge categories are priced at rate*multiplier: their
// multiplier is the effective rate for the replaced ordinary hours, not an
// additive premium.
func Decompose(
	monthlySalary decimal.Decimal,
	rate payconfig.PayRateConfig,
	mult payconfig.SurchargeMultipliers,
	rules payconfig.SurchargeRules,
	shift workday.ShiftInterval,
	restDay bool,
) (workday.Computation, error) {
	if monthlySalary.IsNegative() {
		return workday.Computation{}, fmt.Errorf("%w: monthly salary must be non-negative, got %s", workday.ErrInvalidInput, monthlySalary)
	}
	if rate.MonthlyDivisorHours <= 0 {
		return workday.Computation{}, fmt.Errorf("%w: monthly_divisor_hours must be positive, got %v", payconfig.ErrInvalidConfiguration, rate.MonthlyDivisorHours)
	}
	if err := mult.Validate(); err != nil {
		return workday.Computation{}, err
	}
	if rules.BaseDailyHours <= 0 {
		return workday.Computation{}, fmt.Errorf("%w: base daily hours must be positive, got %v", workday.ErrInvalidInput, rules.BaseDailyHours)
	}

	startMin, err := validator.ParseClockTime(shift.StartTime)
	if err != nil {
		return workday.Computation{}, fmt.Errorf("%w: start time: %v", workday.ErrInvalidInput, err)
	}
	endMin, err := validator.ParseClockTime(shift.EndTime)
	if err != nil {
		return workday.Computation{}, fmt.Errorf("%w: end time: %v", workday.ErrInvalidInput, err)
	}
	nightStartMin, err := validator.ParseClockTime(rules.NightStart)
	if err != nil {
		return workday.Computation{}, fmt.Errorf("%w: night_start: %v", payconfig.ErrInvalidConfiguration, err)
	}
	nightEndMin, err := validator.ParseClockTime(rules.NightEnd)
	if err != nil {
		return workday.Computation{}, fmt.Errorf("%w: night_end: %v", payconfig.ErrInvalidConfiguration, err)
	}

	// Absolute minutes from the shift date's midnight. End at or before
	// start means the shift ends on the following day.
	start := startMin
	end := endMin
	if end <= start {
		end += minutesPerDay
	}
	totalMin := end - start

	// The night window against the same axis: NightStart..midnight on the
	// start date, then midnight..NightEnd on the following day.
	nightBeforeMidnight := overlapMinutes(start, end, nightStartMin, minutesPerDay)
	nightAfterMidnight := overlapMinutes(start, end, minutesPerDay, minutesPerDay+nightEndMin)

	nightMin := min(nightBeforeMidnight+nightAfterMidnight, totalMin)
	dayMin := totalMin - nightMin

	// Optional granularity rounding. The recomputed total may shift
	// slightly; that is accepted behaviour.
	if rules.RoundToMinutes > 1 {
		dayMin = roundToMultiple(dayMin, rules.RoundToMinutes)
		nightMin = roundToMultiple(nightMin, rules.RoundToMinutes)
		totalMin = dayMin + nightMin
	}

	// Ordinary cap, allocated proportionally between day and night.
	// Round-half-up on the day share; night takes the remainder.
	capMin := min(totalMin, int(math.Round(rules.BaseDailyHours*60)))
	dayRatio := 0.0
	if totalMin > 0 {
		dayRatio = float64(dayMin) / float64(totalMin)
	}
	ordinaryDayMin := int(math.Round(float64(capMin) * dayRatio))
	ordinaryNightMin := capMin - ordinaryDayMin
	overtimeDayMin := max(0, dayMin-ordinaryDayMin)
	overtimeNightMin := max(0, nightMin-ordinaryNightMin)

	var hours workday.HourBreakdown
	hours.Total = toHours(totalMin)
	if restDay {
		hours.HolidayDaySurcharge = toHours(ordinaryDayMin)
		hours.HolidayNightSurcharge = toHours(ordinaryNightMin)
		hours.OvertimeDayHoliday = toHours(overtimeDayMin)
		hours.OvertimeNightHoliday = toHours(overtimeNightMin)
	} else {
		hours.Ordinary = toHours(ordinaryDayMin)
		hours.NightSurchargeOrdinary = toHours(ordinaryNightMin)
		hours.OvertimeDay = toHours(overtimeDayMin)
		hours.OvertimeNight = toHours(overtimeNightMin)
	}

	hourlyRate := monthlySalary.Div(decimal.NewFromFloat(rate.MonthlyDivisorHours)).Round(2)

	one := decimal.NewFromInt(1)
	var values workday.ValueBreakdown
	values.Ordinary = categoryValue(hours.Ordinary, hourlyRate, one)
	values.NightSurchargeOrdinary = categoryValue(hours.NightSurchargeOrdinary, hourlyRate, one.Add(mult.NightOrdinary))
	values.HolidayDaySurcharge = categoryValue(hours.HolidayDaySurcharge, hourlyRate, mult.HolidayDay)
	values.HolidayNightSurcharge = categoryValue(hours.HolidayNightSurcharge, hourlyRate, mult.HolidayNight)
	values.OvertimeDay = categoryValue(hours.OvertimeDay, hourlyRate, one.Add(mult.OvertimeDay))
	values.OvertimeNight = categoryValue(hours.OvertimeNight, hourlyRate, one.Add(mult.OvertimeNight))
	values.OvertimeDayHoliday = categoryValue(hours.OvertimeDayHoliday, hourlyRate, one.Add(mult.OvertimeDayHoliday))
	values.OvertimeNightHoliday = categoryValue(hours.OvertimeNightHoliday, hourlyRate, one.Add(mult.OvertimeNightHoliday))
	values.Total = values.Ordinary.
		Add(values.NightSurchargeOrdinary).
		Add(values.HolidayDaySurcharge).
		Add(values.HolidayNightSurcharge).
		Add(values.OvertimeDay).
		Add(values.OvertimeNight).
		Add(values.OvertimeDayHoliday).
		Add(values.OvertimeNightHoliday).
		Round(2)

	return workday.Computation{
		HourlyRate: hourlyRate,
		Hours:      hours,
		Values:     values,
	}, nil
}

// overlapMinutes returns the overlap of [aStart, aEnd) and [bStart, bEnd).
func overlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	s := max(aStart, bStart)
	e := min(aEnd, bEnd)
	if e > s {
		return e - s
	}
	return 0
}

func roundToMultiple(minutes, granularity int) int {
	return int(math.Round(float64(minutes)/float64(granularity))) * granularity
}

// toHours converts minutes to decimal hours rounded to 2 places.
func toHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

func categoryValue(hours float64, hourlyRate decimal.Decimal, factor decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(hours).Mul(hourlyRate).Mul(factor).Round(2)
}
