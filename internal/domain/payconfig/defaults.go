package payconfig

import "github.com/shopspring/decimal"

// Colombian defaults, served when no stored override exists.

func DefaultPayRate() PayRateConfig {
	return PayRateConfig{MonthlyDivisorHours: 220}
}

func DefaultMultipliers() SurchargeMultipliers {
	return SurchargeMultipliers{
		NightOrdinary:        decimal.NewFromFloat(0.35),
		HolidayDay:           decimal.NewFromFloat(0.75),
		HolidayNight:         decimal.NewFromFloat(1.10),
		OvertimeDay:          decimal.NewFromFloat(0.25),
		OvertimeNight:        decimal.NewFromFloat(0.75),
		OvertimeDayHoliday:   decimal.NewFromFloat(1.00),
		OvertimeNightHoliday: decimal.NewFromFloat(1.50),
	}
}

func DefaultRules() SurchargeRules {
	return SurchargeRules{
		NightStart:     "21:00",
		NightEnd:       "06:00",
		BaseDailyHours: 8,
	}
}
