package payroll

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/employee"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payroll"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/workday"
)

type PayrollServiceImpl struct {
	workday.WorkdayRepository
	employee.EmployeeRepository
	logger *slog.Logger
}

func NewPayrollService(workdayRepository workday.WorkdayRepository, employeeRepository employee.EmployeeRepository, logger *slog.Logger) payroll.PayrollService {
	return &PayrollServiceImpl{
		WorkdayRepository:  workdayRepository,
		EmployeeRepository: employeeRepository,
		logger:             logger,
	}
}

// Summary implements payroll.PayrollService. One pass over the period's
// records, folded into one row per employee. Records whose employee no
// longer resolves are logged and skipped, never fatal.
func (s *PayrollServiceImpl) Summary(ctx context.Context, filter payroll.SummaryFilter) (payroll.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.SummaryResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", filter.StartDate)
	end, _ := time.Parse("2006-01-02", filter.EndDate)

	workdays, err := s.WorkdayRepository.ListRange(ctx, start, end, filter.Company)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	names, err := s.EmployeeRepository.GetNameMap(ctx)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	rows := make(map[string]*payroll.Row)
	for _, w := range workdays {
		name, found := names[w.EmployeeID]
		if !found {
			s.logger.Warn("skipping workday with unresolved employee",
				slog.String("workday_id", w.ID),
				slog.String("employee_id", w.EmployeeID),
			)
			continue
		}

		row, started := rows[w.EmployeeID]
		if !started {
			row = &payroll.Row{
				EmployeeID:   w.EmployeeID,
				EmployeeName: name,

				OrdinaryValue:               decimal.Zero,
				NightSurchargeOrdinaryValue: decimal.Zero,
				HolidayDaySurchargeValue:    decimal.Zero,
				HolidayNightSurchargeValue:  decimal.Zero,
				OvertimeDayValue:            decimal.Zero,
				OvertimeNightValue:          decimal.Zero,
				OvertimeDayHolidayValue:     decimal.Zero,
				OvertimeNightHolidayValue:   decimal.Zero,
				TotalValue:                  decimal.Zero,
			}
			rows[w.EmployeeID] = row
		}

		row.Days++

		row.OrdinaryHours += w.Hours.Ordinary
		row.NightSurchargeOrdinaryHours += w.Hours.NightSurchargeOrdinary
		row.HolidayDaySurchargeHours += w.Hours.HolidayDaySurcharge
		row.HolidayNightSurchargeHours += w.Hours.HolidayNightSurcharge
		row.OvertimeDayHours += w.Hours.OvertimeDay
		row.OvertimeNightHours += w.Hours.OvertimeNight
		row.OvertimeDayHolidayHours += w.Hours.OvertimeDayHoliday
		row.OvertimeNightHolidayHours += w.Hours.OvertimeNightHoliday
		row.TotalHours += w.Hours.Total

		row.OrdinaryValue = row.OrdinaryValue.Add(w.Values.Ordinary)
		row.NightSurchargeOrdinaryValue = row.NightSurchargeOrdinaryValue.Add(w.Values.NightSurchargeOrdinary)
		row.HolidayDaySurchargeValue = row.HolidayDaySurchargeValue.Add(w.Values.HolidayDaySurcharge)
		row.HolidayNightSurchargeValue = row.HolidayNightSurchargeValue.Add(w.Values.HolidayNightSurcharge)
		row.OvertimeDayValue = row.OvertimeDayValue.Add(w.Values.OvertimeDay)
		row.OvertimeNightValue = row.OvertimeNightValue.Add(w.Values.OvertimeNight)
		row.OvertimeDayHolidayValue = row.OvertimeDayHolidayValue.Add(w.Values.OvertimeDayHoliday)
		row.OvertimeNightHolidayValue = row.OvertimeNightHolidayValue.Add(w.Values.OvertimeNightHoliday)
		row.TotalValue = row.TotalValue.Add(w.Values.Total)
	}

	result := make([]payroll.Row, 0, len(rows))
	for _, row := range rows {
		row.OvertimeHours = round2(row.OvertimeDayHours + row.OvertimeNightHours + row.OvertimeDayHolidayHours + row.OvertimeNightHolidayHours)
		row.SurchargeHours = round2(row.NightSurchargeOrdinaryHours + row.HolidayDaySurchargeHours + row.HolidayNightSurchargeHours)

		row.OrdinaryHours = round2(row.OrdinaryHours)
		row.NightSurchargeOrdinaryHours = round2(row.NightSurchargeOrdinaryHours)
		row.HolidayDaySurchargeHours = round2(row.HolidayDaySurchargeHours)
		row.HolidayNightSurchargeHours = round2(row.HolidayNightSurchargeHours)
		row.OvertimeDayHours = round2(row.OvertimeDayHours)
		row.OvertimeNightHours = round2(row.OvertimeNightHours)
		row.OvertimeDayHolidayHours = round2(row.OvertimeDayHolidayHours)
		row.OvertimeNightHolidayHours = round2(row.OvertimeNightHolidayHours)
		row.TotalHours = round2(row.TotalHours)

		result = append(result, *row)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].EmployeeName < result[j].EmployeeName
	})

	return payroll.SummaryResponse{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Rows:      result,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
