package payroll

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/employee"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payroll"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/workday"
)

type stubWorkdayRepository struct {
	workdays    []workday.Workday
	lastCompany *string
}

func (s *stubWorkdayRepository) Create(ctx context.Context, w workday.Workday) (workday.Workday, error) {
	panic("not used")
}

func (s *stubWorkdayRepository) GetByID(ctx context.Context, id string) (workday.Workday, error) {
	panic("not used")
}

func (s *stubWorkdayRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*workday.Workday, error) {
	panic("not used")
}

func (s *stubWorkdayRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]workday.Workday, error) {
	panic("not used")
}

func (s *stubWorkdayRepository) ListRange(ctx context.Context, from, to time.Time, company *string) ([]workday.Workday, error) {
	s.lastCompany = company
	var out []workday.Workday
	for _, w := range s.workdays {
		if w.Date.Before(from) || w.Date.After(to) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (s *stubWorkdayRepository) Close(ctx context.Context, id string, closedAt time.Time) error {
	panic("not used")
}

func (s *stubWorkdayRepository) Delete(ctx context.Context, id string) error {
	panic("not used")
}

type stubEmployeeRepository struct {
	names map[string]string
}

func (s *stubEmployeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	panic("not used")
}

func (s *stubEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	panic("not used")
}

func (s *stubEmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	panic("not used")
}

func (s *stubEmployeeRepository) Update(ctx context.Context, e employee.Employee) error {
	panic("not used")
}

func (s *stubEmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	panic("not used")
}

func (s *stubEmployeeRepository) GetNameMap(ctx context.Context) (map[string]string, error) {
	return s.names, nil
}

func testWorkday(id, employeeID, date string, hours workday.HourBreakdown, values workday.ValueBreakdown) workday.Workday {
	d, _ := time.Parse("2006-01-02", date)
	return workday.Workday{
		ID:         id,
		EmployeeID: employeeID,
		Date:       d,
		ShiftCode:  "M8",
		Hours:      hours,
		Values:     values,
		Status:     workday.StatusComputed,
	}
}

func newTestService(workdays []workday.Workday, names map[string]string) (payroll.PayrollService, *stubWorkdayRepository) {
	repo := &stubWorkdayRepository{workdays: workdays}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPayrollService(repo, &stubEmployeeRepository{names: names}, logger), repo
}

func TestSummaryFoldsPerEmployee(t *testing.T) {
	workdays := []workday.Workday{
		testWorkday("wd-1", "emp-1", "2026-03-16",
			workday.HourBreakdown{Ordinary: 8, Total: 8},
			workday.ValueBreakdown{Ordinary: decimal.NewFromInt(80000), Total: decimal.NewFromInt(80000)},
		),
		testWorkday("wd-2", "emp-1", "2026-03-17",
			workday.HourBreakdown{Ordinary: 8, NightSurchargeOrdinary: 2, OvertimeDay: 1, Total: 11},
			workday.ValueBreakdown{
				Ordinary:              decimal.NewFromInt(80000),
				NightSurchargeOrdinary: decimal.NewFromInt(27000),
				OvertimeDay:           decimal.NewFromInt(12500),
				Total:                 decimal.NewFromInt(119500),
			},
		),
		testWorkday("wd-3", "emp-2", "2026-03-16",
			workday.HourBreakdown{HolidayDaySurcharge: 8, Total: 8},
			workday.ValueBreakdown{HolidayDaySurcharge: decimal.NewFromInt(60000), Total: decimal.NewFromInt(60000)},
		),
	}
	svc, _ := newTestService(workdays, map[string]string{
		"emp-1": "Carlos Ruiz",
		"emp-2": "Ana Torres",
	})

	resp, err := svc.Summary(context.Background(), payroll.SummaryFilter{
		StartDate: "2026-03-15",
		EndDate:   "2026-04-14",
	})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)

	// sorted by employee name
	assert.Equal(t, "Ana Torres", resp.Rows[0].EmployeeName)
	assert.Equal(t, "Carlos Ruiz", resp.Rows[1].EmployeeName)

	ana := resp.Rows[0]
	assert.Equal(t, 1, ana.Days)
	assert.Equal(t, float64(8), ana.HolidayDaySurchargeHours)
	assert.Equal(t, float64(8), ana.SurchargeHours)
	assert.True(t, ana.TotalValue.Equal(decimal.NewFromInt(60000)), "got %s", ana.TotalValue)

	carlos := resp.Rows[1]
	assert.Equal(t, 2, carlos.Days)
	assert.Equal(t, float64(16), carlos.OrdinaryHours)
	assert.Equal(t, float64(2), carlos.NightSurchargeOrdinaryHours)
	assert.Equal(t, float64(1), carlos.OvertimeHours)
	assert.Equal(t, float64(2), carlos.SurchargeHours)
	assert.Equal(t, float64(19), carlos.TotalHours)
	assert.True(t, carlos.TotalValue.Equal(decimal.NewFromInt(199500)), "got %s", carlos.TotalValue)
}

func TestSummarySkipsUnresolvedEmployee(t *testing.T) {
	workdays := []workday.Workday{
		testWorkday("wd-1", "emp-1", "2026-03-16",
			workday.HourBreakdown{Ordinary: 8, Total: 8},
			workday.ValueBreakdown{Ordinary: decimal.NewFromInt(80000), Total: decimal.NewFromInt(80000)},
		),
		testWorkday("wd-9", "emp-gone", "2026-03-16",
			workday.HourBreakdown{Ordinary: 8, Total: 8},
			workday.ValueBreakdown{Ordinary: decimal.NewFromInt(80000), Total: decimal.NewFromInt(80000)},
		),
	}
	svc, _ := newTestService(workdays, map[string]string{"emp-1": "Carlos Ruiz"})

	resp, err := svc.Summary(context.Background(), payroll.SummaryFilter{
		StartDate: "2026-03-15",
		EndDate:   "2026-04-14",
	})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "emp-1", resp.Rows[0].EmployeeID)
}

func TestSummaryGroupedOvertimeAcrossCategories(t *testing.T) {
	workdays := []workday.Workday{
		testWorkday("wd-1", "emp-1", "2026-03-16",
			workday.HourBreakdown{
				Ordinary:             8,
				OvertimeDay:          1.5,
				OvertimeNight:        0.5,
				OvertimeDayHoliday:   2,
				OvertimeNightHoliday: 1,
				Total:                13,
			},
			workday.ValueBreakdown{Total: decimal.NewFromInt(150000)},
		),
	}
	svc, _ := newTestService(workdays, map[string]string{"emp-1": "Carlos Ruiz"})

	resp, err := svc.Summary(context.Background(), payroll.SummaryFilter{
		StartDate: "2026-03-15",
		EndDate:   "2026-04-14",
	})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	assert.InDelta(t, 5, resp.Rows[0].OvertimeHours, 0.001)
}

func TestSummaryPassesCompanyFilter(t *testing.T) {
	svc, repo := newTestService(nil, map[string]string{})
	company := "NETCOL"

	resp, err := svc.Summary(context.Background(), payroll.SummaryFilter{
		StartDate: "2026-03-15",
		EndDate:   "2026-04-14",
		Company:   &company,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Rows)
	require.NotNil(t, repo.lastCompany)
	assert.Equal(t, "NETCOL", *repo.lastCompany)
}

func TestSummaryRejectsInvertedRange(t *testing.T) {
	svc, _ := newTestService(nil, map[string]string{})

	_, err := svc.Summary(context.Background(), payroll.SummaryFilter{
		StartDate: "2026-04-14",
		EndDate:   "2026-03-15",
	})
	assert.Error(t, err)
}

func TestSummaryEchoesPeriod(t *testing.T) {
	svc, _ := newTestService(nil, map[string]string{})

	resp, err := svc.Summary(context.Background(), payroll.SummaryFilter{
		StartDate: "2026-03-15",
		EndDate:   "2026-04-14",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-15", resp.StartDate)
	assert.Equal(t, "2026-04-14", resp.EndDate)
}
