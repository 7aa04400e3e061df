package workday

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/employee"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/holiday"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payconfig"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/shift"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/workday"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/period"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/workerpool"
)

type memWorkdayRepository struct {
	mu       sync.Mutex
	byID     map[string]workday.Workday
	lastFrom time.Time
	lastTo   time.Time
}

func newMemWorkdayRepository() *memWorkdayRepository {
	return &memWorkdayRepository{byID: make(map[string]workday.Workday)}
}

func (m *memWorkdayRepository) Create(ctx context.Context, w workday.Workday) (workday.Workday, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.EmployeeID == w.EmployeeID && existing.Date.Equal(w.Date) {
			return workday.Workday{}, workday.ErrWorkdayExists
		}
	}
	w.ID = uuid.NewString()
	w.CreatedAt = time.Now()
	m.byID[w.ID] = w
	return w, nil
}

func (m *memWorkdayRepository) GetByID(ctx context.Context, id string) (workday.Workday, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.byID[id]
	if !ok {
		return workday.Workday{}, workday.ErrWorkdayNotFound
	}
	return w, nil
}

func (m *memWorkdayRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*workday.Workday, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.byID {
		if w.EmployeeID == employeeID && w.Date.Equal(date) {
			found := w
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memWorkdayRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]workday.Workday, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFrom, m.lastTo = from, to
	var out []workday.Workday
	for _, w := range m.byID {
		if w.EmployeeID != employeeID || w.Date.Before(from) || w.Date.After(to) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (m *memWorkdayRepository) ListRange(ctx context.Context, from, to time.Time, company *string) ([]workday.Workday, error) {
	panic("not used")
}

func (m *memWorkdayRepository) Close(ctx context.Context, id string, closedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.byID[id]
	if !ok {
		return workday.ErrWorkdayNotFound
	}
	if w.Status == workday.StatusClosed {
		return workday.ErrWorkdayAlreadyClosed
	}
	w.Status = workday.StatusClosed
	w.ClosedAt = &closedAt
	m.byID[id] = w
	return nil
}

func (m *memWorkdayRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return workday.ErrWorkdayNotFound
	}
	delete(m.byID, id)
	return nil
}

type stubEmployeeReader struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeReader) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	panic("not used")
}

func (s *stubEmployeeReader) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *stubEmployeeReader) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	panic("not used")
}

func (s *stubEmployeeReader) Update(ctx context.Context, e employee.Employee) error {
	panic("not used")
}

func (s *stubEmployeeReader) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	panic("not used")
}

func (s *stubEmployeeReader) GetNameMap(ctx context.Context) (map[string]string, error) {
	panic("not used")
}

type stubShiftCatalog struct{}

func (stubShiftCatalog) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	panic("not used")
}

func (stubShiftCatalog) Get(ctx context.Context, code string) (shift.ShiftResponse, error) {
	for _, d := range shift.DefaultShifts() {
		if d.Code == code {
			return shift.ToResponse(d), nil
		}
	}
	return shift.ShiftResponse{}, shift.ErrShiftNotFound
}

func (stubShiftCatalog) Upsert(ctx context.Context, req shift.UpsertShiftRequest) (shift.ShiftResponse, error) {
	panic("not used")
}

func (stubShiftCatalog) Delete(ctx context.Context, code string) error {
	panic("not used")
}

type stubPayConfig struct{}

func (stubPayConfig) GetPayRate(ctx context.Context) (payconfig.PayRateConfig, error) {
	return payconfig.DefaultPayRate(), nil
}

func (stubPayConfig) GetMultipliers(ctx context.Context) (payconfig.SurchargeMultipliers, error) {
	return payconfig.DefaultMultipliers(), nil
}

func (stubPayConfig) GetRules(ctx context.Context) (payconfig.SurchargeRules, error) {
	return payconfig.DefaultRules(), nil
}

func (stubPayConfig) GetAll(ctx context.Context) (payconfig.ConfigResponse, error) {
	panic("not used")
}

func (stubPayConfig) Update(ctx context.Context, req payconfig.UpdateConfigRequest) (payconfig.ConfigResponse, error) {
	panic("not used")
}

type stubRestDayOracle struct {
	holidays map[string]bool
}

func (s *stubRestDayOracle) IsRestDay(ctx context.Context, date time.Time) (bool, error) {
	if date.Weekday() == time.Sunday {
		return true, nil
	}
	return s.holidays[date.Format("2006-01-02")], nil
}

func (s *stubRestDayOracle) ListYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	panic("not used")
}

func (s *stubRestDayOracle) Register(ctx context.Context, req holiday.RegisterHolidayRequest) (holiday.HolidayResponse, error) {
	panic("not used")
}

func (s *stubRestDayOracle) Remove(ctx context.Context, date time.Time) error {
	panic("not used")
}

func (s *stubRestDayOracle) WarmYear(ctx context.Context, year int) error {
	panic("not used")
}

type serviceFixture struct {
	svc      workday.WorkdayService
	repo     *memWorkdayRepository
	pool     *workerpool.WorkerPool
	holidays *stubRestDayOracle
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()

	repo := newMemWorkdayRepository()
	employees := &stubEmployeeReader{employees: map[string]employee.Employee{
		"emp-1": {
			ID:                "emp-1",
			FullName:          "Carlos Ruiz",
			Company:           employee.CompanyNetcol,
			MonthlyBaseSalary: decimal.NewFromInt(2200000),
			Active:            true,
		},
	}}
	holidays := &stubRestDayOracle{holidays: make(map[string]bool)}
	pool := workerpool.NewWorkerPool(4, 32)
	t.Cleanup(pool.Close)

	// Pass-through runner: the in-memory repository has no transactions.
	inTx := func(ctx context.Context, fn func(txCtx context.Context) error) error {
		return fn(ctx)
	}

	svc := NewWorkdayService(inTx, repo, employees, stubShiftCatalog{}, stubPayConfig{}, holidays, pool)
	return serviceFixture{svc: svc, repo: repo, pool: pool, holidays: holidays}
}

func TestComputePersistsSnapshot(t *testing.T) {
	f := newServiceFixture(t)

	resp, err := f.svc.Compute(context.Background(), workday.ComputeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-16", // Monday
		ShiftCode:  "M8",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2026-03-16", resp.Date)
	assert.Equal(t, "M8", resp.ShiftCode)
	assert.Equal(t, workday.StatusComputed, resp.Status)
	assert.False(t, resp.RestDay)
	require.NotNil(t, resp.EmployeeName)
	assert.Equal(t, "Carlos Ruiz", *resp.EmployeeName)

	assert.True(t, resp.AppliedSalary.Equal(decimal.NewFromInt(2200000)))
	assert.Equal(t, float64(220), resp.AppliedDivisorHours)
	assert.True(t, resp.AppliedHourlyRate.Equal(decimal.NewFromInt(10000)), "got %s", resp.AppliedHourlyRate)
	assert.Equal(t, "21:00", resp.AppliedRules.NightStart)

	assert.InDelta(t, 8, resp.Hours.Ordinary, 0.001)
	assert.True(t, resp.Values.Total.Equal(decimal.NewFromInt(80000)), "got %s", resp.Values.Total)
}

func TestComputeSundayIsRestDay(t *testing.T) {
	f := newServiceFixture(t)

	resp, err := f.svc.Compute(context.Background(), workday.ComputeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-15", // Sunday
		ShiftCode:  "M8",
	})
	require.NoError(t, err)

	assert.True(t, resp.RestDay)
	assert.Zero(t, resp.Hours.Ordinary)
	assert.InDelta(t, 8, resp.Hours.HolidayDaySurcharge, 0.001)
}

func TestComputeConflictWithoutForce(t *testing.T) {
	f := newServiceFixture(t)
	req := workday.ComputeRequest{EmployeeID: "emp-1", Date: "2026-03-16", ShiftCode: "M8"}

	_, err := f.svc.Compute(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.Compute(context.Background(), req)
	assert.ErrorIs(t, err, workday.ErrWorkdayExists)
}

func TestComputeForceReplacesExistingRecord(t *testing.T) {
	f := newServiceFixture(t)

	first, err := f.svc.Compute(context.Background(), workday.ComputeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-16",
		ShiftCode:  "M8",
	})
	require.NoError(t, err)

	recomputed, err := f.svc.Compute(context.Background(), workday.ComputeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-16",
		ShiftCode:  "N8",
		Force:      true,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, recomputed.ID)
	assert.Equal(t, "N8", recomputed.ShiftCode)
	assert.Equal(t, workday.StatusComputed, recomputed.Status)

	// The old record is gone and exactly one record remains for the day.
	_, err = f.repo.GetByID(context.Background(), first.ID)
	assert.ErrorIs(t, err, workday.ErrWorkdayNotFound)

	date, _ := time.Parse("2006-01-02", "2026-03-16")
	remaining, err := f.repo.GetByEmployeeAndDate(context.Background(), "emp-1", date)
	require.NoError(t, err)
	require.NotNil(t, remaining)
	assert.Equal(t, recomputed.ID, remaining.ID)
}

func TestComputeForceRejectsClosedRecord(t *testing.T) {
	f := newServiceFixture(t)

	resp, err := f.svc.Compute(context.Background(), workday.ComputeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-16",
		ShiftCode:  "M8",
	})
	require.NoError(t, err)
	require.NoError(t, f.repo.Close(context.Background(), resp.ID, time.Now()))

	_, err = f.svc.Compute(context.Background(), workday.ComputeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-16",
		ShiftCode:  "N8",
		Force:      true,
	})
	assert.ErrorIs(t, err, workday.ErrWorkdayAlreadyClosed)
}

func TestComputeUnknownEmployee(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Compute(context.Background(), workday.ComputeRequest{
		EmployeeID: "emp-404",
		Date:       "2026-03-16",
		ShiftCode:  "M8",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestComputeUnknownShift(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Compute(context.Background(), workday.ComputeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-16",
		ShiftCode:  "ZZ99",
	})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestComputeValidation(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Compute(context.Background(), workday.ComputeRequest{
		EmployeeID: "",
		Date:       "16/03/2026",
		ShiftCode:  "",
	})
	require.Error(t, err)
}

func TestComputeBulkReportsPerDayOutcomes(t *testing.T) {
	f := newServiceFixture(t)

	resp, err := f.svc.ComputeBulk(context.Background(), workday.BulkComputeRequest{
		EmployeeIDs: []string{"emp-1", "emp-404"},
		StartDate:   "2026-03-16",
		EndDate:     "2026-03-18",
		ShiftCode:   "M8",
	})
	require.NoError(t, err)

	assert.Len(t, resp.Computed, 3)
	require.Len(t, resp.Failed, 3)
	for _, failure := range resp.Failed {
		assert.Equal(t, "emp-404", failure.EmployeeID)
		assert.Contains(t, failure.Reason, "employee not found")
	}
}

func TestComputeBulkSkipsExistingDays(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Compute(context.Background(), workday.ComputeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-17",
		ShiftCode:  "M8",
	})
	require.NoError(t, err)

	resp, err := f.svc.ComputeBulk(context.Background(), workday.BulkComputeRequest{
		EmployeeIDs: []string{"emp-1"},
		StartDate:   "2026-03-16",
		EndDate:     "2026-03-18",
		ShiftCode:   "M8",
	})
	require.NoError(t, err)

	assert.Len(t, resp.Computed, 2)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, "2026-03-17", resp.Failed[0].Date)
}

func TestListByEmployeeDefaultsToCurrentPeriod(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.ListByEmployee(context.Background(), "emp-1", workday.RangeFilter{})
	require.NoError(t, err)

	current := period.Current(time.Now())
	assert.Equal(t, current.Start, f.repo.lastFrom)
	assert.Equal(t, current.End, f.repo.lastTo)
}

func TestCloseStampsRecord(t *testing.T) {
	f := newServiceFixture(t)

	computed, err := f.svc.Compute(context.Background(), workday.ComputeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-16",
		ShiftCode:  "M8",
	})
	require.NoError(t, err)

	closed, err := f.svc.Close(context.Background(), computed.ID)
	require.NoError(t, err)

	assert.Equal(t, workday.StatusClosed, closed.Status)
	assert.NotNil(t, closed.ClosedAt)

	_, err = f.svc.Close(context.Background(), computed.ID)
	assert.ErrorIs(t, err, workday.ErrWorkdayAlreadyClosed)
}

func TestCloseMissingRecord(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.Close(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, workday.ErrWorkdayNotFound)
}
