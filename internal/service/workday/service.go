package workday

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/employee"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/holiday"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payconfig"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/shift"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/workday"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/period"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/workerpool"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/repository/postgresql"
)

type WorkdayServiceImpl struct {
	inTx postgresql.TxRunner
	workday.WorkdayRepository
	employee.EmployeeRepository
	shift.ShiftService
	payconfig.PayConfigService
	holiday.HolidayService
	pool *workerpool.WorkerPool
}

func NewWorkdayService(
	inTx postgresql.TxRunner,
	workdayRepository workday.WorkdayRepository,
	employeeRepository employee.EmployeeRepository,
	shiftService shift.ShiftService,
	payConfigService payconfig.PayConfigService,
	holidayService holiday.HolidayService,
	pool *workerpool.WorkerPool,
) workday.WorkdayService {
	return &WorkdayServiceImpl{
		inTx:               inTx,
		WorkdayRepository:  workdayRepository,
		EmployeeRepository: employeeRepository,
		ShiftService:       shiftService,
		PayConfigService:   payConfigService,
		HolidayService:     holidayService,
		pool:               pool,
	}
}

// computeInputs are everything the engine and the snapshot need, gathered
// concurrently before the record is built.
type computeInputs struct {
	employee    employee.Employee
	shift       shift.ShiftResponse
	payRate     payconfig.PayRateConfig
	multipliers payconfig.SurchargeMultipliers
	rules       payconfig.SurchargeRules
	restDay     bool
}

// Compute implements workday.WorkdayService.
func (s *WorkdayServiceImpl) Compute(ctx context.Context, req workday.ComputeRequest) (workday.WorkdayResponse, error) {
	if err := req.Validate(); err != nil {
		return workday.WorkdayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return workday.WorkdayResponse{}, fmt.Errorf("%w: date %q is not \"YYYY-MM-DD\"", workday.ErrInvalidInput, req.Date)
	}

	inputs, err := s.gatherInputs(ctx, req.EmployeeID, req.ShiftCode, date)
	if err != nil {
		return workday.WorkdayResponse{}, err
	}

	computation, err := Decompose(
		inputs.employee.MonthlyBaseSalary,
		inputs.payRate,
		inputs.multipliers,
		inputs.rules,
		workday.ShiftInterval{Date: date, StartTime: inputs.shift.StartTime, EndTime: inputs.shift.EndTime},
		inputs.restDay,
	)
	if err != nil {
		return workday.WorkdayResponse{}, err
	}

	record := workday.Workday{
		EmployeeID:          req.EmployeeID,
		Date:                date,
		ShiftCode:           inputs.shift.Code,
		StartTime:           inputs.shift.StartTime,
		EndTime:             inputs.shift.EndTime,
		CrossedMidnight:     inputs.shift.CrossesMidnight,
		RestDay:             inputs.restDay,
		Location:            req.Location,
		AppliedSalary:       inputs.employee.MonthlyBaseSalary,
		AppliedDivisorHours: inputs.payRate.MonthlyDivisorHours,
		AppliedHourlyRate:   computation.HourlyRate,
		AppliedRules:        inputs.rules,
		AppliedMultipliers:  inputs.multipliers,
		Hours:               computation.Hours,
		Values:              computation.Values,
		Status:              workday.StatusComputed,
	}

	existing, err := s.WorkdayRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return workday.WorkdayResponse{}, err
	}

	var created workday.Workday
	if existing != nil {
		if !req.Force {
			return workday.WorkdayResponse{}, workday.ErrWorkdayExists
		}
		if existing.Status == workday.StatusClosed {
			return workday.WorkdayResponse{}, workday.ErrWorkdayAlreadyClosed
		}
		// Recompute: replace the old record atomically.
		err = s.inTx(ctx, func(txCtx context.Context) error {
			if err := s.WorkdayRepository.Delete(txCtx, existing.ID); err != nil {
				return fmt.Errorf("failed to delete previous record: %w", err)
			}
			created, err = s.WorkdayRepository.Create(txCtx, record)
			return err
		})
	} else {
		created, err = s.WorkdayRepository.Create(ctx, record)
	}
	if err != nil {
		return workday.WorkdayResponse{}, err
	}

	created.EmployeeName = &inputs.employee.FullName
	return workday.ToResponse(created), nil
}

// ComputeBulk implements workday.WorkdayService. Every employee-day is an
// independent task; the pool bounds concurrency and failures are reported
// per day instead of aborting the run.
func (s *WorkdayServiceImpl) ComputeBulk(ctx context.Context, req workday.BulkComputeRequest) (workday.BulkComputeResponse, error) {
	if err := req.Validate(); err != nil {
		return workday.BulkComputeResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	type outcome struct {
		employeeID string
		date       string
		response   workday.WorkdayResponse
		err        error
	}

	var taskCount int
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		taskCount += len(req.EmployeeIDs)
	}
	results := make(chan workerpool.Result, taskCount)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")
		for _, employeeID := range req.EmployeeIDs {
			employeeID, dateStr := employeeID, dateStr
			s.pool.Submit(workerpool.Task{
				Fn: func() (any, error) {
					resp, err := s.Compute(ctx, workday.ComputeRequest{
						EmployeeID: employeeID,
						Date:       dateStr,
						ShiftCode:  req.ShiftCode,
						Force:      req.Force,
					})
					return outcome{employeeID: employeeID, date: dateStr, response: resp, err: err}, nil
				},
				ResultC: results,
			})
		}
	}

	var response workday.BulkComputeResponse
	for i := 0; i < taskCount; i++ {
		res := <-results
		out := res.Value.(outcome)
		if out.err != nil {
			response.Failed = append(response.Failed, workday.BulkFailure{
				EmployeeID: out.employeeID,
				Date:       out.date,
				Reason:     out.err.Error(),
			})
			continue
		}
		response.Computed = append(response.Computed, out.response)
	}

	return response, nil
}

// Get implements workday.WorkdayService.
func (s *WorkdayServiceImpl) Get(ctx context.Context, id string) (workday.WorkdayResponse, error) {
	found, err := s.WorkdayRepository.GetByID(ctx, id)
	if err != nil {
		return workday.WorkdayResponse{}, err
	}
	return workday.ToResponse(found), nil
}

// ListByEmployee implements workday.WorkdayService. Without an explicit
// range the current payroll period is used.
func (s *WorkdayServiceImpl) ListByEmployee(ctx context.Context, employeeID string, filter workday.RangeFilter) ([]workday.WorkdayResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	current := period.Current(time.Now())
	from, to := current.Start, current.End
	if filter.StartDate != nil {
		from, _ = time.Parse("2006-01-02", *filter.StartDate)
	}
	if filter.EndDate != nil {
		to, _ = time.Parse("2006-01-02", *filter.EndDate)
	}

	workdays, err := s.WorkdayRepository.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]workday.WorkdayResponse, 0, len(workdays))
	for _, w := range workdays {
		responses = append(responses, workday.ToResponse(w))
	}
	return responses, nil
}

// Close implements workday.WorkdayService.
func (s *WorkdayServiceImpl) Close(ctx context.Context, id string) (workday.WorkdayResponse, error) {
	if err := s.WorkdayRepository.Close(ctx, id, time.Now()); err != nil {
		return workday.WorkdayResponse{}, err
	}

	closed, err := s.WorkdayRepository.GetByID(ctx, id)
	if err != nil {
		return workday.WorkdayResponse{}, err
	}
	return workday.ToResponse(closed), nil
}

// gatherInputs fetches employee, shift, configuration and the rest-day
// flag concurrently.
func (s *WorkdayServiceImpl) gatherInputs(ctx context.Context, employeeID string, shiftCode string, date time.Time) (computeInputs, error) {
	var inputs computeInputs

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inputs.employee, err = s.EmployeeRepository.GetByID(gCtx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		inputs.shift, err = s.ShiftService.Get(gCtx, shiftCode)
		return err
	})
	g.Go(func() error {
		var err error
		inputs.payRate, err = s.PayConfigService.GetPayRate(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		inputs.multipliers, err = s.PayConfigService.GetMultipliers(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		inputs.rules, err = s.PayConfigService.GetRules(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		inputs.restDay, err = s.HolidayService.IsRestDay(gCtx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return computeInputs{}, err
	}

	return inputs, nil
}
