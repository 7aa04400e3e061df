package employee

import (
	"context"
	"fmt"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:          req.FullName,
		Email:             req.Email,
		Documento:         req.Documento,
		Area:              req.Area,
		Company:           req.Company,
		MonthlyBaseSalary: req.MonthlyBaseSalary,
		Active:            true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	found, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(found), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		current.FullName = *req.FullName
	}
	if req.Documento != nil {
		current.Documento = req.Documento
	}
	if req.Area != nil {
		current.Area = req.Area
	}
	if req.Company != nil {
		current.Company = *req.Company
	}
	if req.MonthlyBaseSalary != nil {
		current.MonthlyBaseSalary = *req.MonthlyBaseSalary
	}
	if req.Active != nil {
		current.Active = *req.Active
	}

	if err := s.EmployeeRepository.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(current), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}

	return employee.ListEmployeeResponse{
		Employees:  responses,
		TotalItems: total,
	}, nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	current, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.Active {
		return nil
	}

	current.Active = false
	if err := s.EmployeeRepository.Update(ctx, current); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return nil
}
