package employee

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, scope user.Scope, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if !scope.CanSeeAllSites() {
		filter.SiteLocation = scope.SiteFilter()
	}

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}

	return employee.ListEmployeeResponse{
		TotalCount: int64(len(responses)),
		Employees:  responses,
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, scope user.Scope, id string) (employee.EmployeeResponse, error) {
	emp, err := s.getVisible(ctx, scope, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// getVisible loads an employee and checks it is inside scope.
func (s *EmployeeServiceImpl) getVisible(ctx context.Context, scope user.Scope, id string) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if !scope.Allows(emp.SiteLocation) {
		return employee.Employee{}, user.ErrOutOfScope
	}
	return emp, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, scope user.Scope, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !scope.CanSeeAllSites() {
		if scope.Site == nil || *scope.Site == "" {
			return employee.EmployeeResponse{}, user.ErrSiteLocationRequired
		}
		req.SiteLocation = *scope.Site
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByCode(ctx, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:           id.String(),
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		JobCategory:  req.JobCategory,
		DailyWage:    req.DailyWage,
		SiteLocation: req.SiteLocation,
		AddedBy:      scope.UserID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(created), nil
}

// DeleteEmployee implements employee.EmployeeService. Attendance and advances
// of the employee are kept.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, scope user.Scope, id string) error {
	if err := scope.RequireAdmin(); err != nil {
		return err
	}
	if !validator.IsValidUUID(id) {
		return employee.ErrEmployeeNotFound
	}
	return s.employeeRepo.Delete(ctx, id)
}
