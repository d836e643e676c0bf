package employee

import (
	"context"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists employees visible to the caller
	ListEmployees(ctx context.Context, scope user.Scope, filter EmployeeFilter) (ListEmployeeResponse, error)

	// GetEmployee retrieves a single employee inside the caller's scope
	GetEmployee(ctx context.Context, scope user.Scope, id string) (EmployeeResponse, error)

	// CreateEmployee registers a worker; supervisors always create at their own site
	CreateEmployee(ctx context.Context, scope user.Scope, req CreateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee hard deletes an employee (admin only)
	DeleteEmployee(ctx context.Context, scope user.Scope, id string) error
}
