package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ExistsByCode(ctx context.Context, employeeCode string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	// List returns employees ordered by employee code.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Count(ctx context.Context, siteLocation *string) (int64, error)
	// DistinctSites returns sorted site locations that have at least one employee.
	DistinctSites(ctx context.Context, siteLocation *string) ([]string, error)
}
