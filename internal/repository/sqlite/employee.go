package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, employee_code, name, job_category, daily_wage, site_location, added_by, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.Name, &emp.JobCategory,
		&emp.DailyWage, &emp.SiteLocation, &emp.AddedBy, &emp.CreatedAt,
	)
	return emp, err
}

func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := getQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id %s: %w", id, err)
	}
	return emp, nil
}

func (e *employeeRepositoryImpl) ExistsByCode(ctx context.Context, employeeCode string) (bool, error) {
	q := getQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_code = ?)`, employeeCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee code: %w", err)
	}
	return exists, nil
}

func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := getQuerier(ctx, e.db)

	newEmployee.CreatedAt = time.Now().UTC()
	_, err := q.ExecContext(ctx, `
		INSERT INTO employees (id, employee_code, name, job_category, daily_wage, site_location, added_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		newEmployee.ID, newEmployee.EmployeeCode, newEmployee.Name, newEmployee.JobCategory,
		newEmployee.DailyWage, newEmployee.SiteLocation, newEmployee.AddedBy, newEmployee.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "employees.employee_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return newEmployee, nil
}

func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := getQuerier(ctx, e.db)

	res, err := q.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := getQuerier(ctx, e.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.SiteLocation != nil {
		conditions = append(conditions, "site_location = ?")
		args = append(args, *filter.SiteLocation)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		conditions = append(conditions, "(name LIKE ? OR employee_code LIKE ?)")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY employee_code ASC"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (e *employeeRepositoryImpl) Count(ctx context.Context, siteLocation *string) (int64, error) {
	q := getQuerier(ctx, e.db)

	var count int64
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees WHERE (? IS NULL OR site_location = ?)`, siteLocation, siteLocation).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

func (e *employeeRepositoryImpl) DistinctSites(ctx context.Context, siteLocation *string) ([]string, error) {
	q := getQuerier(ctx, e.db)

	rows, err := q.QueryContext(ctx, `
		SELECT DISTINCT site_location FROM employees
		WHERE (? IS NULL OR site_location = ?)
		ORDER BY site_location ASC
	`, siteLocation, siteLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	sites := []string{}
	for rows.Next() {
		var site string
		if err := rows.Scan(&site); err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, rows.Err()
}
