package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code"`
	Name         string          `json:"name"`
	JobCategory  string          `json:"job_category"`
	DailyWage    decimal.Decimal `json:"daily_wage"`
	SiteLocation string          `json:"site_location"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(strings.TrimSpace(r.EmployeeCode)) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code may only contain letters, numbers, dots, slashes, underscores and hyphens (max 50)",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.JobCategory) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_category",
			Message: "job_category is required",
		})
	}

	if !r.DailyWage.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_wage",
			Message: "daily_wage must be greater than 0",
		})
	}

	if validator.IsEmpty(r.SiteLocation) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_location",
			Message: "site_location is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	r.Name = strings.TrimSpace(r.Name)
	r.JobCategory = strings.TrimSpace(r.JobCategory)
	r.SiteLocation = strings.TrimSpace(r.SiteLocation)
	return nil
}

// EmployeeFilter narrows a listing. SiteLocation nil means every site.
type EmployeeFilter struct {
	SiteLocation *string
	Search       string
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	Name         string          `json:"name"`
	JobCategory  string          `json:"job_category"`
	DailyWage    decimal.Decimal `json:"daily_wage"`
	SiteLocation string          `json:"site_location"`
	AddedBy      string          `json:"added_by"`
	CreatedAt    string          `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		JobCategory:  e.JobCategory,
		DailyWage:    e.DailyWage,
		SiteLocation: e.SiteLocation,
		AddedBy:      e.AddedBy,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}
