package report

import (
	"strings"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/export"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Filter mirrors the report screen. The date range applies only when both
// bounds are set; an employee or site mode with an empty selector does not
// narrow the records.
type Filter struct {
	Mode       Mode   `json:"filter"`
	EmployeeID string `json:"employee_id,omitempty"`
	Site       string `json:"site,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	f.EmployeeID = strings.TrimSpace(f.EmployeeID)
	f.Site = strings.TrimSpace(f.Site)
	f.StartDate = strings.TrimSpace(f.StartDate)
	f.EndDate = strings.TrimSpace(f.EndDate)
	f.Mode = Mode(strings.TrimSpace(string(f.Mode)))
	if f.Mode == "" {
		f.Mode = ModeAll
	}
	if !f.Mode.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "filter",
			Message: "filter must be all, employee or site",
		})
	}

	if !validator.IsEmpty(f.StartDate) {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if !validator.IsEmpty(f.EndDate) {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasDateRange reports whether the date filter is active.
func (f Filter) HasDateRange() bool {
	return f.StartDate != "" && f.EndDate != ""
}

type RowResponse struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	EmployeeCode   string          `json:"employee_code"`
	JobCategory    string          `json:"job_category"`
	SiteLocation   string          `json:"site_location"`
	Date           string          `json:"date"`
	AttendanceType string          `json:"attendance_type"`
	TypeLabel      string          `json:"type_label"`
	DailyWage      decimal.Decimal `json:"daily_wage"`
	CalculatedWage decimal.Decimal `json:"calculated_wage"`
}

type AggregatesResponse struct {
	TotalRecords    int             `json:"total_records"`
	TotalWages      decimal.Decimal `json:"total_wages"`
	UniqueEmployees int             `json:"unique_employees"`
	UniqueSites     int             `json:"unique_sites"`
}

type ReportResponse struct {
	Filter      Filter             `json:"filter"`
	Rows        []RowResponse      `json:"rows"`
	Aggregates  AggregatesResponse `json:"aggregates"`
	GeneratedAt string             `json:"generated_at"`
}

type ExportRequest struct {
	Filter Filter
	Format export.Format
}

func (r *ExportRequest) Validate() error {
	if err := r.Filter.Validate(); err != nil {
		return err
	}
	r.Format = export.Format(strings.ToLower(strings.TrimSpace(string(r.Format))))
	if r.Format == "" {
		r.Format = export.FormatCSV
	}
	if !r.Format.IsValid() {
		return validator.ValidationErrors{{
			Field:   "format",
			Message: ErrInvalidExportFormat.Error(),
		}}
	}
	return nil
}

type ExportResponse struct {
	FileName    string
	ContentType string
	Content     []byte
	StorageKey  string
	URL         string
}

type SitesResponse struct {
	Sites []string `json:"sites"`
}
