package wage

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordAdvanceRequest struct {
	EmployeeID    string           `json:"employee_id"`
	AdvanceAmount *decimal.Decimal `json:"advance_amount"`
	Date          string           `json:"date,omitempty"` // defaults to today
}

func (r *RecordAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.AdvanceAmount == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "advance_amount",
			Message: "advance_amount is required",
		})
	}

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(strings.TrimSpace(r.Date)); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *RecordAdvanceRequest) ApplyDefaults(today string) {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)
	if r.Date == "" {
		r.Date = today
	}
}

// AdvanceFilter selects advances. SiteLocation nil means every site.
type AdvanceFilter struct {
	EmployeeID   *string
	SiteLocation *string
}

type CalculateWagesRequest struct {
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	AdvanceScoping string `json:"advance_scoping,omitempty"` // defaults to the configured scoping
}

func (r *CalculateWagesRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	end, endOK := validator.IsValidDate(r.EndDate)

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: ErrInvalidPeriod.Error(),
		})
	}

	if r.AdvanceScoping != "" && !AdvanceScoping(r.AdvanceScoping).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "advance_scoping",
			Message: ErrInvalidAdvanceScoping.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	EmployeeCode  string          `json:"employee_code"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
	Date          string          `json:"date"`
	PaidBy        string          `json:"paid_by"`
	PaidByName    string          `json:"paid_by_name"`
	CreatedAt     string          `json:"created_at"`
}

func NewPaymentResponse(p Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  "Unknown",
		EmployeeCode:  "Unknown",
		AdvanceAmount: p.AdvanceAmount,
		Date:          p.Date,
		PaidBy:        p.PaidBy,
		PaidByName:    "System",
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.EmployeeCode != nil {
		resp.EmployeeCode = *p.EmployeeCode
	}
	if p.PaidByName != nil && *p.PaidByName != "" {
		resp.PaidByName = *p.PaidByName
	}
	return resp
}

type ListPaymentResponse struct {
	TotalCount    int64             `json:"total_count"`
	TotalAdvances decimal.Decimal   `json:"total_advances"`
	Payments      []PaymentResponse `json:"payments"`
}

type BreakdownItem struct {
	Date           string          `json:"date"`
	AttendanceType string          `json:"attendance_type"`
	TypeLabel      string          `json:"type_label"`
	Wage           decimal.Decimal `json:"wage"`
}

type EmployeeWageResponse struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeCode  string          `json:"employee_code"`
	Name          string          `json:"name"`
	JobCategory   string          `json:"job_category"`
	SiteLocation  string          `json:"site_location"`
	DailyWage     decimal.Decimal `json:"daily_wage"`
	DaysWorked    int             `json:"days_worked"`
	TotalWage     decimal.Decimal `json:"total_wage"`
	TotalAdvances decimal.Decimal `json:"total_advances"`
	Remaining     decimal.Decimal `json:"remaining"`
	Status        Status          `json:"status"`
	Breakdown     []BreakdownItem `json:"breakdown,omitempty"`
}

type WageTotals struct {
	TotalWage     decimal.Decimal `json:"total_wage"`
	TotalAdvances decimal.Decimal `json:"total_advances"`
	Remaining     decimal.Decimal `json:"remaining"`
}

type WageSummaryResponse struct {
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	AdvanceScoping AdvanceScoping         `json:"advance_scoping"`
	Employees      []EmployeeWageResponse `json:"employees"`
	Totals         WageTotals             `json:"totals"`
}
