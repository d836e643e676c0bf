package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID     string `json:"employee_id"`
	Date           string `json:"date,omitempty"`            // defaults to today
	AttendanceType string `json:"attendance_type,omitempty"` // defaults to full
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
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

	if !validator.IsEmpty(r.AttendanceType) && !Type(strings.TrimSpace(r.AttendanceType)).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_type",
			Message: ErrInvalidAttendanceType.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApplyDefaults fills the optional fields the way the marking form does.
func (r *MarkAttendanceRequest) ApplyDefaults(today string) {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)
	if r.Date == "" {
		r.Date = today
	}
	r.AttendanceType = strings.TrimSpace(r.AttendanceType)
	if r.AttendanceType == "" {
		r.AttendanceType = string(TypeFull)
	}
}

// AttendanceFilter selects records for listing. SiteLocation nil means every site.
type AttendanceFilter struct {
	Date         *string
	StartDate    *string
	EndDate      *string
	EmployeeID   *string
	SiteLocation *string
}

type AttendanceResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	EmployeeCode   string `json:"employee_code"`
	Date           string `json:"date"`
	AttendanceType string `json:"attendance_type"`
	TypeLabel      string `json:"type_label"`
	TimeWindow     string `json:"time_window"`
	MarkedBy       string `json:"marked_by"`
	MarkedByName   string `json:"marked_by_name"`
	CreatedAt      string `json:"created_at"`
}

func NewAttendanceResponse(r Record) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeName:   "Unknown",
		EmployeeCode:   "Unknown",
		Date:           r.Date,
		AttendanceType: string(r.AttendanceType),
		TypeLabel:      r.AttendanceType.Label(),
		TimeWindow:     r.AttendanceType.TimeWindow(),
		MarkedBy:       r.MarkedBy,
		MarkedByName:   "System",
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		resp.EmployeeCode = *r.EmployeeCode
	}
	if r.MarkedByName != nil && *r.MarkedByName != "" {
		resp.MarkedByName = *r.MarkedByName
	}
	return resp
}

type ListAttendanceResponse struct {
	Date       string               `json:"date"`
	TotalCount int64                `json:"total_count"`
	Records    []AttendanceResponse `json:"records"`
}
