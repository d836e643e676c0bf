package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Profile and scope errors
	case errors.Is(err, user.ErrProfileNotFound):
		NotFound(w, "Profile not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInsufficientPermissions),
		errors.Is(err, user.ErrOutOfScope),
		errors.Is(err, employee.ErrUnauthorized),
		errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrSiteLocationRequired):
		BadRequest(w, "Site location is required for supervisors", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInvalidEmployeeCode):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceAlreadyMarked):
		Conflict(w, "Attendance already marked for this employee on this date")
	case errors.Is(err, attendance.ErrInvalidAttendanceType):
		BadRequest(w, err.Error(), nil)

	// Wage domain errors
	case errors.Is(err, wage.ErrPaymentNotFound):
		NotFound(w, "Wage payment not found")
	case errors.Is(err, wage.ErrInvalidAdvanceScoping),
		errors.Is(err, wage.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrNoReportData):
		BadRequest(w, "No data available for the selected filters", nil)
	case errors.Is(err, report.ErrInvalidExportFormat):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrExportNotFound):
		NotFound(w, "Export not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
