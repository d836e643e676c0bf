package attendance

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	profileRepo    user.ProfileRepository
	today          func() string
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	profileRepo user.ProfileRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		profileRepo:    profileRepo,
		today:          validator.Today,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, scope user.Scope, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	req.ApplyDefaults(s.today())

	if !validator.IsValidUUID(req.EmployeeID) {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !scope.Allows(emp.SiteLocation) {
		return attendance.AttendanceResponse{}, user.ErrOutOfScope
	}

	// Checked before the insert; the unique index still catches a concurrent mark
	exists, err := s.attendanceRepo.ExistsByEmployeeAndDate(ctx, emp.ID, req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceAlreadyMarked
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	record, err := s.attendanceRepo.Create(ctx, attendance.Record{
		ID:             id.String(),
		EmployeeID:     emp.ID,
		Date:           req.Date,
		AttendanceType: attendance.Type(req.AttendanceType),
		MarkedBy:       scope.UserID,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.EmployeeName = &emp.Name
	record.EmployeeCode = &emp.EmployeeCode
	if marker, err := s.profileRepo.GetByID(ctx, scope.UserID); err == nil {
		record.MarkedByName = &marker.Name
	}

	return attendance.NewAttendanceResponse(record), nil
}

// ListByDate implements attendance.AttendanceService. An empty date means today.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, scope user.Scope, date string) (attendance.ListAttendanceResponse, error) {
	if date == "" {
		date = s.today()
	}
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.ListAttendanceResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	records, err := s.attendanceRepo.List(ctx, attendance.AttendanceFilter{
		Date:         &date,
		SiteLocation: scope.SiteFilter(),
	})
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.NewAttendanceResponse(r))
	}

	return attendance.ListAttendanceResponse{
		Date:       date,
		TotalCount: int64(len(responses)),
		Records:    responses,
	}, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, scope user.Scope, id string) error {
	if err := scope.RequireAdmin(); err != nil {
		return err
	}
	if !validator.IsValidUUID(id) {
		return attendance.ErrAttendanceNotFound
	}
	return s.attendanceRepo.Delete(ctx, id)
}
