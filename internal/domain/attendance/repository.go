package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create stores a record. A second record for the same employee and date
	// fails with ErrAttendanceAlreadyMarked.
	Create(ctx context.Context, record Record) (Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	// ExistsByEmployeeAndDate is the pre-insert duplicate check
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date string) (bool, error)

	Delete(ctx context.Context, id string) error

	// List returns records ordered by date, employee code and id, with the
	// employee and marker joins filled when they resolve. A SiteLocation
	// filter drops records whose employee is missing.
	List(ctx context.Context, filter AttendanceFilter) ([]Record, error)

	// CountByDate counts records on date, restricted to employees at
	// siteLocation when it is set.
	CountByDate(ctx context.Context, date string, siteLocation *string) (int64, error)
}
