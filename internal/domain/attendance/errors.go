package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound      = errors.New("attendance record not found")
	ErrAttendanceAlreadyMarked = errors.New("attendance already marked for this employee on this date")
	ErrInvalidAttendanceType   = errors.New("attendance type must be full, half or 1.5")
	ErrUnauthorized            = errors.New("unauthorized to access this attendance record")
)
