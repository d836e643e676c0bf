package attendance

import (
	"context"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
)

type AttendanceService interface {
	MarkAttendance(ctx context.Context, scope user.Scope, req MarkAttendanceRequest) (AttendanceResponse, error)
	ListByDate(ctx context.Context, scope user.Scope, date string) (ListAttendanceResponse, error)
	DeleteAttendance(ctx context.Context, scope user.Scope, id string) error
}
