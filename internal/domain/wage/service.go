package wage

import (
	"context"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
)

type WageService interface {
	RecordAdvance(ctx context.Context, scope user.Scope, req RecordAdvanceRequest) (PaymentResponse, error)
	ListAdvances(ctx context.Context, scope user.Scope, employeeID *string) (ListPaymentResponse, error)
	// DeleteAdvance is admin only
	DeleteAdvance(ctx context.Context, scope user.Scope, id string) error
	CalculateWages(ctx context.Context, scope user.Scope, req CalculateWagesRequest) (WageSummaryResponse, error)
	GetEmployeeWage(ctx context.Context, scope user.Scope, employeeID string, req CalculateWagesRequest) (EmployeeWageResponse, error)
}
