package dashboard

import (
	"context"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, scope user.Scope) (DashboardResponse, error)
}
