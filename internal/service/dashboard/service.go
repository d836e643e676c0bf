package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	today          func() string
}

func NewDashboardService(employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		today:          validator.Today,
	}
}

// GetDashboard returns the landing counts for the caller's scope. The three
// counts are independent queries and run in parallel.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, scope user.Scope) (dashboard.DashboardResponse, error) {
	today := s.today()
	site := scope.SiteFilter()

	var (
		totalEmployees  int64
		attendanceToday int64
		siteCount       int64
	)

	g, gctx := errgroup.WithContext(ctx)

	// Goroutine 1: employees
	g.Go(func() error {
		var err error
		totalEmployees, err = s.employeeRepo.Count(gctx, site)
		if err != nil {
			return fmt.Errorf("employee count: %w", err)
		}
		return nil
	})

	// Goroutine 2: attendance marked today
	g.Go(func() error {
		var err error
		attendanceToday, err = s.attendanceRepo.CountByDate(gctx, today, site)
		if err != nil {
			return fmt.Errorf("attendance count: %w", err)
		}
		return nil
	})

	// Goroutine 3: sites, a supervisor always works at one
	g.Go(func() error {
		if !scope.CanSeeAllSites() {
			if scope.Site != nil && *scope.Site != "" {
				siteCount = 1
			}
			return nil
		}
		sites, err := s.employeeRepo.DistinctSites(gctx, nil)
		if err != nil {
			return fmt.Errorf("site count: %w", err)
		}
		siteCount = int64(len(sites))
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to load dashboard: %w", err)
	}

	return dashboard.DashboardResponse{
		TotalEmployees:  totalEmployees,
		AttendanceToday: attendanceToday,
		SiteCount:       siteCount,
		ScopeLabel:      scope.Label(),
		Role:            string(scope.Role),
		Date:            today,
	}, nil
}
