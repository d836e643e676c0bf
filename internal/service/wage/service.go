package wage

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WageServiceImpl struct {
	paymentRepo    wage.PaymentRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	profileRepo    user.ProfileRepository
	defaultScoping wage.AdvanceScoping
	today          func() string
}

func NewWageService(
	paymentRepo wage.PaymentRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	profileRepo user.ProfileRepository,
	defaultScoping wage.AdvanceScoping,
) wage.WageService {
	if !defaultScoping.IsValid() {
		defaultScoping = wage.ScopingUnbounded
	}
	return &WageServiceImpl{
		paymentRepo:    paymentRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		profileRepo:    profileRepo,
		defaultScoping: defaultScoping,
		today:          validator.Today,
	}
}

func (s *WageServiceImpl) visibleEmployee(ctx context.Context, scope user.Scope, id string) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if !scope.Allows(emp.SiteLocation) {
		return employee.Employee{}, user.ErrOutOfScope
	}
	return emp, nil
}

// RecordAdvance implements wage.WageService.
func (s *WageServiceImpl) RecordAdvance(ctx context.Context, scope user.Scope, req wage.RecordAdvanceRequest) (wage.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.PaymentResponse{}, err
	}
	req.ApplyDefaults(s.today())

	emp, err := s.visibleEmployee(ctx, scope, req.EmployeeID)
	if err != nil {
		return wage.PaymentResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return wage.PaymentResponse{}, fmt.Errorf("failed to generate payment id: %w", err)
	}

	payment, err := s.paymentRepo.Create(ctx, wage.Payment{
		ID:            id.String(),
		EmployeeID:    emp.ID,
		AdvanceAmount: *req.AdvanceAmount,
		Date:          req.Date,
		PaidBy:        scope.UserID,
	})
	if err != nil {
		return wage.PaymentResponse{}, err
	}

	payment.EmployeeName = &emp.Name
	payment.EmployeeCode = &emp.EmployeeCode
	if payer, err := s.profileRepo.GetByID(ctx, scope.UserID); err == nil {
		payment.PaidByName = &payer.Name
	}

	return wage.NewPaymentResponse(payment), nil
}

// ListAdvances implements wage.WageService.
func (s *WageServiceImpl) ListAdvances(ctx context.Context, scope user.Scope, employeeID *string) (wage.ListPaymentResponse, error) {
	filter := wage.AdvanceFilter{SiteLocation: scope.SiteFilter()}
	if employeeID != nil && *employeeID != "" {
		if _, err := s.visibleEmployee(ctx, scope, *employeeID); err != nil {
			return wage.ListPaymentResponse{}, err
		}
		filter.EmployeeID = employeeID
	}

	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return wage.ListPaymentResponse{}, fmt.Errorf("failed to list advances: %w", err)
	}

	resp := wage.ListPaymentResponse{
		TotalAdvances: decimal.Zero,
		Payments:      make([]wage.PaymentResponse, 0, len(payments)),
	}
	for _, p := range payments {
		resp.TotalAdvances = resp.TotalAdvances.Add(p.AdvanceAmount)
		resp.Payments = append(resp.Payments, wage.NewPaymentResponse(p))
	}
	resp.TotalCount = int64(len(resp.Payments))
	return resp, nil
}

// DeleteAdvance implements wage.WageService.
func (s *WageServiceImpl) DeleteAdvance(ctx context.Context, scope user.Scope, id string) error {
	if err := scope.RequireAdmin(); err != nil {
		return err
	}
	if !validator.IsValidUUID(id) {
		return wage.ErrPaymentNotFound
	}
	return s.paymentRepo.Delete(ctx, id)
}

func (s *WageServiceImpl) scoping(req wage.CalculateWagesRequest) wage.AdvanceScoping {
	if req.AdvanceScoping == "" {
		return s.defaultScoping
	}
	return wage.AdvanceScoping(req.AdvanceScoping)
}

// CalculateWages implements wage.WageService.
func (s *WageServiceImpl) CalculateWages(ctx context.Context, scope user.Scope, req wage.CalculateWagesRequest) (wage.WageSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.WageSummaryResponse{}, err
	}
	scoping := s.scoping(req)
	site := scope.SiteFilter()

	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{SiteLocation: site})
	if err != nil {
		return wage.WageSummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	records, err := s.attendanceRepo.List(ctx, attendance.AttendanceFilter{
		StartDate:    &req.StartDate,
		EndDate:      &req.EndDate,
		SiteLocation: site,
	})
	if err != nil {
		return wage.WageSummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	payments, err := s.paymentRepo.List(ctx, wage.AdvanceFilter{SiteLocation: site})
	if err != nil {
		return wage.WageSummaryResponse{}, fmt.Errorf("failed to list advances: %w", err)
	}

	summary := wage.WageSummaryResponse{
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		AdvanceScoping: scoping,
		Employees:      make([]wage.EmployeeWageResponse, 0, len(employees)),
		Totals: wage.WageTotals{
			TotalWage:     decimal.Zero,
			TotalAdvances: decimal.Zero,
			Remaining:     decimal.Zero,
		},
	}
	for _, emp := range employees {
		row := employeeWage(emp, records, payments, scoping, req.StartDate, req.EndDate)
		row.Breakdown = nil
		summary.Employees = append(summary.Employees, row)
		summary.Totals.TotalWage = summary.Totals.TotalWage.Add(row.TotalWage)
		summary.Totals.TotalAdvances = summary.Totals.TotalAdvances.Add(row.TotalAdvances)
		summary.Totals.Remaining = summary.Totals.Remaining.Add(row.Remaining)
	}
	return summary, nil
}

// GetEmployeeWage implements wage.WageService.
func (s *WageServiceImpl) GetEmployeeWage(ctx context.Context, scope user.Scope, employeeID string, req wage.CalculateWagesRequest) (wage.EmployeeWageResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.EmployeeWageResponse{}, err
	}

	emp, err := s.visibleEmployee(ctx, scope, employeeID)
	if err != nil {
		return wage.EmployeeWageResponse{}, err
	}

	records, err := s.attendanceRepo.List(ctx, attendance.AttendanceFilter{
		EmployeeID: &emp.ID,
		StartDate:  &req.StartDate,
		EndDate:    &req.EndDate,
	})
	if err != nil {
		return wage.EmployeeWageResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	payments, err := s.paymentRepo.List(ctx, wage.AdvanceFilter{EmployeeID: &emp.ID})
	if err != nil {
		return wage.EmployeeWageResponse{}, fmt.Errorf("failed to list advances: %w", err)
	}

	return employeeWage(emp, records, payments, s.scoping(req), req.StartDate, req.EndDate), nil
}

func employeeWage(emp employee.Employee, records []attendance.Record, payments []wage.Payment, scoping wage.AdvanceScoping, startDate, endDate string) wage.EmployeeWageResponse {
	period := TotalWageForPeriod(emp, records, startDate, endDate)
	advances := TotalAdvances(emp.ID, payments, scoping, startDate, endDate)
	remaining := Remaining(period.TotalWage, advances)

	breakdown := make([]wage.BreakdownItem, 0, len(period.Breakdown))
	for _, d := range period.Breakdown {
		breakdown = append(breakdown, wage.BreakdownItem{
			Date:           d.Date,
			AttendanceType: string(d.AttendanceType),
			TypeLabel:      d.AttendanceType.Label(),
			Wage:           d.Wage,
		})
	}

	return wage.EmployeeWageResponse{
		EmployeeID:    emp.ID,
		EmployeeCode:  emp.EmployeeCode,
		Name:          emp.Name,
		JobCategory:   emp.JobCategory,
		SiteLocation:  emp.SiteLocation,
		DailyWage:     emp.DailyWage,
		DaysWorked:    period.DaysWorked,
		TotalWage:     period.TotalWage,
		TotalAdvances: advances,
		Remaining:     remaining,
		Status:        wage.StatusOf(remaining),
		Breakdown:     breakdown,
	}
}
