package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/export"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

const exportPrefix = "exports/"

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	fileStorage    storage.FileStorage
	now            func() time.Time
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	fileStorage storage.FileStorage,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		fileStorage:    fileStorage,
		now:            time.Now,
	}
}

// build loads the records and employees visible to scope and runs the
// filter/aggregate pipeline over them.
func (s *ReportServiceImpl) build(ctx context.Context, scope user.Scope, filter report.Filter) ([]report.Row, report.Aggregates, error) {
	site := scope.SiteFilter()

	recordFilter := attendance.AttendanceFilter{SiteLocation: site}
	if filter.HasDateRange() {
		recordFilter.StartDate = &filter.StartDate
		recordFilter.EndDate = &filter.EndDate
	}
	records, err := s.attendanceRepo.List(ctx, recordFilter)
	if err != nil {
		return nil, report.Aggregates{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{SiteLocation: site})
	if err != nil {
		return nil, report.Aggregates{}, fmt.Errorf("failed to list employees: %w", err)
	}

	rows, agg := Build(scope, filter, records, employees)
	return rows, agg, nil
}

// Generate implements report.ReportService.
func (s *ReportServiceImpl) Generate(ctx context.Context, scope user.Scope, filter report.Filter) (report.ReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	rows, agg, err := s.build(ctx, scope, filter)
	if err != nil {
		return report.ReportResponse{}, err
	}

	resp := report.ReportResponse{
		Filter: filter,
		Rows:   make([]report.RowResponse, 0, len(rows)),
		Aggregates: report.AggregatesResponse{
			TotalRecords:    agg.TotalRecords,
			TotalWages:      agg.TotalWages,
			UniqueEmployees: agg.UniqueEmployees,
			UniqueSites:     agg.UniqueSites,
		},
		GeneratedAt: s.now().Format(time.RFC3339),
	}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, report.RowResponse{
			EmployeeID:     r.EmployeeID,
			EmployeeName:   r.EmployeeName,
			EmployeeCode:   r.EmployeeCode,
			JobCategory:    r.JobCategory,
			SiteLocation:   r.SiteLocation,
			Date:           r.Date,
			AttendanceType: string(r.AttendanceType),
			TypeLabel:      r.AttendanceType.Label(),
			DailyWage:      r.DailyWage,
			CalculatedWage: r.CalculatedWage,
		})
	}
	return resp, nil
}

// Export implements report.ReportService. The file is archived under
// exports/<user id>/<date>/ before it is returned.
func (s *ReportServiceImpl) Export(ctx context.Context, scope user.Scope, req report.ExportRequest) (report.ExportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ExportResponse{}, err
	}

	rows, agg, err := s.build(ctx, scope, req.Filter)
	if err != nil {
		return report.ExportResponse{}, err
	}
	if len(rows) == 0 {
		return report.ExportResponse{}, report.ErrNoReportData
	}

	generatedOn := s.now().UTC().Format(validator.DateLayout)
	doc := export.Document{
		Title:       "Attendance Report",
		GeneratedOn: generatedOn,
		Records:     make([]export.AttendanceRecord, 0, len(rows)),
		Summary: export.Summary{
			TotalRecords:    agg.TotalRecords,
			TotalWages:      agg.TotalWages,
			UniqueEmployees: agg.UniqueEmployees,
			UniqueSites:     agg.UniqueSites,
		},
	}
	for _, r := range rows {
		doc.Records = append(doc.Records, export.AttendanceRecord{
			EmployeeName:   r.EmployeeName,
			EmployeeCode:   r.EmployeeCode,
			JobCategory:    r.JobCategory,
			SiteLocation:   r.SiteLocation,
			Date:           r.Date,
			AttendanceType: r.AttendanceType.Label(),
			DailyWage:      export.Amount(r.DailyWage),
			CalculatedWage: export.Amount(r.CalculatedWage),
		})
	}

	file, err := export.Render(req.Format, doc)
	if err != nil {
		return report.ExportResponse{}, err
	}

	objectID, err := uuid.NewV7()
	if err != nil {
		return report.ExportResponse{}, fmt.Errorf("failed to generate export id: %w", err)
	}
	key := fmt.Sprintf("%s%s/%s/%s-%s", exportPrefix, scope.UserID, generatedOn, objectID.String(), file.Name)

	storedKey, err := s.fileStorage.Upload(ctx, bytes.NewReader(file.Content), key, file.ContentType)
	if err != nil {
		return report.ExportResponse{}, fmt.Errorf("failed to archive export: %w", err)
	}
	url, err := s.fileStorage.GetURL(ctx, storedKey)
	if err != nil {
		return report.ExportResponse{}, fmt.Errorf("failed to get export url: %w", err)
	}

	return report.ExportResponse{
		FileName:    file.Name,
		ContentType: file.ContentType,
		Content:     file.Content,
		StorageKey:  storedKey,
		URL:         url,
	}, nil
}

// DownloadExport implements report.ReportService. Admins may open any export,
// others only their own.
func (s *ReportServiceImpl) DownloadExport(ctx context.Context, scope user.Scope, key string) (io.ReadCloser, string, error) {
	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	if !strings.HasPrefix(key, exportPrefix) {
		return nil, "", report.ErrExportNotFound
	}
	if !scope.IsAdmin() && !strings.HasPrefix(key, exportPrefix+scope.UserID+"/") {
		return nil, "", report.ErrExportNotFound
	}

	rc, err := s.fileStorage.Download(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, "", report.ErrExportNotFound
		}
		return nil, "", fmt.Errorf("failed to open export: %w", err)
	}

	format := export.Format(strings.TrimPrefix(path.Ext(key), "."))
	return rc, format.ContentType(), nil
}

// Sites implements report.ReportService.
func (s *ReportServiceImpl) Sites(ctx context.Context, scope user.Scope) (report.SitesResponse, error) {
	sites, err := s.employeeRepo.DistinctSites(ctx, scope.SiteFilter())
	if err != nil {
		return report.SitesResponse{}, fmt.Errorf("failed to list sites: %w", err)
	}
	return report.SitesResponse{Sites: sites}, nil
}
