package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"path"
	"strconv"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/export"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	// Attendance report with wage aggregates
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)

	// Same report rendered as csv, xlsx or pdf
	ExportAttendanceReport(w http.ResponseWriter, r *http.Request)

	// Distinct sites for the site filter
	ListSites(w http.ResponseWriter, r *http.Request)

	// Archived exports
	DownloadExport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func reportFilterFrom(r *http.Request) report.Filter {
	query := r.URL.Query()
	return report.Filter{
		Mode:       report.Mode(query.Get("filter")),
		EmployeeID: query.Get("employee_id"),
		Site:       query.Get("site"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
	}
}

// GetAttendanceReport handles GET /reports/attendance
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	scope, ok := requestScope(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.Generate(r.Context(), scope, reportFilterFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportAttendanceReport handles GET /reports/attendance/export?format=csv|xlsx|pdf
func (h *reportHandlerImpl) ExportAttendanceReport(w http.ResponseWriter, r *http.Request) {
	scope, ok := requestScope(w, r)
	if !ok {
		return
	}

	req := report.ExportRequest{
		Filter: reportFilterFrom(r),
		Format: export.Format(r.URL.Query().Get("format")),
	}

	result, err := h.reportService.Export(r.Context(), scope, req)
	if err != nil {
		slog.Error("ExportAttendanceReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Report exported", "user_id", scope.UserID, "key", result.StorageKey)
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.Header().Set("X-Export-URL", result.URL)
	if err := response.Attachment(w, result.ContentType, result.FileName, bytes.NewReader(result.Content)); err != nil {
		slog.Error("ExportAttendanceReport write error", "error", err)
	}
}

// ListSites handles GET /reports/sites
func (h *reportHandlerImpl) ListSites(w http.ResponseWriter, r *http.Request) {
	scope, ok := requestScope(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.Sites(r.Context(), scope)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadExport handles GET /files/*
func (h *reportHandlerImpl) DownloadExport(w http.ResponseWriter, r *http.Request) {
	scope, ok := requestScope(w, r)
	if !ok {
		return
	}

	key := chi.URLParam(r, "*")
	rc, contentType, err := h.reportService.DownloadExport(r.Context(), scope, key)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	if err := response.Attachment(w, contentType, path.Base(key), rc); err != nil {
		slog.Error("DownloadExport write error", "error", err)
	}
}
