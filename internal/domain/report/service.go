package report

import (
	"context"
	"io"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
)

type ReportService interface {
	Generate(ctx context.Context, scope user.Scope, filter Filter) (ReportResponse, error)
	// Export refuses with ErrNoReportData when no rows match.
	Export(ctx context.Context, scope user.Scope, req ExportRequest) (ExportResponse, error)
	// DownloadExport reopens an archived export owned by the caller.
	DownloadExport(ctx context.Context, scope user.Scope, key string) (io.ReadCloser, string, error)
	Sites(ctx context.Context, scope user.Scope) (SitesResponse, error)
}
