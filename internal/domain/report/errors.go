package report

import "errors"

var (
	ErrNoReportData        = errors.New("no data available for the selected filters")
	ErrInvalidExportFormat = errors.New("export format must be csv, xlsx or pdf")
	ErrExportNotFound      = errors.New("export file not found")
)
