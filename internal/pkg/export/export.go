// Package export renders attendance report rows as downloadable files.
package export

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

func (f Format) IsValid() bool {
	switch f {
	case FormatCSV, FormatXLSX, FormatPDF:
		return true
	}
	return false
}

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Headers is the column order shared by every format.
var Headers = []string{
	"Employee Name",
	"Employee ID",
	"Job Category",
	"Site Location",
	"Date",
	"Attendance Type",
	"Daily Wage (₹)",
	"Calculated Wage (₹)",
}

// Amount is a currency value always rendered with two decimals.
type Amount decimal.Decimal

func (a Amount) MarshalCSV() (string, error) {
	return a.String(), nil
}

func (a Amount) String() string {
	return decimal.Decimal(a).StringFixed(2)
}

func (a Amount) float() float64 {
	return decimal.Decimal(a).Round(2).InexactFloat64()
}

// AttendanceRecord is one exported report row.
type AttendanceRecord struct {
	EmployeeName   string `csv:"Employee Name"`
	EmployeeCode   string `csv:"Employee ID"`
	JobCategory    string `csv:"Job Category"`
	SiteLocation   string `csv:"Site Location"`
	Date           string `csv:"Date"`
	AttendanceType string `csv:"Attendance Type"`
	DailyWage      Amount `csv:"Daily Wage (₹)"`
	CalculatedWage Amount `csv:"Calculated Wage (₹)"`
}

func (r AttendanceRecord) values() []string {
	return []string{
		r.EmployeeName,
		r.EmployeeCode,
		r.JobCategory,
		r.SiteLocation,
		r.Date,
		r.AttendanceType,
		r.DailyWage.String(),
		r.CalculatedWage.String(),
	}
}

// Summary is printed below the table in formats that have room for it.
type Summary struct {
	TotalRecords    int
	TotalWages      decimal.Decimal
	UniqueEmployees int
	UniqueSites     int
}

type Document struct {
	Title       string
	GeneratedOn string // YYYY-MM-DD
	Records     []AttendanceRecord
	Summary     Summary
}

type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// FileName returns attendance_report_<date>.<ext>.
func FileName(format Format, generatedOn string) string {
	return fmt.Sprintf("attendance_report_%s.%s", generatedOn, format)
}

// Render serializes doc in the requested format.
func Render(format Format, doc Document) (*File, error) {
	var (
		content []byte
		err     error
	)
	switch format {
	case FormatCSV:
		content, err = renderCSV(doc)
	case FormatXLSX:
		content, err = renderXLSX(doc)
	case FormatPDF:
		content, err = renderPDF(doc)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s export: %w", format, err)
	}

	return &File{
		Name:        FileName(format, doc.GeneratedOn),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}
