package export

import (
	"github.com/gocarina/gocsv"
)

// renderCSV quotes fields containing separators, so names with commas stay
// in their column.
func renderCSV(doc Document) ([]byte, error) {
	records := doc.Records
	if records == nil {
		records = []AttendanceRecord{}
	}
	return gocsv.MarshalBytes(&records)
}
