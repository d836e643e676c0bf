package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestType_Attributes(t *testing.T) {
	cases := []struct {
		typ        Type
		multiplier string
		label      string
		window     string
	}{
		{TypeFull, "1", "Full Day", "9:00 AM - 5:00 PM"},
		{TypeHalf, "0.5", "Half Day", "1:00 PM - 5:00 PM"},
		{TypeOneAndHalf, "1.5", "1.5 Day", "8:00 AM - 7:00 PM"},
	}
	for _, c := range cases {
		t.Run(string(c.typ), func(t *testing.T) {
			assert.True(t, c.typ.IsValid())
			assert.True(t, decimal.RequireFromString(c.multiplier).Equal(c.typ.Multiplier()))
			assert.Equal(t, c.label, c.typ.Label())
			assert.Equal(t, c.window, c.typ.TimeWindow())
		})
	}
}

func TestType_Unknown(t *testing.T) {
	typ := Type("double")
	assert.False(t, typ.IsValid())
	assert.True(t, typ.Multiplier().IsZero())
	assert.Equal(t, "double", typ.Label())
}

func TestMarkAttendanceRequest(t *testing.T) {
	req := MarkAttendanceRequest{EmployeeID: " e-1 "}
	assert.NoError(t, req.Validate())
	req.ApplyDefaults("2024-01-05")
	assert.Equal(t, "e-1", req.EmployeeID)
	assert.Equal(t, "2024-01-05", req.Date)
	assert.Equal(t, "full", req.AttendanceType)

	bad := MarkAttendanceRequest{Date: "05/01/2024", AttendanceType: "double"}
	err := bad.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "employee_id")
	assert.Contains(t, err.Error(), "date")
	assert.Contains(t, err.Error(), "attendance_type")
}

func TestNewAttendanceResponse_Fallbacks(t *testing.T) {
	resp := NewAttendanceResponse(Record{ID: "a-1", EmployeeID: "gone", Date: "2024-01-01", AttendanceType: TypeHalf})
	assert.Equal(t, "Unknown", resp.EmployeeName)
	assert.Equal(t, "Unknown", resp.EmployeeCode)
	assert.Equal(t, "System", resp.MarkedByName)
	assert.Equal(t, "Half Day", resp.TypeLabel)
}
