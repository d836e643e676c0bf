package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type is the length of a worked day.
type Type string

const (
	TypeFull       Type = "full"
	TypeHalf       Type = "half"
	TypeOneAndHalf Type = "1.5"
)

type typeInfo struct {
	label      string
	timeWindow string
	multiplier decimal.Decimal
}

var types = map[Type]typeInfo{
	TypeFull:       {label: "Full Day", timeWindow: "9:00 AM - 5:00 PM", multiplier: decimal.NewFromInt(1)},
	TypeHalf:       {label: "Half Day", timeWindow: "1:00 PM - 5:00 PM", multiplier: decimal.RequireFromString("0.5")},
	TypeOneAndHalf: {label: "1.5 Day", timeWindow: "8:00 AM - 7:00 PM", multiplier: decimal.RequireFromString("1.5")},
}

// Types lists the accepted values in display order.
var Types = []Type{TypeFull, TypeHalf, TypeOneAndHalf}

func (t Type) IsValid() bool {
	_, ok := types[t]
	return ok
}

// Multiplier is the share of the daily wage earned; unknown types earn nothing.
func (t Type) Multiplier() decimal.Decimal {
	return types[t].multiplier
}

func (t Type) Label() string {
	if info, ok := types[t]; ok {
		return info.label
	}
	return string(t)
}

func (t Type) TimeWindow() string {
	return types[t].timeWindow
}

// Record marks one employee as present on one date.
type Record struct {
	ID             string
	EmployeeID     string
	Date           string // YYYY-MM-DD
	AttendanceType Type
	MarkedBy       string
	CreatedAt      time.Time

	// Join
	EmployeeName *string
	EmployeeCode *string
	MarkedByName *string
}
