package wage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a cash advance handed to an employee. The amount is signed;
// negative values are accepted as corrections.
type Payment struct {
	ID            string
	EmployeeID    string
	AdvanceAmount decimal.Decimal
	Date          string // YYYY-MM-DD
	PaidBy        string
	CreatedAt     time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	PaidByName   *string
}

// Status classifies what is still owed to an employee.
type Status string

const (
	StatusPending  Status = "Pending"  // wages still owed
	StatusOverpaid Status = "Overpaid" // advances exceed wages
	StatusSettled  Status = "Settled"
)

// StatusOf classifies a remaining balance by its sign.
func StatusOf(remaining decimal.Decimal) Status {
	switch remaining.Sign() {
	case 1:
		return StatusPending
	case -1:
		return StatusOverpaid
	default:
		return StatusSettled
	}
}

// AdvanceScoping decides which advances count against a period's wages.
type AdvanceScoping string

const (
	// ScopingUnbounded deducts every advance ever recorded for the employee.
	ScopingUnbounded AdvanceScoping = "unbounded"
	// ScopingSamePeriod deducts only advances dated inside the period.
	ScopingSamePeriod AdvanceScoping = "same-period"
)

func (s AdvanceScoping) IsValid() bool {
	return s == ScopingUnbounded || s == ScopingSamePeriod
}
