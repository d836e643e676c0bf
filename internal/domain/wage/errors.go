package wage

import "errors"

var (
	ErrPaymentNotFound       = errors.New("wage payment not found")
	ErrInvalidAdvanceScoping = errors.New("advance_scoping must be unbounded or same-period")
	ErrInvalidPeriod         = errors.New("start_date must not be after end_date")
)
