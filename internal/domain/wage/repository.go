package wage

import "context"

type PaymentRepository interface {
	Create(ctx context.Context, payment Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	Delete(ctx context.Context, id string) error
	// List returns payments newest date first with joins filled when they
	// resolve. A SiteLocation filter drops payments whose employee is missing.
	List(ctx context.Context, filter AdvanceFilter) ([]Payment, error)
}
