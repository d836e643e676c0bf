package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/wage"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type wagePaymentRepositoryImpl struct {
	db *database.DB
}

func NewWagePaymentRepository(db *database.DB) wage.PaymentRepository {
	return &wagePaymentRepositoryImpl{db: db}
}

const paymentSelect = `
	SELECT w.id, w.employee_id, w.advance_amount, to_char(w.date, 'YYYY-MM-DD'), w.paid_by, w.created_at,
		   e.name, e.employee_code, p.name
	FROM wage_payments w
	LEFT JOIN employees e ON e.id = w.employee_id
	LEFT JOIN profiles p ON p.id = w.paid_by
`

func scanPayment(row pgx.Row) (wage.Payment, error) {
	var p wage.Payment
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.AdvanceAmount, &p.Date, &p.PaidBy, &p.CreatedAt,
		&p.EmployeeName, &p.EmployeeCode, &p.PaidByName,
	)
	return p, err
}

// Create implements wage.PaymentRepository.
func (r *wagePaymentRepositoryImpl) Create(ctx context.Context, payment wage.Payment) (wage.Payment, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO wage_payments (id, employee_id, advance_amount, date, paid_by)
		VALUES ($1, $2, $3, $4::date, $5)
		RETURNING created_at
	`, payment.ID, payment.EmployeeID, payment.AdvanceAmount, payment.Date, payment.PaidBy).Scan(&payment.CreatedAt)
	if err != nil {
		return wage.Payment{}, fmt.Errorf("failed to create wage payment: %w", err)
	}
	return payment, nil
}

// GetByID implements wage.PaymentRepository.
func (r *wagePaymentRepositoryImpl) GetByID(ctx context.Context, id string) (wage.Payment, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPayment(q.QueryRow(ctx, paymentSelect+` WHERE w.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return wage.Payment{}, wage.ErrPaymentNotFound
		}
		return wage.Payment{}, fmt.Errorf("failed to get wage payment %s: %w", id, err)
	}
	return p, nil
}

// Delete implements wage.PaymentRepository.
func (r *wagePaymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM wage_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete wage payment %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return wage.ErrPaymentNotFound
	}
	return nil
}

// List implements wage.PaymentRepository.
func (r *wagePaymentRepositoryImpl) List(ctx context.Context, filter wage.AdvanceFilter) ([]wage.Payment, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("w.employee_id = $%d", len(args)))
	}
	if filter.SiteLocation != nil {
		args = append(args, *filter.SiteLocation)
		conditions = append(conditions, fmt.Sprintf("e.site_location = $%d", len(args)))
	}

	query := paymentSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY w.date DESC, w.created_at DESC, w.id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage payments: %w", err)
	}
	defer rows.Close()

	payments := []wage.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wage payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}
