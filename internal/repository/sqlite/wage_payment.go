package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/wage"
)

type wagePaymentRepositoryImpl struct {
	db *sql.DB
}

func NewWagePaymentRepository(db *sql.DB) wage.PaymentRepository {
	return &wagePaymentRepositoryImpl{db: db}
}

const paymentSelect = `
	SELECT w.id, w.employee_id, w.advance_amount, w.date, w.paid_by, w.created_at,
		   e.name, e.employee_code, p.name
	FROM wage_payments w
	LEFT JOIN employees e ON e.id = w.employee_id
	LEFT JOIN profiles p ON p.id = w.paid_by
`

func scanPayment(row rowScanner) (wage.Payment, error) {
	var p wage.Payment
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.AdvanceAmount, &p.Date, &p.PaidBy, &p.CreatedAt,
		&p.EmployeeName, &p.EmployeeCode, &p.PaidByName,
	)
	return p, err
}

func (r *wagePaymentRepositoryImpl) Create(ctx context.Context, payment wage.Payment) (wage.Payment, error) {
	q := getQuerier(ctx, r.db)

	payment.CreatedAt = time.Now().UTC()
	_, err := q.ExecContext(ctx, `
		INSERT INTO wage_payments (id, employee_id, advance_amount, date, paid_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, payment.ID, payment.EmployeeID, payment.AdvanceAmount, payment.Date, payment.PaidBy, payment.CreatedAt)
	if err != nil {
		return wage.Payment{}, fmt.Errorf("failed to create wage payment: %w", err)
	}
	return payment, nil
}

func (r *wagePaymentRepositoryImpl) GetByID(ctx context.Context, id string) (wage.Payment, error) {
	q := getQuerier(ctx, r.db)

	p, err := scanPayment(q.QueryRowContext(ctx, paymentSelect+` WHERE w.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return wage.Payment{}, wage.ErrPaymentNotFound
		}
		return wage.Payment{}, fmt.Errorf("failed to get wage payment %s: %w", id, err)
	}
	return p, nil
}

func (r *wagePaymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := getQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM wage_payments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete wage payment %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return wage.ErrPaymentNotFound
	}
	return nil
}

func (r *wagePaymentRepositoryImpl) List(ctx context.Context, filter wage.AdvanceFilter) ([]wage.Payment, error) {
	q := getQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.EmployeeID != nil {
		conditions = append(conditions, "w.employee_id = ?")
		args = append(args, *filter.EmployeeID)
	}
	if filter.SiteLocation != nil {
		conditions = append(conditions, "e.site_location = ?")
		args = append(args, *filter.SiteLocation)
	}

	query := paymentSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY w.date DESC, w.created_at DESC, w.id ASC`

	rows, err := q.QueryContext(ctx, query, args...)
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
	return payments, rows.Err()
}
