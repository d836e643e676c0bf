package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.attendance_type, a.marked_by, a.created_at,
		   e.name, e.employee_code, p.name
	FROM attendance_records a
	LEFT JOIN employees e ON e.id = a.employee_id
	LEFT JOIN profiles p ON p.id = a.marked_by
`

func scanAttendance(row rowScanner) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.AttendanceType, &rec.MarkedBy, &rec.CreatedAt,
		&rec.EmployeeName, &rec.EmployeeCode, &rec.MarkedByName,
	)
	return rec, err
}

func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := getQuerier(ctx, a.db)

	record.CreatedAt = time.Now().UTC()
	_, err := q.ExecContext(ctx, `
		INSERT INTO attendance_records (id, employee_id, date, attendance_type, marked_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.EmployeeID, record.Date, string(record.AttendanceType), record.MarkedBy, record.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "attendance_records.employee_id") {
			return attendance.Record{}, attendance.ErrAttendanceAlreadyMarked
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return record, nil
}

func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := getQuerier(ctx, a.db)

	rec, err := scanAttendance(q.QueryRowContext(ctx, attendanceSelect+` WHERE a.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance %s: %w", id, err)
	}
	return rec, nil
}

func (a *attendanceRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date string) (bool, error) {
	q := getQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM attendance_records WHERE employee_id = ? AND date = ?)
	`, employeeID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	return exists, nil
}

func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := getQuerier(ctx, a.db)

	res, err := q.ExecContext(ctx, `DELETE FROM attendance_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, error) {
	q := getQuerier(ctx, a.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.Date != nil {
		conditions = append(conditions, "a.date = ?")
		args = append(args, *filter.Date)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		conditions = append(conditions, "a.date BETWEEN ? AND ?")
		args = append(args, *filter.StartDate, *filter.EndDate)
	} else if filter.StartDate != nil {
		conditions = append(conditions, "a.date >= ?")
		args = append(args, *filter.StartDate)
	} else if filter.EndDate != nil {
		conditions = append(conditions, "a.date <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, "a.employee_id = ?")
		args = append(args, *filter.EmployeeID)
	}
	if filter.SiteLocation != nil {
		conditions = append(conditions, "e.site_location = ?")
		args = append(args, *filter.SiteLocation)
	}

	query := attendanceSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY a.date ASC, COALESCE(e.employee_code, 'Unknown') ASC, a.id ASC`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (a *attendanceRepository) CountByDate(ctx context.Context, date string, siteLocation *string) (int64, error) {
	q := getQuerier(ctx, a.db)

	var count int64
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date = ? AND (? IS NULL OR e.site_location = ?)
	`, date, siteLocation, siteLocation).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return count, nil
}
