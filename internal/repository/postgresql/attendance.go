package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, to_char(a.date, 'YYYY-MM-DD'), a.attendance_type, a.marked_by, a.created_at,
		   e.name, e.employee_code, p.name
	FROM attendance_records a
	LEFT JOIN employees e ON e.id = a.employee_id
	LEFT JOIN profiles p ON p.id = a.marked_by
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.AttendanceType, &rec.MarkedBy, &rec.CreatedAt,
		&rec.EmployeeName, &rec.EmployeeCode, &rec.MarkedByName,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, attendance_type, marked_by)
		VALUES ($1, $2, $3::date, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		string(record.AttendanceType),
		record.MarkedBy,
	).Scan(&record.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "attendance_records_employee_date_key") {
			return attendance.Record{}, attendance.ErrAttendanceAlreadyMarked
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rec, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance %s: %w", id, err)
	}
	return rec, nil
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM attendance_records WHERE employee_id = $1 AND date = $2::date)
	`, employeeID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	return exists, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conditions = append(conditions, fmt.Sprintf("a.date = $%d::date", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d::date", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d::date", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.SiteLocation != nil {
		args = append(args, *filter.SiteLocation)
		conditions = append(conditions, fmt.Sprintf("e.site_location = $%d", len(args)))
	}

	query := attendanceSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY a.date ASC, COALESCE(e.employee_code, 'Unknown') ASC, a.id ASC`

	rows, err := q.Query(ctx, query, args...)
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
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// CountByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByDate(ctx context.Context, date string, siteLocation *string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1::date AND ($2::text IS NULL OR e.site_location = $2)
	`, date, siteLocation).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return count, nil
}
