package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Dates are YYYY-MM-DD text and amounts decimal text so both round-trip
// exactly. There are no foreign keys to employees: deleting one keeps its
// history.
const createProfilesTable = `
CREATE TABLE IF NOT EXISTS profiles (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL COLLATE NOCASE UNIQUE,
    password_hash TEXT,
    role TEXT NOT NULL CHECK (role IN ('admin', 'supervisor')),
    site_location TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    id TEXT PRIMARY KEY,
    employee_code TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    job_category TEXT NOT NULL,
    daily_wage TEXT NOT NULL,
    site_location TEXT NOT NULL,
    added_by TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS employees_site_location_idx ON employees (site_location);
`

const createAttendanceTable = `
CREATE TABLE IF NOT EXISTS attendance_records (
    id TEXT PRIMARY KEY,
    employee_id TEXT NOT NULL,
    date TEXT NOT NULL,
    attendance_type TEXT NOT NULL CHECK (attendance_type IN ('full', 'half', '1.5')),
    marked_by TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (employee_id, date)
);
CREATE INDEX IF NOT EXISTS attendance_records_date_idx ON attendance_records (date);
`

const createWagePaymentsTable = `
CREATE TABLE IF NOT EXISTS wage_payments (
    id TEXT PRIMARY KEY,
    employee_id TEXT NOT NULL,
    advance_amount TEXT NOT NULL,
    date TEXT NOT NULL,
    paid_by TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS wage_payments_employee_idx ON wage_payments (employee_id);
`

const createRefreshTokensTable = `
CREATE TABLE IF NOT EXISTS refresh_tokens (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    token_hash TEXT NOT NULL,
    expires_at TIMESTAMP NOT NULL,
    revoked_at TIMESTAMP,
    user_agent TEXT,
    ip_address TEXT,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS refresh_tokens_token_hash_idx ON refresh_tokens (token_hash);
`

func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{
		createProfilesTable,
		createEmployeesTable,
		createAttendanceTable,
		createWagePaymentsTable,
		createRefreshTokensTable,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
