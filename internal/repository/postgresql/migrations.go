package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/database"
)

// Employees may be deleted while their attendance and advances stay, so the
// child tables carry no foreign key to employees.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(254) NOT NULL,
		password_hash TEXT,
		role VARCHAR(20) NOT NULL CHECK (role IN ('admin', 'supervisor')),
		site_location VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS profiles_email_key ON profiles (LOWER(email))`,
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		employee_code VARCHAR(50) NOT NULL,
		name VARCHAR(255) NOT NULL,
		job_category VARCHAR(255) NOT NULL,
		daily_wage NUMERIC NOT NULL CHECK (daily_wage > 0),
		site_location VARCHAR(255) NOT NULL,
		added_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS employees_employee_code_key ON employees (employee_code)`,
	`CREATE INDEX IF NOT EXISTS employees_site_location_idx ON employees (site_location)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL,
		date DATE NOT NULL,
		attendance_type VARCHAR(10) NOT NULL CHECK (attendance_type IN ('full', 'half', '1.5')),
		marked_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS attendance_records_employee_date_key ON attendance_records (employee_id, date)`,
	`CREATE INDEX IF NOT EXISTS attendance_records_date_idx ON attendance_records (date)`,
	`CREATE TABLE IF NOT EXISTS wage_payments (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL,
		advance_amount NUMERIC NOT NULL,
		date DATE NOT NULL,
		paid_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS wage_payments_employee_idx ON wage_payments (employee_id)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
		token_hash TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		user_agent TEXT,
		ip_address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS refresh_tokens_token_hash_idx ON refresh_tokens (token_hash)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *database.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
