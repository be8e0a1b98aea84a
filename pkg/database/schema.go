package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is idempotent; seq keeps listing order equal to insertion order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS universities (
		seq BIGSERIAL,
		id VARCHAR PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		description TEXT NOT NULL,
		programs TEXT[] NOT NULL,
		medium TEXT NOT NULL,
		established TEXT,
		ranking TEXT,
		logo_url TEXT,
		authorization_letter_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS programs (
		seq BIGSERIAL,
		id VARCHAR PRIMARY KEY,
		category TEXT NOT NULL,
		title TEXT NOT NULL,
		duration TEXT NOT NULL,
		medium TEXT NOT NULL,
		eligibility TEXT NOT NULL,
		tuition_fees TEXT NOT NULL,
		admission_intakes TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		seq BIGSERIAL,
		id VARCHAR PRIMARY KEY,
		student_name TEXT NOT NULL,
		country TEXT NOT NULL,
		university TEXT NOT NULL,
		program TEXT NOT NULL,
		quote TEXT NOT NULL,
		year INTEGER NOT NULL,
		image_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		seq BIGSERIAL,
		id VARCHAR PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		country TEXT NOT NULL,
		program_interest TEXT NOT NULL,
		education_level TEXT NOT NULL,
		message TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inquiries_created_at ON inquiries (created_at)`,
}

// EnsureSchema creates the catalog and inquiry tables when missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
