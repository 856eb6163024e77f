package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the tables the service needs and seeds the static
// table inventory when it is empty. The partial unique index is what makes
// the no-double-booking invariant hold even if two transactions race past
// the row locks.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tables (
			number   INT PRIMARY KEY,
			capacity INT NOT NULL CHECK (capacity > 0)
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id                SERIAL PRIMARY KEY,
			name              VARCHAR(100) NOT NULL,
			email             VARCHAR(120) NOT NULL UNIQUE,
			phone             VARCHAR(20),
			newsletter_signup BOOLEAN NOT NULL DEFAULT FALSE,
			created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id               SERIAL PRIMARY KEY,
			customer_id      INT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
			date             DATE NOT NULL,
			time             TIME NOT NULL,
			guests           INT NOT NULL CHECK (guests > 0),
			table_number     INT NOT NULL REFERENCES tables(number),
			special_requests TEXT,
			status           VARCHAR(20) NOT NULL DEFAULT 'confirmed',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS reservations_slot_table_uniq
			ON reservations (date, time, table_number)
			WHERE status = 'confirmed'`,
		`CREATE TABLE IF NOT EXISTS categories (
			id            SERIAL PRIMARY KEY,
			name          VARCHAR(50) NOT NULL UNIQUE,
			description   VARCHAR(200),
			display_order INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id             SERIAL PRIMARY KEY,
			name           VARCHAR(100) NOT NULL,
			description    TEXT,
			price          NUMERIC(8,2) NOT NULL,
			image_url      VARCHAR(255),
			is_vegetarian  BOOLEAN NOT NULL DEFAULT FALSE,
			is_vegan       BOOLEAN NOT NULL DEFAULT FALSE,
			is_gluten_free BOOLEAN NOT NULL DEFAULT FALSE,
			is_featured    BOOLEAN NOT NULL DEFAULT FALSE,
			available      BOOLEAN NOT NULL DEFAULT TRUE,
			display_order  INT NOT NULL DEFAULT 0,
			category_id    INT NOT NULL REFERENCES categories(id)
		)`,
		`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
			id         SERIAL PRIMARY KEY,
			email      VARCHAR(120) NOT NULL UNIQUE,
			is_active  BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id            SERIAL PRIMARY KEY,
			username      VARCHAR(80) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			role          VARCHAR(50) NOT NULL DEFAULT 'staff'
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return r.seedTables()
}

// seedTables provisions the dining room on first boot: thirty tables split
// into two-, four-, six- and eight-tops.
func (r *PostgresRepository) seedTables() error {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM tables").Scan(&count); err != nil {
		return fmt.Errorf("count tables: %w", err)
	}
	if count > 0 {
		return nil
	}

	capacityFor := func(number int) int {
		switch {
		case number <= 12:
			return 2
		case number <= 22:
			return 4
		case number <= 28:
			return 6
		default:
			return 8
		}
	}

	for number := 1; number <= 30; number++ {
		if _, err := r.DB.Exec(
			"INSERT INTO tables (number, capacity) VALUES ($1, $2)",
			number, capacityFor(number),
		); err != nil {
			return fmt.Errorf("seed table %d: %w", number, err)
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
