package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cafe-fausse/internal/domain"
)

const reservationColumns = `r.id, r.customer_id, c.name, c.email, COALESCE(c.phone, ''),
	to_char(r.date, 'YYYY-MM-DD'), to_char(r.time, 'HH24:MI'), r.guests, r.table_number,
	COALESCE(r.special_requests, ''), r.status, r.created_at, r.updated_at`

func scanReservation(row interface{ Scan(...any) error }) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID, &res.CustomerID, &res.CustomerName, &res.CustomerEmail, &res.CustomerPhone,
		&res.Date, &res.Time, &res.Guests, &res.TableNumber,
		&res.SpecialRequests, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	res.TimeSlot = domain.Slot(res.Date, res.Time)
	return &res, nil
}

func (r *PostgresRepository) FindTables(ctx context.Context, minCapacity int) ([]domain.Table, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT number, capacity FROM tables
		WHERE capacity >= $1
		ORDER BY capacity, number`, minCapacity)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	var tables []domain.Table
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.Number, &t.Capacity); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) FindConfirmedReservations(ctx context.Context, date, timeOfDay string) ([]domain.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations r
		JOIN customers c ON c.id = r.customer_id
		WHERE r.date = $1::date AND r.time = $2::time AND r.status = 'confirmed'`,
		date, timeOfDay)
	if err != nil {
		return nil, fmt.Errorf("query slot reservations: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

// CreateReservation re-checks availability and claims a table as one atomic
// unit. Locking the qualifying table rows serializes competing bookings for
// the same slot; the partial unique index catches anything that slips
// through, so two concurrent calls for the last table produce exactly one
// success and one ErrNoTableAvailable.
func (r *PostgresRepository) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
		SELECT number, capacity FROM tables
		WHERE capacity >= $1
		ORDER BY capacity, number
		FOR UPDATE`, res.Guests)
	if err != nil {
		return fmt.Errorf("lock tables: %w", err)
	}
	var tables []domain.Table
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.Number, &t.Capacity); err != nil {
			rows.Close()
			return fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("lock tables: %w", err)
	}
	rows.Close()

	claimed, err := claimedAt(ctx, tx, res.Date, res.Time)
	if err != nil {
		return err
	}

	tableNumber, ok := domain.BestFitTable(tables, res.Guests, claimed)
	if !ok {
		return domain.ErrNoTableAvailable
	}

	var customerID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO customers (name, email, phone)
		VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (email) DO UPDATE
			SET name = EXCLUDED.name,
			    phone = COALESCE(EXCLUDED.phone, customers.phone),
			    updated_at = NOW()
		RETURNING id`,
		res.CustomerName, res.CustomerEmail, res.CustomerPhone,
	).Scan(&customerID)
	if err != nil {
		return fmt.Errorf("upsert customer: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO reservations (customer_id, date, time, guests, table_number, special_requests, status)
		VALUES ($1, $2::date, $3::time, $4, $5, NULLIF($6, ''), $7)
		RETURNING id, created_at, updated_at`,
		customerID, res.Date, res.Time, res.Guests, tableNumber, res.SpecialRequests, domain.StatusConfirmed,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNoTableAvailable
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNoTableAvailable
		}
		return fmt.Errorf("commit reservation: %w", err)
	}

	res.CustomerID = customerID
	res.TableNumber = tableNumber
	res.Status = domain.StatusConfirmed
	res.TimeSlot = domain.Slot(res.Date, res.Time)
	return nil
}

func claimedAt(ctx context.Context, tx *sql.Tx, date, timeOfDay string) (map[int]bool, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT table_number FROM reservations
		WHERE date = $1::date AND time = $2::time AND status = 'confirmed'`,
		date, timeOfDay)
	if err != nil {
		return nil, fmt.Errorf("query claimed tables: %w", err)
	}
	defer rows.Close()

	claimed := map[int]bool{}
	for rows.Next() {
		var number int
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("scan claimed table: %w", err)
		}
		claimed[number] = true
	}
	return claimed, rows.Err()
}

func (r *PostgresRepository) GetReservation(ctx context.Context, id int) (*domain.Reservation, error) {
	res, err := scanReservation(r.DB.QueryRowContext(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations r
		JOIN customers c ON c.id = r.customer_id
		WHERE r.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

func (r *PostgresRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations r
		JOIN customers c ON c.id = r.customer_id
		ORDER BY r.date, r.time, r.id`)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

// UpdateReservation applies an admin patch. When the patched reservation is
// (or stays) confirmed and the slot or table changed, the claim is
// re-validated inside the same transaction; a duplicate claim is rejected
// with ErrTableConflict instead of being silently applied.
func (r *PostgresRepository) UpdateReservation(ctx context.Context, id int, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := scanReservation(tx.QueryRowContext(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations r
		JOIN customers c ON c.id = r.customer_id
		WHERE r.id = $1
		FOR UPDATE OF r`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}

	next := *current
	if upd.TableNumber != nil {
		next.TableNumber = *upd.TableNumber
	}
	if upd.Date != nil {
		next.Date = *upd.Date
	}
	if upd.Time != nil {
		next.Time = *upd.Time
	}
	if upd.Guests != nil {
		next.Guests = *upd.Guests
	}
	if upd.SpecialRequests != nil {
		next.SpecialRequests = *upd.SpecialRequests
	}
	if upd.Status != nil {
		if *upd.Status != current.Status && current.Status != domain.StatusConfirmed {
			return nil, domain.ErrInvalidTransition
		}
		next.Status = *upd.Status
	}

	if next.Status == domain.StatusConfirmed && upd.TouchesSlot() {
		var taken bool
		err = tx.QueryRowContext(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM reservations
				WHERE date = $1::date AND time = $2::time AND table_number = $3
				  AND status = 'confirmed' AND id <> $4
			)`, next.Date, next.Time, next.TableNumber, id).Scan(&taken)
		if err != nil {
			return nil, fmt.Errorf("check slot conflict: %w", err)
		}
		if taken {
			return nil, domain.ErrTableConflict
		}
	}

	err = tx.QueryRowContext(ctx, `
		UPDATE reservations
		SET date = $1::date, time = $2::time, guests = $3, table_number = $4,
		    special_requests = NULLIF($5, ''), status = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`,
		next.Date, next.Time, next.Guests, next.TableNumber,
		next.SpecialRequests, next.Status, id,
	).Scan(&next.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrTableConflict
		}
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	if upd.CustomerName != nil || upd.CustomerEmail != nil || upd.CustomerPhone != nil {
		if upd.CustomerName != nil {
			next.CustomerName = *upd.CustomerName
		}
		if upd.CustomerEmail != nil {
			next.CustomerEmail = *upd.CustomerEmail
		}
		if upd.CustomerPhone != nil {
			next.CustomerPhone = *upd.CustomerPhone
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE customers
			SET name = $1, email = $2, phone = NULLIF($3, ''), updated_at = NOW()
			WHERE id = $4`,
			next.CustomerName, next.CustomerEmail, next.CustomerPhone, current.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("update customer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrTableConflict
		}
		return nil, fmt.Errorf("commit update: %w", err)
	}

	next.TimeSlot = domain.Slot(next.Date, next.Time)
	return &next, nil
}

// CancelReservation is idempotent for already-canceled bookings but refuses
// to reopen a completed one.
func (r *PostgresRepository) CancelReservation(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE reservations
		SET status = 'canceled', updated_at = NOW()
		WHERE id = $1 AND status <> 'completed'`, id)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected > 0 {
		return nil
	}

	var status string
	err = r.DB.QueryRowContext(ctx, "SELECT status FROM reservations WHERE id = $1", id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	return domain.ErrInvalidTransition
}

func (r *PostgresRepository) DeleteReservation(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM reservations WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete reservation: %w", err)
	}
	return result.RowsAffected()
}
