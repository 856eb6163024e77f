package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cafe-fausse/internal/domain"
)

func (r *PostgresRepository) FindSubscriberByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	var s domain.Subscriber
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, email, is_active, created_at
		FROM newsletter_subscribers WHERE email = $1`, email).
		Scan(&s.ID, &s.Email, &s.IsActive, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find subscriber: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) CreateSubscriber(ctx context.Context, email string) (*domain.Subscriber, error) {
	var s domain.Subscriber
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO newsletter_subscribers (email)
		VALUES ($1)
		RETURNING id, email, is_active, created_at`, email).
		Scan(&s.ID, &s.Email, &s.IsActive, &s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("insert subscriber: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) SetSubscriberActive(ctx context.Context, email string, active bool) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE newsletter_subscribers SET is_active = $1 WHERE email = $2",
		active, email)
	if err != nil {
		return fmt.Errorf("update subscriber: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, email, is_active, created_at
		FROM newsletter_subscribers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := []domain.Subscriber{}
	for rows.Next() {
		var s domain.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subscribers = append(subscribers, s)
	}
	return subscribers, rows.Err()
}
