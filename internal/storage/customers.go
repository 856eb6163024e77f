package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cafe-fausse/internal/domain"
)

const customerColumns = `id, name, email, COALESCE(phone, ''), newsletter_signup, created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.NewsletterSignup, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+customerColumns+" FROM customers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *PostgresRepository) GetCustomer(ctx context.Context, id int) (*domain.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRowContext(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE customers
		SET name = $1, email = $2, phone = NULLIF($3, ''), newsletter_signup = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`,
		c.Name, c.Email, c.Phone, c.NewsletterSignup, c.ID).Scan(&c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// SetCustomerNewsletter flips the newsletter preference for the customer with
// this email, if one exists. Missing customers are not an error: newsletter
// subscribers do not have to be customers.
func (r *PostgresRepository) SetCustomerNewsletter(ctx context.Context, email string, signup bool) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE customers SET newsletter_signup = $1, updated_at = NOW() WHERE email = $2",
		signup, email)
	if err != nil {
		return fmt.Errorf("update customer newsletter flag: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteCustomer(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete customer: %w", err)
	}
	return result.RowsAffected()
}
