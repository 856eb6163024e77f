package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cafe-fausse/internal/domain"
)

func (r *PostgresRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, username, password_hash, role FROM employees ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Username, &e.PasswordHash, &e.Role); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *PostgresRepository) GetEmployee(ctx context.Context, id int) (*domain.Employee, error) {
	var e domain.Employee
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role FROM employees WHERE id = $1", id).
		Scan(&e.ID, &e.Username, &e.PasswordHash, &e.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

func (r *PostgresRepository) FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	var e domain.Employee
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role FROM employees WHERE username = $1", username).
		Scan(&e.ID, &e.Username, &e.PasswordHash, &e.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return &e, nil
}

func (r *PostgresRepository) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO employees (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id`,
		e.Username, e.PasswordHash, e.Role).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateEmployee(ctx context.Context, e *domain.Employee) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE employees SET username = $1, password_hash = $2, role = $3
		WHERE id = $4`,
		e.Username, e.PasswordHash, e.Role, e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteEmployee(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete employee: %w", err)
	}
	return result.RowsAffected()
}
