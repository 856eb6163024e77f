package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cafe-fausse/internal/domain"
)

const menuItemColumns = `id, name, COALESCE(description, ''), price, COALESCE(image_url, ''),
	is_vegetarian, is_vegan, is_gluten_free, is_featured, available, display_order, category_id`

func scanMenuItem(row interface{ Scan(...any) error }) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL,
		&item.IsVegetarian, &item.IsVegan, &item.IsGlutenFree, &item.IsFeatured,
		&item.Available, &item.DisplayOrder, &item.CategoryID,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, ''), display_order
		FROM categories
		ORDER BY display_order, id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(description, ''), display_order
		FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.DisplayOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO categories (name, description, display_order)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id`,
		c.Name, c.Description, c.DisplayOrder).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE categories SET name = $1, description = NULLIF($2, ''), display_order = $3
		WHERE id = $4`,
		c.Name, c.Description, c.DisplayOrder, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, categoryID int) ([]domain.MenuItem, error) {
	query := "SELECT " + menuItemColumns + " FROM menu_items"
	args := []any{}
	if categoryID > 0 {
		query += " WHERE category_id = $1"
		args = append(args, categoryID)
	}
	query += " ORDER BY display_order, id"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx,
		"SELECT "+menuItemColumns+" FROM menu_items WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (name, description, price, image_url, is_vegetarian, is_vegan,
			is_gluten_free, is_featured, available, display_order, category_id)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		item.Name, item.Description, item.Price, item.ImageURL, item.IsVegetarian,
		item.IsVegan, item.IsGlutenFree, item.IsFeatured, item.Available,
		item.DisplayOrder, item.CategoryID).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET name = $1, description = NULLIF($2, ''), price = $3, image_url = NULLIF($4, ''),
		    is_vegetarian = $5, is_vegan = $6, is_gluten_free = $7, is_featured = $8,
		    available = $9, display_order = $10, category_id = $11
		WHERE id = $12`,
		item.Name, item.Description, item.Price, item.ImageURL, item.IsVegetarian,
		item.IsVegan, item.IsGlutenFree, item.IsFeatured, item.Available,
		item.DisplayOrder, item.CategoryID, item.ID)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete menu item: %w", err)
	}
	return result.RowsAffected()
}
