package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"cafe-fausse/internal/domain"
)

// Cache keys for the public menu. Every admin mutation drops all of them.
const (
	menuItemsKey      = "menu:items"
	menuCategoriesKey = "menu:categories"
	menuCategoryKey   = "menu:items:cat:" // + category id
)

// MenuService serves the public menu through the Redis cache and lets the
// admin panel mutate it. Mutations always hit Postgres first and only then
// drop the cache, so a failed write never leaves stale entries pinned.
type MenuService struct {
	repo  MenuRepository
	cache MenuCache
	log   *slog.Logger
}

func NewMenuService(repo MenuRepository, cache MenuCache, log *slog.Logger) *MenuService {
	return &MenuService{repo: repo, cache: cache, log: log}
}

func (s *MenuService) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if s.cached(ctx, menuCategoriesKey, &categories) {
		return categories, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list categories", domain.ErrStoreUnavailable)
	}
	s.store(ctx, menuCategoriesKey, categories)
	return categories, nil
}

func (s *MenuService) Items(ctx context.Context, categoryID int) ([]domain.MenuItem, error) {
	key := menuItemsKey
	if categoryID > 0 {
		key = menuCategoryKey + strconv.Itoa(categoryID)
	}

	var items []domain.MenuItem
	if s.cached(ctx, key, &items) {
		return items, nil
	}

	items, err := s.repo.ListMenuItems(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: list menu items", domain.ErrStoreUnavailable)
	}
	s.store(ctx, key, items)
	return items, nil
}

func (s *MenuService) Item(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: get menu item", domain.ErrStoreUnavailable)
	}
	return item, nil
}

func (s *MenuService) CategoryWithItems(ctx context.Context, categoryID int) (*domain.Category, []domain.MenuItem, error) {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: get category", domain.ErrStoreUnavailable)
	}
	items, err := s.Items(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	return category, items, nil
}

func (s *MenuService) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return fmt.Errorf("%w: create menu item", domain.ErrStoreUnavailable)
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: update menu item", domain.ErrStoreUnavailable)
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: delete menu item", domain.ErrStoreUnavailable)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) CreateCategory(ctx context.Context, c *domain.Category) error {
	if c.Name == "" {
		return validationf("Category name is required")
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return fmt.Errorf("%w: create category", domain.ErrStoreUnavailable)
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, c *domain.Category) error {
	if c.Name == "" {
		return validationf("Category name is required")
	}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: update category", domain.ErrStoreUnavailable)
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) DeleteCategory(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: delete category", domain.ErrStoreUnavailable)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

func validateMenuItem(item *domain.MenuItem) error {
	if item.Name == "" {
		return validationf("Menu item name is required")
	}
	if item.Price < 0 {
		return validationf("Price cannot be negative")
	}
	if item.CategoryID <= 0 {
		return validationf("Category is required")
	}
	return nil
}

// cached loads key into dest; cache failures count as misses and are only
// logged, the menu is served from Postgres either way.
func (s *MenuService) cached(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	payload, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn("menu cache read failed", slog.String("key", key), slog.Any("error", err))
		return false
	}
	if !hit {
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		s.log.Warn("menu cache payload corrupt", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

func (s *MenuService) store(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload); err != nil {
		s.log.Warn("menu cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateMenu(ctx); err != nil {
		s.log.Warn("menu cache invalidation failed", slog.Any("error", err))
	}
}
