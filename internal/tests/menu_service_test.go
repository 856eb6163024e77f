package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cafe-fausse/internal/domain"
	"cafe-fausse/internal/mocks"
	"cafe-fausse/internal/service"
)

func TestMenuService_ItemsUsesCache(t *testing.T) {
	ctx := context.Background()

	items := []domain.MenuItem{
		{ID: 1, Name: "Bruschetta", Price: 8.5, CategoryID: 1},
		{ID: 2, Name: "Ribeye Steak", Price: 45.5, CategoryID: 2},
	}
	payload, _ := json.Marshal(items)

	t.Run("cache_hit_skips_postgres", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewMenuService(repo, cache, testLogger())

		cache.On("Get", ctx, "menu:items").Return(payload, true, nil).Once()

		got, err := svc.Items(ctx, 0)
		assert.NoError(t, err)
		assert.Equal(t, items, got)
		repo.AssertNotCalled(t, "ListMenuItems", mock.Anything, mock.Anything)
	})

	t.Run("cache_miss_fills_cache", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewMenuService(repo, cache, testLogger())

		cache.On("Get", ctx, "menu:items").Return(nil, false, nil).Once()
		repo.On("ListMenuItems", ctx, 0).Return(items, nil).Once()
		cache.On("Set", ctx, "menu:items", mock.Anything).Return(nil).Once()

		got, err := svc.Items(ctx, 0)
		assert.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("cache_failure_falls_back_to_postgres", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewMenuService(repo, cache, testLogger())

		cache.On("Get", ctx, "menu:items").Return(nil, false, errors.New("redis down")).Once()
		repo.On("ListMenuItems", ctx, 0).Return(items, nil).Once()
		cache.On("Set", ctx, "menu:items", mock.Anything).Return(nil).Once()

		got, err := svc.Items(ctx, 0)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("per_category_key", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewMenuService(repo, cache, testLogger())

		cache.On("Get", ctx, "menu:items:cat:2").Return(nil, false, nil).Once()
		repo.On("ListMenuItems", ctx, 2).Return(items[1:], nil).Once()
		cache.On("Set", ctx, "menu:items:cat:2", mock.Anything).Return(nil).Once()

		got, err := svc.Items(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestMenuService_MutationsInvalidateCache(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(repo, cache, testLogger())

	item := &domain.MenuItem{Name: "Tiramisu", Price: 12, CategoryID: 3}

	repo.On("CreateMenuItem", ctx, item).Return(nil).Once()
	cache.On("InvalidateMenu", ctx).Return(nil).Once()

	assert.NoError(t, svc.CreateItem(ctx, item))

	repo.On("DeleteMenuItem", ctx, 9).Return(int64(1), nil).Once()
	cache.On("InvalidateMenu", ctx).Return(nil).Once()

	assert.NoError(t, svc.DeleteItem(ctx, 9))
}

func TestMenuService_Validation(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo, nil, testLogger())

	tests := []struct {
		name string
		item *domain.MenuItem
	}{
		{name: "missing_name", item: &domain.MenuItem{Price: 10, CategoryID: 1}},
		{name: "negative_price", item: &domain.MenuItem{Name: "Soup", Price: -1, CategoryID: 1}},
		{name: "missing_category", item: &domain.MenuItem{Name: "Soup", Price: 10}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := svc.CreateItem(ctx, testCase.item)
			var verr *service.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
	repo.AssertNotCalled(t, "CreateMenuItem", mock.Anything, mock.Anything)
}

func TestMenuService_DeleteMissingItem(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo, nil, testLogger())

	repo.On("DeleteMenuItem", ctx, 404).Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.DeleteItem(ctx, 404), domain.ErrNotFound)
}
