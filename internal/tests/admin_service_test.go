package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cafe-fausse/internal/domain"
	"cafe-fausse/internal/mocks"
	"cafe-fausse/internal/service"
)

func TestAdminService_CreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes_password", func(t *testing.T) {
		employees := mocks.NewEmployeeRepository(t)
		svc := service.NewAdminService(employees, nil, testLogger())

		employees.On("CreateEmployee", ctx, mock.MatchedBy(func(e *domain.Employee) bool {
			return e.Username == "host" && e.Role == "staff" &&
				bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte("longenough")) == nil
		})).Return(nil).Once()

		employee, err := svc.CreateEmployee(ctx, "host", "longenough", "staff")
		require.NoError(t, err)
		assert.NotEqual(t, "longenough", employee.PasswordHash)
	})

	t.Run("rejects_short_password", func(t *testing.T) {
		employees := mocks.NewEmployeeRepository(t)
		svc := service.NewAdminService(employees, nil, testLogger())

		_, err := svc.CreateEmployee(ctx, "host", "short", "staff")
		var verr *service.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		employees := mocks.NewEmployeeRepository(t)
		svc := service.NewAdminService(employees, nil, testLogger())

		_, err := svc.CreateEmployee(ctx, "host", "longenough", "owner")
		var verr *service.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("duplicate_username", func(t *testing.T) {
		employees := mocks.NewEmployeeRepository(t)
		svc := service.NewAdminService(employees, nil, testLogger())

		employees.On("CreateEmployee", ctx, mock.Anything).
			Return(domain.ErrUsernameTaken).Once()

		_, err := svc.CreateEmployee(ctx, "host", "longenough", "staff")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})
}

func TestAdminService_UpdateEmployee(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.Employee {
		return &domain.Employee{ID: 2, Username: "host", PasswordHash: "old-hash", Role: "staff"}
	}

	t.Run("role_change", func(t *testing.T) {
		employees := mocks.NewEmployeeRepository(t)
		svc := service.NewAdminService(employees, nil, testLogger())

		employees.On("GetEmployee", ctx, 2).Return(existing(), nil).Once()
		employees.On("UpdateEmployee", ctx, mock.MatchedBy(func(e *domain.Employee) bool {
			return e.Role == "manager" && e.PasswordHash == "old-hash"
		})).Return(nil).Once()

		role := "manager"
		employee, err := svc.UpdateEmployee(ctx, 2, service.EmployeeUpdate{Role: &role})
		require.NoError(t, err)
		assert.Equal(t, "manager", employee.Role)
	})

	t.Run("password_change_rehashes", func(t *testing.T) {
		employees := mocks.NewEmployeeRepository(t)
		svc := service.NewAdminService(employees, nil, testLogger())

		employees.On("GetEmployee", ctx, 2).Return(existing(), nil).Once()
		employees.On("UpdateEmployee", ctx, mock.MatchedBy(func(e *domain.Employee) bool {
			return bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte("fresh-secret")) == nil
		})).Return(nil).Once()

		password := "fresh-secret"
		_, err := svc.UpdateEmployee(ctx, 2, service.EmployeeUpdate{Password: &password})
		assert.NoError(t, err)
	})

	t.Run("missing_employee", func(t *testing.T) {
		employees := mocks.NewEmployeeRepository(t)
		svc := service.NewAdminService(employees, nil, testLogger())

		employees.On("GetEmployee", ctx, 404).Return(nil, domain.ErrNotFound).Once()

		role := "manager"
		_, err := svc.UpdateEmployee(ctx, 404, service.EmployeeUpdate{Role: &role})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAdminService_Dashboard(t *testing.T) {
	ctx := context.Background()
	stats := mocks.NewStatsRepository(t)
	svc := service.NewAdminService(nil, stats, testLogger())

	stats.On("DashboardStats", ctx).Return(&domain.DashboardStats{
		MenuItems:         24,
		Categories:        4,
		Customers:         120,
		TodayReservations: 9,
	}, nil).Once()

	got, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 24, got.MenuItems)
	assert.Equal(t, 9, got.TodayReservations)
}
