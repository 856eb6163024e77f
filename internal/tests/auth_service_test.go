package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-fausse/internal/domain"
	"cafe-fausse/internal/mocks"
	"cafe-fausse/internal/service"
)

func TestAuthService_LoginAndVerify(t *testing.T) {
	ctx := context.Background()
	secret := []byte("test-secret")

	hash, err := service.HashPassword("correct horse battery")
	require.NoError(t, err)

	employee := &domain.Employee{
		ID:           1,
		Username:     "manager",
		PasswordHash: hash,
		Role:         "admin",
	}

	t.Run("valid_credentials_round_trip", func(t *testing.T) {
		repo := mocks.NewEmployeeRepository(t)
		svc := service.NewAuthService(repo, secret, time.Hour, testLogger())

		repo.On("FindEmployeeByUsername", ctx, "manager").Return(employee, nil).Once()

		token, err := svc.Login(ctx, "manager", "correct horse battery")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.EmployeeID)
		assert.Equal(t, "manager", claims.Username)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("wrong_password", func(t *testing.T) {
		repo := mocks.NewEmployeeRepository(t)
		svc := service.NewAuthService(repo, secret, time.Hour, testLogger())

		repo.On("FindEmployeeByUsername", ctx, "manager").Return(employee, nil).Once()

		_, err := svc.Login(ctx, "manager", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown_user_looks_like_wrong_password", func(t *testing.T) {
		repo := mocks.NewEmployeeRepository(t)
		svc := service.NewAuthService(repo, secret, time.Hour, testLogger())

		repo.On("FindEmployeeByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound).Once()

		_, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("expired_token_rejected", func(t *testing.T) {
		repo := mocks.NewEmployeeRepository(t)
		svc := service.NewAuthService(repo, secret, -time.Minute, testLogger())

		repo.On("FindEmployeeByUsername", ctx, "manager").Return(employee, nil).Once()

		token, err := svc.Login(ctx, "manager", "correct horse battery")
		require.NoError(t, err)

		_, err = svc.VerifyToken(token)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("token_signed_with_other_secret_rejected", func(t *testing.T) {
		repo := mocks.NewEmployeeRepository(t)
		other := service.NewAuthService(repo, []byte("other-secret"), time.Hour, testLogger())

		repo.On("FindEmployeeByUsername", ctx, "manager").Return(employee, nil).Once()

		token, err := other.Login(ctx, "manager", "correct horse battery")
		require.NoError(t, err)

		svc := service.NewAuthService(repo, secret, time.Hour, testLogger())
		_, err = svc.VerifyToken(token)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("empty_credentials", func(t *testing.T) {
		repo := mocks.NewEmployeeRepository(t)
		svc := service.NewAuthService(repo, secret, time.Hour, testLogger())

		_, err := svc.Login(ctx, "", "")
		var verr *service.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
