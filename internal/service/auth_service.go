package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"cafe-fausse/internal/domain"
)

// Claims is the verified identity extracted from a bearer token.
type Claims struct {
	EmployeeID int
	Username   string
	Role       string
}

// AuthService issues and verifies HS256 tokens for the admin panel.
type AuthService struct {
	repo     EmployeeRepository
	secret   []byte
	tokenTTL time.Duration
	log      *slog.Logger
}

func NewAuthService(repo EmployeeRepository, secret []byte, tokenTTL time.Duration, log *slog.Logger) *AuthService {
	return &AuthService{repo: repo, secret: secret, tokenTTL: tokenTTL, log: log}
}

// Login checks the credentials and returns a signed token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", validationf("Username and password are required")
	}

	employee, err := s.repo.FindEmployeeByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error("employee lookup failed", slog.String("username", username), slog.Any("error", err))
		return "", fmt.Errorf("%w: find employee", domain.ErrStoreUnavailable)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      employee.ID,
		"username": employee.Username,
		"role":     employee.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token issued by Login.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	sub, _ := claims["sub"].(float64)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	return &Claims{
		EmployeeID: int(sub),
		Username:   username,
		Role:       role,
	}, nil
}

// HashPassword is used wherever a plaintext password enters the system.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
