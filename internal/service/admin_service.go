package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cafe-fausse/internal/domain"
)

// Employee roles, from least to most privileged.
const (
	RoleStaff   = "staff"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// EmployeeUpdate is a patch command for an employee; nil fields are left
// untouched. A non-nil Password is re-hashed before storage.
type EmployeeUpdate struct {
	Username *string
	Password *string
	Role     *string
}

// AdminService backs the dashboard and employee management endpoints.
type AdminService struct {
	employees EmployeeRepository
	stats     StatsRepository
	log       *slog.Logger
}

func NewAdminService(employees EmployeeRepository, stats StatsRepository, log *slog.Logger) *AdminService {
	return &AdminService{employees: employees, stats: stats, log: log}
}

func (s *AdminService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.stats.DashboardStats(ctx)
	if err != nil {
		return nil, s.storeErr("dashboard stats", err)
	}
	return stats, nil
}

func (s *AdminService) Employees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employees.ListEmployees(ctx)
	if err != nil {
		return nil, s.storeErr("list employees", err)
	}
	return employees, nil
}

func (s *AdminService) Employee(ctx context.Context, id int) (*domain.Employee, error) {
	employee, err := s.employees.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, s.storeErr("get employee", err)
	}
	return employee, nil
}

func (s *AdminService) CreateEmployee(ctx context.Context, username, password, role string) (*domain.Employee, error) {
	if username == "" {
		return nil, validationf("Username is required")
	}
	if len(password) < 8 {
		return nil, validationf("Password must be at least 8 characters")
	}
	if err := validateRole(role); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.employees.CreateEmployee(ctx, employee); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		return nil, s.storeErr("create employee", err)
	}
	return employee, nil
}

func (s *AdminService) UpdateEmployee(ctx context.Context, id int, upd EmployeeUpdate) (*domain.Employee, error) {
	employee, err := s.Employee(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Username != nil {
		if *upd.Username == "" {
			return nil, validationf("Username cannot be empty")
		}
		employee.Username = *upd.Username
	}
	if upd.Password != nil {
		if len(*upd.Password) < 8 {
			return nil, validationf("Password must be at least 8 characters")
		}
		hash, err := HashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = hash
	}
	if upd.Role != nil {
		if err := validateRole(*upd.Role); err != nil {
			return nil, err
		}
		employee.Role = *upd.Role
	}

	if err := s.employees.UpdateEmployee(ctx, employee); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		return nil, s.storeErr("update employee", err)
	}
	return employee, nil
}

func (s *AdminService) DeleteEmployee(ctx context.Context, id int) error {
	affected, err := s.employees.DeleteEmployee(ctx, id)
	if err != nil {
		return s.storeErr("delete employee", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func validateRole(role string) error {
	switch role {
	case RoleStaff, RoleManager, RoleAdmin:
		return nil
	default:
		return validationf("Invalid role: %s", role)
	}
}

func (s *AdminService) storeErr(op string, err error) error {
	s.log.Error("admin store failure", slog.String("op", op), slog.Any("error", err))
	return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, op)
}
