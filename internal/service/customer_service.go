package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"

	"cafe-fausse/internal/domain"
)

// CustomerUpdate is a patch command for a customer record; nil fields are
// left untouched.
type CustomerUpdate struct {
	Name             *string
	Email            *string
	Phone            *string
	NewsletterSignup *bool
}

// CustomerService exposes the admin view over the customers that reservations
// and newsletter signups accumulate. Customers are never created directly;
// they come into being through a booking.
type CustomerService struct {
	repo CustomerRepository
	log  *slog.Logger
}

func NewCustomerService(repo CustomerRepository, log *slog.Logger) *CustomerService {
	return &CustomerService{repo: repo, log: log}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, s.storeErr("list customers", err)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id int) (*domain.Customer, error) {
	customer, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, s.storeErr("get customer", err)
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id int, upd CustomerUpdate) (*domain.Customer, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, validationf("Name cannot be empty")
		}
		customer.Name = *upd.Name
	}
	if upd.Email != nil {
		if _, err := mail.ParseAddress(*upd.Email); err != nil {
			return nil, validationf("Invalid email format")
		}
		customer.Email = *upd.Email
	}
	if upd.Phone != nil {
		customer.Phone = *upd.Phone
	}
	if upd.NewsletterSignup != nil {
		customer.NewsletterSignup = *upd.NewsletterSignup
	}

	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, s.storeErr("update customer", err)
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteCustomer(ctx, id)
	if err != nil {
		return s.storeErr("delete customer", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *CustomerService) storeErr(op string, err error) error {
	s.log.Error("customer store failure", slog.String("op", op), slog.Any("error", err))
	return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, op)
}
