package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"cafe-fausse/internal/domain"
)

// NewsletterService manages the mailing list. Subscriptions are soft:
// unsubscribing deactivates the row instead of deleting it, so a returning
// subscriber keeps their original signup date.
type NewsletterService struct {
	repo      NewsletterRepository
	customers CustomerRepository
	publisher EventPublisher
	log       *slog.Logger
}

func NewNewsletterService(repo NewsletterRepository, customers CustomerRepository, publisher EventPublisher, log *slog.Logger) *NewsletterService {
	return &NewsletterService{
		repo:      repo,
		customers: customers,
		publisher: publisher,
		log:       log,
	}
}

// Subscribe adds the email to the list. Reactivating a lapsed subscription is
// reported separately so the handler can word the response accordingly.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (bool, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return false, err
	}

	existing, err := s.repo.FindSubscriberByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return false, s.storeErr("find subscriber", err)
	}

	reactivated := false
	switch {
	case existing != nil && existing.IsActive:
		return false, domain.ErrAlreadySubscribed
	case existing != nil:
		if err := s.repo.SetSubscriberActive(ctx, email, true); err != nil {
			return false, s.storeErr("reactivate subscriber", err)
		}
		reactivated = true
	default:
		if _, err := s.repo.CreateSubscriber(ctx, email); err != nil {
			if errors.Is(err, domain.ErrAlreadySubscribed) {
				return false, err
			}
			return false, s.storeErr("create subscriber", err)
		}
	}

	// Keep the customer record in sync when one exists; failures here do
	// not undo the subscription.
	if err := s.customers.SetCustomerNewsletter(ctx, email, true); err != nil {
		s.log.Warn("customer newsletter sync failed", slog.String("email", email), slog.Any("error", err))
	}
	s.publish(ctx, domain.Event{
		Type:      domain.EventNewsletterSubscribe,
		Email:     email,
		Timestamp: time.Now(),
	})

	return reactivated, nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	existing, err := s.repo.FindSubscriberByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotSubscribed
	}
	if err != nil {
		return s.storeErr("find subscriber", err)
	}
	if !existing.IsActive {
		return domain.ErrNotSubscribed
	}

	if err := s.repo.SetSubscriberActive(ctx, email, false); err != nil {
		return s.storeErr("deactivate subscriber", err)
	}
	if err := s.customers.SetCustomerNewsletter(ctx, email, false); err != nil {
		s.log.Warn("customer newsletter sync failed", slog.String("email", email), slog.Any("error", err))
	}
	return nil
}

func (s *NewsletterService) Subscribers(ctx context.Context) ([]domain.Subscriber, error) {
	subscribers, err := s.repo.ListSubscribers(ctx)
	if err != nil {
		return nil, s.storeErr("list subscribers", err)
	}
	return subscribers, nil
}

func (s *NewsletterService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("event publish failed", slog.String("type", event.Type), slog.Any("error", err))
	}
}

func (s *NewsletterService) storeErr(op string, err error) error {
	s.log.Error("newsletter store failure", slog.String("op", op), slog.Any("error", err))
	return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, op)
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", validationf("Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", validationf("Invalid email format")
	}
	return email, nil
}
