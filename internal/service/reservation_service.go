package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"cafe-fausse/internal/domain"
)

// Service hours: bookings run from 17:00 to 21:30 inclusive, on the
// half hour.
const (
	openingMinute = 17 * 60
	closingMinute = 21*60 + 30
	slotMinutes   = 30
)

// ValidationError carries a message safe to show to the end user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type CreateReservationRequest struct {
	Name            string
	Email           string
	Phone           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
	NewsletterOptIn bool
}

type ReservationService struct {
	store      ReservationStore
	newsletter NewsletterServiceInterface
	publisher  EventPublisher
	log        *slog.Logger
}

func NewReservationService(store ReservationStore, newsletter NewsletterServiceInterface, publisher EventPublisher, log *slog.Logger) *ReservationService {
	return &ReservationService{
		store:      store,
		newsletter: newsletter,
		publisher:  publisher,
		log:        log,
	}
}

// CheckAvailability answers whether any table can seat the party at the
// slot. It never mutates state and re-reads the store on every call; the
// result is advisory and can go stale before the booking commits.
func (s *ReservationService) CheckAvailability(ctx context.Context, date, timeOfDay string, guests int) (*domain.Availability, error) {
	if err := validateSlot(date, timeOfDay, guests); err != nil {
		return nil, err
	}

	tables, err := s.store.FindTables(ctx, guests)
	if err != nil {
		return nil, s.storeErr("find tables", err)
	}

	reservations, err := s.store.FindConfirmedReservations(ctx, date, timeOfDay)
	if err != nil {
		return nil, s.storeErr("find reservations", err)
	}

	remaining := domain.CountAvailableTables(tables, guests, domain.ClaimedTables(reservations))
	return &domain.Availability{
		Available:       remaining > 0,
		TablesRemaining: remaining,
	}, nil
}

func (s *ReservationService) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	if err := validateSlot(req.Date, req.Time, req.Guests); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, validationf("Missing required field: name")
	}
	if req.Email == "" {
		return nil, validationf("Missing required field: email")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, validationf("Invalid email format")
	}

	res := &domain.Reservation{
		CustomerName:    req.Name,
		CustomerEmail:   req.Email,
		CustomerPhone:   req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.store.CreateReservation(ctx, res); err != nil {
		if errors.Is(err, domain.ErrNoTableAvailable) {
			return nil, err
		}
		return nil, s.storeErr("create reservation", err)
	}

	// Side effects run only after the commit and never undo it.
	if req.NewsletterOptIn && s.newsletter != nil {
		if _, err := s.newsletter.Subscribe(ctx, req.Email); err != nil &&
			!errors.Is(err, domain.ErrAlreadySubscribed) {
			s.log.Warn("newsletter opt-in failed", slog.String("email", req.Email), slog.Any("error", err))
		}
	}
	s.publish(ctx, domain.Event{
		Type:          domain.EventReservationCreated,
		ReservationID: res.ID,
		TableNumber:   res.TableNumber,
		Date:          res.Date,
		Time:          res.Time,
		Timestamp:     time.Now(),
	})

	return res, nil
}

func (s *ReservationService) Get(ctx context.Context, id int) (*domain.Reservation, error) {
	res, err := s.store.GetReservation(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, s.storeErr("get reservation", err)
	}
	return res, nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.store.ListReservations(ctx)
	if err != nil {
		return nil, s.storeErr("list reservations", err)
	}
	return reservations, nil
}

func (s *ReservationService) Update(ctx context.Context, id int, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	if upd.Empty() {
		return nil, validationf("No fields to update")
	}
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}

	res, err := s.store.UpdateReservation(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) ||
			errors.Is(err, domain.ErrTableConflict) ||
			errors.Is(err, domain.ErrInvalidTransition) {
			return nil, err
		}
		return nil, s.storeErr("update reservation", err)
	}

	s.publish(ctx, domain.Event{
		Type:          domain.EventReservationUpdated,
		ReservationID: res.ID,
		TableNumber:   res.TableNumber,
		Date:          res.Date,
		Time:          res.Time,
		Timestamp:     time.Now(),
	})
	return res, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id int) error {
	err := s.store.CancelReservation(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidTransition) {
			return err
		}
		return s.storeErr("cancel reservation", err)
	}

	s.publish(ctx, domain.Event{
		Type:          domain.EventReservationCanceled,
		ReservationID: id,
		Timestamp:     time.Now(),
	})
	return nil
}

func (s *ReservationService) Delete(ctx context.Context, id int) error {
	affected, err := s.store.DeleteReservation(ctx, id)
	if err != nil {
		return s.storeErr("delete reservation", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *ReservationService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("event publish failed", slog.String("type", event.Type), slog.Any("error", err))
	}
}

// storeErr logs the infrastructure detail and hands back the generic
// store-unavailable sentinel; internals never reach the end user.
func (s *ReservationService) storeErr(op string, err error) error {
	s.log.Error("reservation store failure", slog.String("op", op), slog.Any("error", err))
	return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, op)
}

func validateSlot(date, timeOfDay string, guests int) error {
	if date == "" || timeOfDay == "" || guests == 0 {
		return validationf("Please select a date, time, and number of guests")
	}
	if guests < 0 {
		return validationf("Invalid number of guests")
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return validationf("Invalid date format: %s", date)
	}
	if err := validateTimeOfDay(timeOfDay); err != nil {
		return err
	}

	today := time.Now().Truncate(24 * time.Hour)
	if day.Before(today) {
		return validationf("Cannot make reservations in the past")
	}
	return nil
}

func validateTimeOfDay(timeOfDay string) error {
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return validationf("Invalid time format: %s", timeOfDay)
	}
	minute := t.Hour()*60 + t.Minute()
	if minute < openingMinute || minute > closingMinute || minute%slotMinutes != 0 {
		return validationf("Reservations are available from 17:00 to 21:30 in 30-minute steps")
	}
	return nil
}

func validateUpdate(upd domain.ReservationUpdate) error {
	if upd.Date != nil {
		if _, err := time.Parse("2006-01-02", *upd.Date); err != nil {
			return validationf("Invalid date format: %s", *upd.Date)
		}
	}
	if upd.Time != nil {
		if err := validateTimeOfDay(*upd.Time); err != nil {
			return err
		}
	}
	if upd.Guests != nil && *upd.Guests <= 0 {
		return validationf("Invalid number of guests")
	}
	if upd.TableNumber != nil && *upd.TableNumber <= 0 {
		return validationf("Invalid table number")
	}
	if upd.Status != nil {
		switch *upd.Status {
		case domain.StatusConfirmed, domain.StatusCanceled, domain.StatusCompleted:
		default:
			return validationf("Invalid status: %s", *upd.Status)
		}
	}
	if upd.CustomerEmail != nil {
		if _, err := mail.ParseAddress(*upd.CustomerEmail); err != nil {
			return validationf("Invalid email format")
		}
	}
	return nil
}
