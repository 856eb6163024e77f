package tests

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cafe-fausse/internal/domain"
	"cafe-fausse/internal/mocks"
	"cafe-fausse/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestReservationService_CheckAvailability(t *testing.T) {
	store := mocks.NewReservationStore(t)
	svc := service.NewReservationService(store, nil, nil, testLogger())
	ctx := context.Background()

	date := futureDate(7)
	tables := []domain.Table{
		{Number: 1, Capacity: 2},
		{Number: 3, Capacity: 4},
		{Number: 5, Capacity: 6},
	}

	tests := []struct {
		name           string
		date           string
		time           string
		guests         int
		prepareMocks   func()
		wantAvailable  bool
		wantRemaining  int
		wantValidation string
	}{
		{
			name:   "tables_free",
			date:   date,
			time:   "19:00",
			guests: 2,
			prepareMocks: func() {
				store.On("FindTables", ctx, 2).Return(tables, nil).Once()
				store.On("FindConfirmedReservations", ctx, date, "19:00").
					Return([]domain.Reservation{}, nil).Once()
			},
			wantAvailable: true,
			wantRemaining: 3,
		},
		{
			name:   "slot_fully_booked",
			date:   date,
			time:   "19:30",
			guests: 2,
			prepareMocks: func() {
				store.On("FindTables", ctx, 2).Return(tables, nil).Once()
				store.On("FindConfirmedReservations", ctx, date, "19:30").
					Return([]domain.Reservation{
						{TableNumber: 1, Status: domain.StatusConfirmed},
						{TableNumber: 3, Status: domain.StatusConfirmed},
						{TableNumber: 5, Status: domain.StatusConfirmed},
					}, nil).Once()
			},
			wantAvailable: false,
			wantRemaining: 0,
		},
		{
			name:   "canceled_reservations_do_not_block",
			date:   date,
			time:   "20:00",
			guests: 2,
			prepareMocks: func() {
				store.On("FindTables", ctx, 2).Return(tables, nil).Once()
				store.On("FindConfirmedReservations", ctx, date, "20:00").
					Return([]domain.Reservation{
						{TableNumber: 1, Status: domain.StatusCanceled},
					}, nil).Once()
			},
			wantAvailable: true,
			wantRemaining: 3,
		},
		{
			name:           "missing_fields",
			date:           "",
			time:           "19:00",
			guests:         2,
			prepareMocks:   func() {},
			wantValidation: "Please select a date, time, and number of guests",
		},
		{
			name:           "past_date",
			date:           "2020-01-01",
			time:           "19:00",
			guests:         2,
			prepareMocks:   func() {},
			wantValidation: "Cannot make reservations in the past",
		},
		{
			name:           "time_outside_service_hours",
			date:           date,
			time:           "12:00",
			guests:         2,
			prepareMocks:   func() {},
			wantValidation: "Reservations are available from 17:00 to 21:30 in 30-minute steps",
		},
		{
			name:           "time_off_grid",
			date:           date,
			time:           "19:15",
			guests:         2,
			prepareMocks:   func() {},
			wantValidation: "Reservations are available from 17:00 to 21:30 in 30-minute steps",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			availability, err := svc.CheckAvailability(ctx, testCase.date, testCase.time, testCase.guests)

			if testCase.wantValidation != "" {
				var verr *service.ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, testCase.wantValidation, verr.Message)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testCase.wantAvailable, availability.Available)
			assert.Equal(t, testCase.wantRemaining, availability.TablesRemaining)
		})
	}
}

func TestReservationService_Create(t *testing.T) {
	ctx := context.Background()
	date := futureDate(3)

	validRequest := func() service.CreateReservationRequest {
		return service.CreateReservationRequest{
			Name:   "Ada Lovelace",
			Email:  "ada@example.com",
			Phone:  "555-0100",
			Date:   date,
			Time:   "19:00",
			Guests: 2,
		}
	}

	t.Run("success_publishes_event", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewReservationService(store, nil, publisher, testLogger())

		store.On("CreateReservation", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				res := args.Get(1).(*domain.Reservation)
				res.ID = 7
				res.TableNumber = 1
				res.Status = domain.StatusConfirmed
			}).Return(nil).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventReservationCreated && e.ReservationID == 7
		})).Return(nil).Once()

		res, err := svc.Create(ctx, validRequest())
		assert.NoError(t, err)
		assert.Equal(t, 7, res.ID)
		assert.Equal(t, 1, res.TableNumber)
	})

	t.Run("newsletter_opt_in_subscribes", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		newsletter := mocks.NewNewsletterServiceInterface(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewReservationService(store, newsletter, publisher, testLogger())

		store.On("CreateReservation", ctx, mock.Anything).Return(nil).Once()
		newsletter.On("Subscribe", ctx, "ada@example.com").Return(false, nil).Once()
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

		req := validRequest()
		req.NewsletterOptIn = true
		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("newsletter_failure_does_not_fail_booking", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		newsletter := mocks.NewNewsletterServiceInterface(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewReservationService(store, newsletter, publisher, testLogger())

		store.On("CreateReservation", ctx, mock.Anything).Return(nil).Once()
		newsletter.On("Subscribe", ctx, "ada@example.com").
			Return(false, domain.ErrStoreUnavailable).Once()
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

		req := validRequest()
		req.NewsletterOptIn = true
		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("fully_booked_passes_sentinel_through", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewReservationService(store, nil, publisher, testLogger())

		store.On("CreateReservation", ctx, mock.Anything).
			Return(domain.ErrNoTableAvailable).Once()

		_, err := svc.Create(ctx, validRequest())
		assert.ErrorIs(t, err, domain.ErrNoTableAvailable)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("validation_rejects_before_store", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		svc := service.NewReservationService(store, nil, nil, testLogger())

		tests := []struct {
			name    string
			mutate  func(*service.CreateReservationRequest)
			message string
		}{
			{
				name:    "missing_name",
				mutate:  func(r *service.CreateReservationRequest) { r.Name = "" },
				message: "Missing required field: name",
			},
			{
				name:    "missing_email",
				mutate:  func(r *service.CreateReservationRequest) { r.Email = "" },
				message: "Missing required field: email",
			},
			{
				name:    "bad_email",
				mutate:  func(r *service.CreateReservationRequest) { r.Email = "not-an-email" },
				message: "Invalid email format",
			},
			{
				name:    "zero_guests",
				mutate:  func(r *service.CreateReservationRequest) { r.Guests = 0 },
				message: "Please select a date, time, and number of guests",
			},
		}

		for _, testCase := range tests {
			t.Run(testCase.name, func(t *testing.T) {
				req := validRequest()
				testCase.mutate(&req)

				_, err := svc.Create(ctx, req)
				var verr *service.ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, testCase.message, verr.Message)
			})
		}
		store.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything)
	})
}

func TestReservationService_Update(t *testing.T) {
	ctx := context.Background()
	newTable := 5

	t.Run("success_publishes_event", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewReservationService(store, nil, publisher, testLogger())

		updated := &domain.Reservation{ID: 3, TableNumber: newTable, Status: domain.StatusConfirmed}
		store.On("UpdateReservation", ctx, 3, mock.Anything).Return(updated, nil).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventReservationUpdated && e.ReservationID == 3
		})).Return(nil).Once()

		res, err := svc.Update(ctx, 3, domain.ReservationUpdate{TableNumber: &newTable})
		assert.NoError(t, err)
		assert.Equal(t, newTable, res.TableNumber)
	})

	t.Run("table_conflict_passes_through", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		svc := service.NewReservationService(store, nil, nil, testLogger())

		store.On("UpdateReservation", ctx, 3, mock.Anything).
			Return(nil, domain.ErrTableConflict).Once()

		_, err := svc.Update(ctx, 3, domain.ReservationUpdate{TableNumber: &newTable})
		assert.ErrorIs(t, err, domain.ErrTableConflict)
	})

	t.Run("empty_update_rejected", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		svc := service.NewReservationService(store, nil, nil, testLogger())

		_, err := svc.Update(ctx, 3, domain.ReservationUpdate{})
		var verr *service.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "No fields to update", verr.Message)
	})

	t.Run("invalid_status_rejected", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		svc := service.NewReservationService(store, nil, nil, testLogger())

		bad := "seated"
		_, err := svc.Update(ctx, 3, domain.ReservationUpdate{Status: &bad})
		var verr *service.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestReservationService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success_publishes_event", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewReservationService(store, nil, publisher, testLogger())

		store.On("CancelReservation", ctx, 9).Return(nil).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventReservationCanceled && e.ReservationID == 9
		})).Return(nil).Once()

		assert.NoError(t, svc.Cancel(ctx, 9))
	})

	t.Run("not_found", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		svc := service.NewReservationService(store, nil, nil, testLogger())

		store.On("CancelReservation", ctx, 404).Return(domain.ErrNotFound).Once()
		assert.ErrorIs(t, svc.Cancel(ctx, 404), domain.ErrNotFound)
	})

	t.Run("completed_reservation_cannot_be_canceled", func(t *testing.T) {
		store := mocks.NewReservationStore(t)
		svc := service.NewReservationService(store, nil, nil, testLogger())

		store.On("CancelReservation", ctx, 11).Return(domain.ErrInvalidTransition).Once()
		assert.ErrorIs(t, svc.Cancel(ctx, 11), domain.ErrInvalidTransition)
	})
}

func TestReservationService_Delete(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewReservationStore(t)
	svc := service.NewReservationService(store, nil, nil, testLogger())

	store.On("DeleteReservation", ctx, 1).Return(int64(1), nil).Once()
	assert.NoError(t, svc.Delete(ctx, 1))

	store.On("DeleteReservation", ctx, 2).Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.Delete(ctx, 2), domain.ErrNotFound)
}
