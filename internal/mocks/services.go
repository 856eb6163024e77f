package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cafe-fausse/internal/domain"
	"cafe-fausse/internal/service"
)

type ReservationServiceInterface struct {
	mock.Mock
}

func NewReservationServiceInterface(t testingT) *ReservationServiceInterface {
	m := &ReservationServiceInterface{}
	register(t, &m.Mock)
	return m
}

func (m *ReservationServiceInterface) CheckAvailability(ctx context.Context, date, timeOfDay string, guests int) (*domain.Availability, error) {
	ret := m.Called(ctx, date, timeOfDay, guests)
	var r0 *domain.Availability
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Availability)
	}
	return r0, ret.Error(1)
}

func (m *ReservationServiceInterface) Create(ctx context.Context, req service.CreateReservationRequest) (*domain.Reservation, error) {
	ret := m.Called(ctx, req)
	var r0 *domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (m *ReservationServiceInterface) Get(ctx context.Context, id int) (*domain.Reservation, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (m *ReservationServiceInterface) List(ctx context.Context) ([]domain.Reservation, error) {
	ret := m.Called(ctx)
	var r0 []domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (m *ReservationServiceInterface) Update(ctx context.Context, id int, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	ret := m.Called(ctx, id, upd)
	var r0 *domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (m *ReservationServiceInterface) Cancel(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ReservationServiceInterface) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	register(t, &m.Mock)
	return m
}

func (m *MenuServiceInterface) Categories(ctx context.Context) ([]domain.Category, error) {
	ret := m.Called(ctx)
	var r0 []domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}
	return r0, ret.Error(1)
}

func (m *MenuServiceInterface) Items(ctx context.Context, categoryID int) ([]domain.MenuItem, error) {
	ret := m.Called(ctx, categoryID)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (m *MenuServiceInterface) Item(ctx context.Context, id int) (*domain.MenuItem, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (m *MenuServiceInterface) CategoryWithItems(ctx context.Context, categoryID int) (*domain.Category, []domain.MenuItem, error) {
	ret := m.Called(ctx, categoryID)
	var r0 *domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Category)
	}
	var r1 []domain.MenuItem
	if ret.Get(1) != nil {
		r1 = ret.Get(1).([]domain.MenuItem)
	}
	return r0, r1, ret.Error(2)
}

func (m *MenuServiceInterface) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MenuServiceInterface) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MenuServiceInterface) DeleteItem(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MenuServiceInterface) CreateCategory(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MenuServiceInterface) UpdateCategory(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MenuServiceInterface) DeleteCategory(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type NewsletterServiceInterface struct {
	mock.Mock
}

func NewNewsletterServiceInterface(t testingT) *NewsletterServiceInterface {
	m := &NewsletterServiceInterface{}
	register(t, &m.Mock)
	return m
}

func (m *NewsletterServiceInterface) Subscribe(ctx context.Context, email string) (bool, error) {
	ret := m.Called(ctx, email)
	return ret.Bool(0), ret.Error(1)
}

func (m *NewsletterServiceInterface) Unsubscribe(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *NewsletterServiceInterface) Subscribers(ctx context.Context) ([]domain.Subscriber, error) {
	ret := m.Called(ctx)
	var r0 []domain.Subscriber
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Subscriber)
	}
	return r0, ret.Error(1)
}

type AuthServiceInterface struct {
	mock.Mock
}

func NewAuthServiceInterface(t testingT) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	register(t, &m.Mock)
	return m
}

func (m *AuthServiceInterface) Login(ctx context.Context, username, password string) (string, error) {
	ret := m.Called(ctx, username, password)
	return ret.String(0), ret.Error(1)
}

func (m *AuthServiceInterface) VerifyToken(token string) (*service.Claims, error) {
	ret := m.Called(token)
	var r0 *service.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}
	return r0, ret.Error(1)
}
