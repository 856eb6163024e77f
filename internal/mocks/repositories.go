// Package mocks holds testify mocks for the service-layer contracts. The
// constructors register a cleanup hook that asserts every expectation set
// during the test.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cafe-fausse/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

type ReservationStore struct {
	mock.Mock
}

func NewReservationStore(t testingT) *ReservationStore {
	m := &ReservationStore{}
	register(t, &m.Mock)
	return m
}

func (m *ReservationStore) FindTables(ctx context.Context, minCapacity int) ([]domain.Table, error) {
	ret := m.Called(ctx, minCapacity)
	var r0 []domain.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Table)
	}
	return r0, ret.Error(1)
}

func (m *ReservationStore) FindConfirmedReservations(ctx context.Context, date, timeOfDay string) ([]domain.Reservation, error) {
	ret := m.Called(ctx, date, timeOfDay)
	var r0 []domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (m *ReservationStore) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	ret := m.Called(ctx, res)
	return ret.Error(0)
}

func (m *ReservationStore) GetReservation(ctx context.Context, id int) (*domain.Reservation, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (m *ReservationStore) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	ret := m.Called(ctx)
	var r0 []domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (m *ReservationStore) UpdateReservation(ctx context.Context, id int, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	ret := m.Called(ctx, id, upd)
	var r0 *domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (m *ReservationStore) CancelReservation(ctx context.Context, id int) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *ReservationStore) DeleteReservation(ctx context.Context, id int) (int64, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	register(t, &m.Mock)
	return m
}

func (m *MenuRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ret := m.Called(ctx)
	var r0 []domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}
	return r0, ret.Error(1)
}

func (m *MenuRepository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Category)
	}
	return r0, ret.Error(1)
}

func (m *MenuRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MenuRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MenuRepository) DeleteCategory(ctx context.Context, id int) (int64, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *MenuRepository) ListMenuItems(ctx context.Context, categoryID int) ([]domain.MenuItem, error) {
	ret := m.Called(ctx, categoryID)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (m *MenuRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (m *MenuRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MenuRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MenuRepository) DeleteMenuItem(ctx context.Context, id int) (int64, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

type CustomerRepository struct {
	mock.Mock
}

func NewCustomerRepository(t testingT) *CustomerRepository {
	m := &CustomerRepository{}
	register(t, &m.Mock)
	return m
}

func (m *CustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	ret := m.Called(ctx)
	var r0 []domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Customer)
	}
	return r0, ret.Error(1)
}

func (m *CustomerRepository) GetCustomer(ctx context.Context, id int) (*domain.Customer, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Customer)
	}
	return r0, ret.Error(1)
}

func (m *CustomerRepository) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CustomerRepository) SetCustomerNewsletter(ctx context.Context, email string, signup bool) error {
	return m.Called(ctx, email, signup).Error(0)
}

func (m *CustomerRepository) DeleteCustomer(ctx context.Context, id int) (int64, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

type NewsletterRepository struct {
	mock.Mock
}

func NewNewsletterRepository(t testingT) *NewsletterRepository {
	m := &NewsletterRepository{}
	register(t, &m.Mock)
	return m
}

func (m *NewsletterRepository) FindSubscriberByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	ret := m.Called(ctx, email)
	var r0 *domain.Subscriber
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Subscriber)
	}
	return r0, ret.Error(1)
}

func (m *NewsletterRepository) CreateSubscriber(ctx context.Context, email string) (*domain.Subscriber, error) {
	ret := m.Called(ctx, email)
	var r0 *domain.Subscriber
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Subscriber)
	}
	return r0, ret.Error(1)
}

func (m *NewsletterRepository) SetSubscriberActive(ctx context.Context, email string, active bool) error {
	return m.Called(ctx, email, active).Error(0)
}

func (m *NewsletterRepository) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	ret := m.Called(ctx)
	var r0 []domain.Subscriber
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Subscriber)
	}
	return r0, ret.Error(1)
}

type EmployeeRepository struct {
	mock.Mock
}

func NewEmployeeRepository(t testingT) *EmployeeRepository {
	m := &EmployeeRepository{}
	register(t, &m.Mock)
	return m
}

func (m *EmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	ret := m.Called(ctx)
	var r0 []domain.Employee
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Employee)
	}
	return r0, ret.Error(1)
}

func (m *EmployeeRepository) GetEmployee(ctx context.Context, id int) (*domain.Employee, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Employee
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Employee)
	}
	return r0, ret.Error(1)
}

func (m *EmployeeRepository) FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	ret := m.Called(ctx, username)
	var r0 *domain.Employee
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Employee)
	}
	return r0, ret.Error(1)
}

func (m *EmployeeRepository) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	return m.Called(ctx, e).Error(0)
}

func (m *EmployeeRepository) UpdateEmployee(ctx context.Context, e *domain.Employee) error {
	return m.Called(ctx, e).Error(0)
}

func (m *EmployeeRepository) DeleteEmployee(ctx context.Context, id int) (int64, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

type StatsRepository struct {
	mock.Mock
}

func NewStatsRepository(t testingT) *StatsRepository {
	m := &StatsRepository{}
	register(t, &m.Mock)
	return m
}

func (m *StatsRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	ret := m.Called(ctx)
	var r0 *domain.DashboardStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.DashboardStats)
	}
	return r0, ret.Error(1)
}

type MenuCache struct {
	mock.Mock
}

func NewMenuCache(t testingT) *MenuCache {
	m := &MenuCache{}
	register(t, &m.Mock)
	return m
}

func (m *MenuCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ret := m.Called(ctx, key)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

func (m *MenuCache) Set(ctx context.Context, key string, payload []byte) error {
	return m.Called(ctx, key, payload).Error(0)
}

func (m *MenuCache) InvalidateMenu(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	register(t, &m.Mock)
	return m
}

func (m *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	return m.Called(ctx, event).Error(0)
}
