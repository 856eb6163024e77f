package service

import (
	"context"

	"cafe-fausse/internal/domain"
)

// ReservationStore is the persistence contract for the reservation engine.
// CreateReservation and UpdateReservation must re-check table conflicts and
// write inside a single transaction; the service never sees a partial claim.
type ReservationStore interface {
	FindTables(ctx context.Context, minCapacity int) ([]domain.Table, error)
	FindConfirmedReservations(ctx context.Context, date, timeOfDay string) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, res *domain.Reservation) error
	GetReservation(ctx context.Context, id int) (*domain.Reservation, error)
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	UpdateReservation(ctx context.Context, id int, upd domain.ReservationUpdate) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, id int) error
	DeleteReservation(ctx context.Context, id int) (int64, error)
}

type MenuRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id int) (int64, error)
	ListMenuItems(ctx context.Context, categoryID int) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id int) (int64, error)
}

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id int) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	SetCustomerNewsletter(ctx context.Context, email string, signup bool) error
	DeleteCustomer(ctx context.Context, id int) (int64, error)
}

type NewsletterRepository interface {
	FindSubscriberByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	CreateSubscriber(ctx context.Context, email string) (*domain.Subscriber, error)
	SetSubscriberActive(ctx context.Context, email string, active bool) error
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
}

type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, id int) (*domain.Employee, error)
	FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, e *domain.Employee) error
	UpdateEmployee(ctx context.Context, e *domain.Employee) error
	DeleteEmployee(ctx context.Context, id int) (int64, error)
}

type StatsRepository interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type MenuCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
	InvalidateMenu(ctx context.Context) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type ReservationServiceInterface interface {
	CheckAvailability(ctx context.Context, date, timeOfDay string, guests int) (*domain.Availability, error)
	Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error)
	Get(ctx context.Context, id int) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	Update(ctx context.Context, id int, upd domain.ReservationUpdate) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type MenuServiceInterface interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Items(ctx context.Context, categoryID int) ([]domain.MenuItem, error)
	Item(ctx context.Context, id int) (*domain.MenuItem, error)
	CategoryWithItems(ctx context.Context, categoryID int) (*domain.Category, []domain.MenuItem, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, id int) error
	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id int) error
}

type NewsletterServiceInterface interface {
	Subscribe(ctx context.Context, email string) (reactivated bool, err error)
	Unsubscribe(ctx context.Context, email string) error
	Subscribers(ctx context.Context) ([]domain.Subscriber, error)
}

type CustomerServiceInterface interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int) (*domain.Customer, error)
	Update(ctx context.Context, id int, upd CustomerUpdate) (*domain.Customer, error)
	Delete(ctx context.Context, id int) error
}

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (token string, err error)
	VerifyToken(token string) (*Claims, error)
}

type AdminServiceInterface interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	Employees(ctx context.Context) ([]domain.Employee, error)
	Employee(ctx context.Context, id int) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, username, password, role string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, id int, upd EmployeeUpdate) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int) error
}

var (
	_ ReservationServiceInterface = (*ReservationService)(nil)
	_ MenuServiceInterface        = (*MenuService)(nil)
	_ NewsletterServiceInterface  = (*NewsletterService)(nil)
	_ CustomerServiceInterface    = (*CustomerService)(nil)
	_ AuthServiceInterface        = (*AuthService)(nil)
	_ AdminServiceInterface       = (*AdminService)(nil)
)
