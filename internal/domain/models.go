package domain

import "time"

// Reservation status values. Confirmed reservations are the only ones that
// occupy a table for conflict checking; canceled and completed are terminal.
const (
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
	StatusCompleted = "completed"
)

// Table is one physical seating unit. Inventory is static configuration,
// seeded at setup; the reservation flow never creates or destroys tables.
type Table struct {
	Number   int `json:"number"`
	Capacity int `json:"capacity"`
}

type Reservation struct {
	ID              int       `json:"id"`
	CustomerID      int       `json:"customer_id"`
	CustomerName    string    `json:"customer_name,omitempty"`
	CustomerEmail   string    `json:"customer_email,omitempty"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	TimeSlot        string    `json:"time_slot"`
	Guests          int       `json:"guests"`
	TableNumber     int       `json:"table_number"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Slot returns the combined date/time identifier used in API payloads.
func Slot(date, timeOfDay string) string {
	return date + "T" + timeOfDay + ":00"
}

// ReservationUpdate is an explicit patch command for a reservation. Nil
// fields are left untouched. Slot-affecting fields (table, date, time) force
// a conflict re-check inside the store transaction.
type ReservationUpdate struct {
	TableNumber     *int
	Date            *string
	Time            *string
	Guests          *int
	SpecialRequests *string
	Status          *string
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
}

func (u ReservationUpdate) Empty() bool {
	return u.TableNumber == nil && u.Date == nil && u.Time == nil &&
		u.Guests == nil && u.SpecialRequests == nil && u.Status == nil &&
		u.CustomerName == nil && u.CustomerEmail == nil && u.CustomerPhone == nil
}

// TouchesSlot reports whether the command can change which table/slot pair
// the reservation claims.
func (u ReservationUpdate) TouchesSlot() bool {
	return u.TableNumber != nil || u.Date != nil || u.Time != nil || u.Status != nil
}

type Availability struct {
	Available       bool `json:"available"`
	TablesRemaining int  `json:"tables_remaining"`
}

type Customer struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	NewsletterSignup bool      `json:"newsletter_signup"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

type MenuItem struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url,omitempty"`
	IsVegetarian bool    `json:"is_vegetarian"`
	IsVegan      bool    `json:"is_vegan"`
	IsGlutenFree bool    `json:"is_gluten_free"`
	IsFeatured   bool    `json:"is_featured"`
	Available    bool    `json:"available"`
	DisplayOrder int     `json:"display_order"`
	CategoryID   int     `json:"category_id"`
}

type Subscriber struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Employee struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// DashboardStats backs the admin dashboard page.
type DashboardStats struct {
	MenuItems             int           `json:"menu_items"`
	Categories            int           `json:"categories"`
	Customers             int           `json:"customers"`
	NewsletterSubscribers int           `json:"newsletter_subscribers"`
	TodayReservations     int           `json:"today_reservations"`
	UpcomingReservations  []Reservation `json:"-"`
}

// Event is the message published to Kafka after a successful commit.
type Event struct {
	Type          string    `json:"type"`
	ReservationID int       `json:"reservation_id,omitempty"`
	TableNumber   int       `json:"table_number,omitempty"`
	Date          string    `json:"date,omitempty"`
	Time          string    `json:"time,omitempty"`
	Email         string    `json:"email,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

const (
	EventReservationCreated  = "reservation_created"
	EventReservationUpdated  = "reservation_updated"
	EventReservationCanceled = "reservation_canceled"
	EventNewsletterSubscribe = "newsletter_subscribed"
)
