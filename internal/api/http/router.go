package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"cafe-fausse/internal/service"
)

// Handler wires every service behind the public API. Admin routes sit behind
// the JWT middleware; everything else is open to the website frontend.
type Handler struct {
	Reservations service.ReservationServiceInterface
	Menu         service.MenuServiceInterface
	Newsletter   service.NewsletterServiceInterface
	Customers    service.CustomerServiceInterface
	Auth         service.AuthServiceInterface
	Admin        service.AdminServiceInterface
	QR           service.QRGenerator
	Log          *slog.Logger
}

func NewHandler(
	reservations service.ReservationServiceInterface,
	menu service.MenuServiceInterface,
	newsletter service.NewsletterServiceInterface,
	customers service.CustomerServiceInterface,
	auth service.AuthServiceInterface,
	admin service.AdminServiceInterface,
	qr service.QRGenerator,
	log *slog.Logger,
) *Handler {
	return &Handler{
		Reservations: reservations,
		Menu:         menu,
		Newsletter:   newsletter,
		Customers:    customers,
		Auth:         auth,
		Admin:        admin,
		QR:           qr,
		Log:          log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Reservations
	r.HandleFunc("/api/reservations/check-availability", h.checkAvailability).Methods("POST")
	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations", h.requireAuth(h.listReservations)).Methods("GET")
	r.HandleFunc("/api/reservations/cancel/{id}", h.cancelReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", h.requireAuth(h.getReservation)).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", h.requireAuth(h.updateReservation)).Methods("PUT")
	r.HandleFunc("/api/reservations/{id}", h.requireAdmin(h.deleteReservation)).Methods("DELETE")

	// Menu (public reads, admin writes)
	r.HandleFunc("/api/menu/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/api/menu/categories", h.requireAuth(h.createCategory)).Methods("POST")
	r.HandleFunc("/api/menu/categories/{id}", h.getCategory).Methods("GET")
	r.HandleFunc("/api/menu/categories/{id}/items", h.listCategoryItems).Methods("GET")
	r.HandleFunc("/api/menu/categories/{id}", h.requireAuth(h.updateCategory)).Methods("PUT")
	r.HandleFunc("/api/menu/categories/{id}", h.requireAuth(h.deleteCategory)).Methods("DELETE")
	r.HandleFunc("/api/menu/items", h.listMenuItems).Methods("GET")
	r.HandleFunc("/api/menu/items", h.requireAuth(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/api/menu/items/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/items/{id}", h.requireAuth(h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/menu/items/{id}", h.requireAuth(h.deleteMenuItem)).Methods("DELETE")
	r.HandleFunc("/api/menu/qr", h.menuQRCode).Methods("GET")

	// Newsletter
	r.HandleFunc("/api/newsletter/subscribe", h.subscribeNewsletter).Methods("POST")
	r.HandleFunc("/api/newsletter/unsubscribe", h.unsubscribeNewsletter).Methods("POST")
	r.HandleFunc("/api/newsletter/subscribers", h.requireAuth(h.listSubscribers)).Methods("GET")

	// Customers (staff only)
	r.HandleFunc("/api/customers", h.requireAuth(h.listCustomers)).Methods("GET")
	r.HandleFunc("/api/customers/{id}", h.requireAuth(h.getCustomer)).Methods("GET")
	r.HandleFunc("/api/customers/{id}", h.requireAuth(h.updateCustomer)).Methods("PUT")
	r.HandleFunc("/api/customers/{id}", h.requireAdmin(h.deleteCustomer)).Methods("DELETE")

	// Auth and admin
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/admin/dashboard", h.requireAuth(h.dashboard)).Methods("GET")
	r.HandleFunc("/api/admin/employees", h.requireAdmin(h.listEmployees)).Methods("GET")
	r.HandleFunc("/api/admin/employees", h.requireAdmin(h.createEmployee)).Methods("POST")
	r.HandleFunc("/api/admin/employees/{id}", h.requireAdmin(h.getEmployee)).Methods("GET")
	r.HandleFunc("/api/admin/employees/{id}", h.requireAdmin(h.updateEmployee)).Methods("PUT")
	r.HandleFunc("/api/admin/employees/{id}", h.requireAdmin(h.deleteEmployee)).Methods("DELETE")

	r.HandleFunc("/health", h.health).Methods("GET")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"service":   "cafe-fausse",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// NewRouter builds the full HTTP stack: routes plus CORS for the frontend.
func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return cors.Default().Handler(r)
}
