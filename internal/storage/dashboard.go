package storage

import (
	"context"
	"fmt"

	"cafe-fausse/internal/domain"
)

// DashboardStats collects the counters and upcoming bookings for the admin
// dashboard in one round of queries.
func (r *PostgresRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM menu_items", &stats.MenuItems},
		{"SELECT COUNT(*) FROM categories", &stats.Categories},
		{"SELECT COUNT(*) FROM customers", &stats.Customers},
		{"SELECT COUNT(*) FROM newsletter_subscribers WHERE is_active", &stats.NewsletterSubscribers},
		{"SELECT COUNT(*) FROM reservations WHERE date = CURRENT_DATE", &stats.TodayReservations},
	}
	for _, c := range counts {
		if err := r.DB.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("dashboard count: %w", err)
		}
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations r
		JOIN customers c ON c.id = r.customer_id
		WHERE r.date >= CURRENT_DATE
		ORDER BY r.date, r.time
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("query upcoming reservations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		stats.UpcomingReservations = append(stats.UpcomingReservations, *res)
	}
	return &stats, rows.Err()
}
