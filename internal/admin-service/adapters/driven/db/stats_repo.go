package db

import (
	"context"
	"fmt"

	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/ports"
)

// Weekday-bucketed analytics need dialect-specific date functions, so the
// chart queries come in postgres and sqlite variants.

const (
	tripsPerDayPostgres = `
		SELECT
			TO_CHAR(created_at, 'Dy') as day,
			COUNT(*) as trips
		FROM trips
		WHERE created_at >= date_trunc('week', CURRENT_DATE)
		GROUP BY TO_CHAR(created_at, 'Dy'), DATE_PART('dow', created_at)
		ORDER BY DATE_PART('dow', created_at)`

	tripsPerDaySQLite = `
		SELECT
			CASE strftime('%w', created_at)
				WHEN '0' THEN 'Sun' WHEN '1' THEN 'Mon' WHEN '2' THEN 'Tue'
				WHEN '3' THEN 'Wed' WHEN '4' THEN 'Thu' WHEN '5' THEN 'Fri'
				ELSE 'Sat'
			END as day,
			COUNT(*) as trips
		FROM trips
		WHERE created_at >= date('now', 'weekday 0', '-6 days')
		GROUP BY strftime('%w', created_at)
		ORDER BY strftime('%w', created_at)`

	revenuePerDayPostgres = `
		SELECT
			TO_CHAR(p.created_at, 'Dy') as day,
			COALESCE(SUM(p.amount), 0) as revenue
		FROM payments p
		WHERE p.created_at >= date_trunc('week', CURRENT_DATE)
			AND p.status = 'completed'
		GROUP BY TO_CHAR(p.created_at, 'Dy'), DATE_PART('dow', p.created_at)
		ORDER BY DATE_PART('dow', p.created_at)`

	revenuePerDaySQLite = `
		SELECT
			CASE strftime('%w', created_at)
				WHEN '0' THEN 'Sun' WHEN '1' THEN 'Mon' WHEN '2' THEN 'Tue'
				WHEN '3' THEN 'Wed' WHEN '4' THEN 'Thu' WHEN '5' THEN 'Fri'
				ELSE 'Sat'
			END as day,
			COALESCE(SUM(amount), 0) as revenue
		FROM payments
		WHERE created_at >= date('now', 'weekday 0', '-6 days')
			AND status = 'completed'
		GROUP BY strftime('%w', created_at)
		ORDER BY strftime('%w', created_at)`
)

type StatsRepo struct {
	db ports.IDB
}

func NewStatsRepo(db ports.IDB) ports.IStatsRepo {
	return &StatsRepo{db: db}
}

func (sr *StatsRepo) Overview(ctx context.Context) (models.Stats, error) {
	q := `
		SELECT
			(SELECT COUNT(*) FROM trips) as total_trips,
			(SELECT COUNT(*) FROM accounts WHERE role = 'driver') as active_drivers,
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'completed') as revenue,
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'pending') as pending_payments`

	var stats models.Stats
	err := sr.db.QueryRow(ctx, q).Scan(
		&stats.TotalTrips,
		&stats.ActiveDrivers,
		&stats.Revenue,
		&stats.PendingPayments,
	)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to get overview stats: %w", err)
	}
	return stats, nil
}

func (sr *StatsRepo) TripsPerDay(ctx context.Context) ([]models.DayCount, error) {
	q := tripsPerDayPostgres
	if sr.db.Dialect() == "sqlite" {
		q = tripsPerDaySQLite
	}

	rows, err := sr.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip analytics: %w", err)
	}
	defer rows.Close()

	var days []models.DayCount
	for rows.Next() {
		var d models.DayCount
		if err := rows.Scan(&d.Day, &d.Trips); err != nil {
			return nil, fmt.Errorf("failed to scan trip analytics: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (sr *StatsRepo) RevenuePerDay(ctx context.Context) ([]models.DayRevenue, error) {
	q := revenuePerDayPostgres
	if sr.db.Dialect() == "sqlite" {
		q = revenuePerDaySQLite
	}

	rows, err := sr.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue analytics: %w", err)
	}
	defer rows.Close()

	var days []models.DayRevenue
	for rows.Next() {
		var d models.DayRevenue
		if err := rows.Scan(&d.Day, &d.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue analytics: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
