package db

import (
	"context"
	"fmt"

	"loadgo/internal/admin-service/core/domain/dto"
	"loadgo/internal/admin-service/core/domain/models"
	"loadgo/internal/admin-service/core/guard"
	"loadgo/internal/admin-service/core/ports"
)

const tripColumns = `id, customer_id, driver_id, pickup_location, dropoff_location, vehicle_type, status, price, distance, estimated_time, actual_time, created_at, updated_at`

type TripsRepo struct {
	db   ports.IDB
	exec *guard.Executor
}

func NewTripsRepo(db ports.IDB, exec *guard.Executor) ports.ITripsRepo {
	return &TripsRepo{
		db:   db,
		exec: exec,
	}
}

func (tr *TripsRepo) List(ctx context.Context) ([]models.Trip, error) {
	q := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC`

	rows, err := tr.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (tr *TripsRepo) Recent(ctx context.Context, limit int) ([]models.RecentTrip, error) {
	q := `
		SELECT t.id, a.name, t.pickup_location, t.status
		FROM trips t
		LEFT JOIN accounts a ON t.driver_id = a.id
		ORDER BY t.created_at DESC
		LIMIT $1`

	rows, err := tr.db.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent trips: %w", err)
	}
	defer rows.Close()

	var trips []models.RecentTrip
	for rows.Next() {
		var t models.RecentTrip
		if err := rows.Scan(&t.Id, &t.DriverName, &t.PickupAddress, &t.Status); err != nil {
			return nil, fmt.Errorf("failed to scan recent trip: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (tr *TripsRepo) Create(ctx context.Context, req dto.TripCreateRequest) (models.Trip, error) {
	q := `
		INSERT INTO trips (customer_id, driver_id, pickup_location, dropoff_location, vehicle_type, price, distance, estimated_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + tripColumns

	return scanTrip(tr.db.QueryRow(ctx, q,
		req.CustomerId,
		req.DriverId,
		req.PickupLocation,
		req.DropoffLocation,
		req.VehicleType,
		req.Price,
		req.Distance,
		req.EstimatedTime,
	))
}

func (tr *TripsRepo) Update(ctx context.Context, id int64, req dto.TripUpdateRequest) (models.Trip, error) {
	q := `
		UPDATE trips
		SET pickup_location = $1, dropoff_location = $2, status = $3, price = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING ` + tripColumns

	var t models.Trip
	err := tr.exec.Update(ctx, "trip", q,
		[]any{req.PickupLocation, req.DropoffLocation, req.Status, req.Price, id},
		func(row ports.Row) error {
			var scanErr error
			t, scanErr = scanTrip(row)
			return scanErr
		},
	)
	if err != nil {
		return models.Trip{}, err
	}
	return t, nil
}

func (tr *TripsRepo) Delete(ctx context.Context, id int64) error {
	return tr.exec.Delete(ctx, TripDescriptor, id)
}

func scanTrip(row ports.Row) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(
		&t.Id,
		&t.CustomerId,
		&t.DriverId,
		&t.PickupLocation,
		&t.DropoffLocation,
		&t.VehicleType,
		&t.Status,
		&t.Price,
		&t.Distance,
		&t.EstimatedTime,
		&t.ActualTime,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return models.Trip{}, err
	}
	return t, nil
}
