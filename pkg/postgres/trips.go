package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/calebmorton/trip-roster/pkg/core/model"
)

// ListTrips retrieves all trip records ordered by name
func (d *DB) ListTrips(ctx context.Context) ([]model.Trip, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, capacity, driver_slots, non_driver_capacity
		FROM trip
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []model.Trip
	for rows.Next() {
		var t model.Trip
		if err := rows.Scan(&t.ID, &t.Name, &t.Capacity, &t.DriverSlots, &t.NonDriverCapacity); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trips: %w", err)
	}

	return trips, nil
}

// GetTrip retrieves a single trip record by ID
func (d *DB) GetTrip(ctx context.Context, tripID string) (model.Trip, error) {
	var t model.Trip
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, capacity, driver_slots, non_driver_capacity
		FROM trip
		WHERE id = $1
	`, tripID).Scan(&t.ID, &t.Name, &t.Capacity, &t.DriverSlots, &t.NonDriverCapacity)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Trip{}, fmt.Errorf("trip %s not found", tripID)
	}
	if err != nil {
		return model.Trip{}, fmt.Errorf("failed to query trip %s: %w", tripID, err)
	}

	return t, nil
}

// InsertTrip creates a trip record
func (d *DB) InsertTrip(ctx context.Context, trip model.Trip) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO trip (id, name, capacity, driver_slots, non_driver_capacity)
		VALUES ($1, $2, $3, $4, $5)
	`, trip.ID, trip.Name, trip.Capacity, trip.DriverSlots, trip.NonDriverCapacity)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	return nil
}
