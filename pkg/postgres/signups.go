package postgres

import (
	"context"
	"fmt"

	"github.com/calebmorton/trip-roster/pkg/core/model"
)

// ListSignupsForTrip retrieves a trip's signups in signup order. The order
// is load-bearing: waitlist promotion picks the earliest candidate.
func (d *DB) ListSignupsForTrip(ctx context.Context, tripID string) ([]model.Signup, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, trip_id, name, driver, status
		FROM signup
		WHERE trip_id = $1
		ORDER BY created_at, id
	`, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query signups for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	var signups []model.Signup
	for rows.Next() {
		var s model.Signup
		if err := rows.Scan(&s.ID, &s.TripID, &s.Name, &s.Driver, &s.Status); err != nil {
			return nil, fmt.Errorf("failed to scan signup: %w", err)
		}
		signups = append(signups, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating signups: %w", err)
	}

	return signups, nil
}

// UpdateSignupStatus overwrites a signup's status string
func (d *DB) UpdateSignupStatus(ctx context.Context, signupID string, status string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE signup SET status = $2 WHERE id = $1
	`, signupID, status)
	if err != nil {
		return fmt.Errorf("failed to update signup %s: %w", signupID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("signup %s not found", signupID)
	}

	return nil
}

// InsertSignups creates signup records in a single transaction
func (d *DB) InsertSignups(ctx context.Context, signups []model.Signup) error {
	if len(signups) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range signups {
		_, err := tx.Exec(ctx, `
			INSERT INTO signup (id, trip_id, name, driver, status)
			VALUES ($1, $2, $3, $4, $5)
		`, s.ID, s.TripID, s.Name, s.Driver, s.Status)
		if err != nil {
			return fmt.Errorf("failed to insert signup: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
