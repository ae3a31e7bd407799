package services

import (
	"context"

	"github.com/calebmorton/trip-roster/pkg/core/model"
)

// RecordStore defines the record store operations the roster services need.
// Implementations hide the backing store's paging; ListSignupsForTrip always
// returns the trip's complete signup list.
type RecordStore interface {
	ListTrips(ctx context.Context) ([]model.Trip, error)
	GetTrip(ctx context.Context, tripID string) (model.Trip, error)
	ListSignupsForTrip(ctx context.Context, tripID string) ([]model.Signup, error)
	UpdateSignupStatus(ctx context.Context, signupID string, status string) error
}
