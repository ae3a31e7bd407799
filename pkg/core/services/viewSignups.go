package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/model"
	"github.com/calebmorton/trip-roster/pkg/core/roster"
)

// ViewSignupsResult contains a trip's signups partitioned by status class.
// DriverCount counts driver-eligible participants on the current roster.
type ViewSignupsResult struct {
	Trip        model.Trip
	All         []model.Signup
	Roster      []model.Signup
	Waitlist    []model.Signup
	Dropped     []model.Signup
	DriverCount int
}

// ViewSignups fetches the trip's signup list and derives the current
// roster, waitlist and dropped views from it
func ViewSignups(
	ctx context.Context,
	store RecordStore,
	logger *zap.Logger,
	tripID string,
) (*ViewSignupsResult, error) {
	logger.Debug("Starting viewSignups", zap.String("trip_id", tripID))

	trip, err := store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, upstream("fetch trip", err)
	}

	signups, err := store.ListSignupsForTrip(ctx, tripID)
	if err != nil {
		return nil, upstream("fetch signups", err)
	}
	logger.Debug("Found signups", zap.Int("count", len(signups)))

	current := roster.Classify(signups)

	return &ViewSignupsResult{
		Trip:        trip,
		All:         signups,
		Roster:      current.Roster,
		Waitlist:    current.Waitlist,
		Dropped:     current.Dropped,
		DriverCount: roster.DriverCount(current.Roster),
	}, nil
}
