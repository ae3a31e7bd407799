package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/model"
	"github.com/calebmorton/trip-roster/pkg/core/roster"
)

// loadTripState fetches a trip and its signups and classifies them. Every
// incremental operation re-derives live state this way instead of trusting
// a cached proposal.
func loadTripState(ctx context.Context, store RecordStore, logger *zap.Logger, tripID string) (model.Trip, roster.Classification, error) {
	trip, err := store.GetTrip(ctx, tripID)
	if err != nil {
		return model.Trip{}, roster.Classification{}, upstream("fetch trip", err)
	}

	signups, err := store.ListSignupsForTrip(ctx, tripID)
	if err != nil {
		return model.Trip{}, roster.Classification{}, upstream("fetch signups", err)
	}

	current := roster.Classify(signups)
	logger.Debug("Loaded trip state",
		zap.String("trip_id", trip.ID),
		zap.Int("signups", len(signups)),
		zap.Int("roster", len(current.Roster)),
		zap.Int("waitlist", len(current.Waitlist)),
		zap.Int("dropped", len(current.Dropped)))

	return trip, current, nil
}

// driverSpotsAvailable counts open driver slots on the current roster
func driverSpotsAvailable(trip model.Trip, current roster.Classification) int {
	return trip.DriverSlots - roster.DriverCount(current.Roster)
}

// nonDriverSpotsAvailable counts open non-driver seats on the current roster
func nonDriverSpotsAvailable(trip model.Trip, current roster.Classification) int {
	return trip.NonDriverSlots() - roster.NonDriverCount(current.Roster)
}

// firstByFlag returns the first signup whose driver flag matches, preserving
// the list's iteration order
func firstByFlag(signups []model.Signup, driver bool) (model.Signup, bool) {
	for _, s := range signups {
		if s.Driver == driver {
			return s, true
		}
	}
	return model.Signup{}, false
}

// findSignup looks up a signup by identifier
func findSignup(signups []model.Signup, id string) (model.Signup, bool) {
	for _, s := range signups {
		if s.ID == id {
			return s, true
		}
	}
	return model.Signup{}, false
}
