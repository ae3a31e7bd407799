package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/model"
)

// PromoteResult identifies the promoted participant and their new status
type PromoteResult struct {
	Promoted  model.Signup
	NewStatus string
}

// PromoteNext moves one participant off the waitlist onto the roster.
// Capacity is recomputed from live records on every call; pending proposals
// are never consulted. While both spot types are open a driver is preferred.
// Selection within a sub-queue is the first match in waitlist order, there
// is no randomization here.
func PromoteNext(
	ctx context.Context,
	store RecordStore,
	logger *zap.Logger,
	tripID string,
) (*PromoteResult, error) {
	logger.Debug("Starting promoteNext", zap.String("trip_id", tripID))

	trip, current, err := loadTripState(ctx, store, logger, tripID)
	if err != nil {
		return nil, err
	}

	if len(current.Roster) >= trip.Capacity {
		return nil, ErrRosterFull
	}

	driverSpots := driverSpotsAvailable(trip, current)
	nonDriverSpots := nonDriverSpotsAvailable(trip, current)

	var candidate model.Signup
	var found bool
	switch {
	case driverSpots > 0 && nonDriverSpots > 0:
		if candidate, found = firstByFlag(current.Waitlist, true); !found {
			candidate, found = firstByFlag(current.Waitlist, false)
		}
		if !found {
			return nil, ErrWaitlistEmpty
		}
	case driverSpots > 0:
		if candidate, found = firstByFlag(current.Waitlist, true); !found {
			return nil, ErrNoDriversOnWaitlist
		}
	case nonDriverSpots > 0:
		if candidate, found = firstByFlag(current.Waitlist, false); !found {
			return nil, ErrNoNonDriversOnWaitlist
		}
	default:
		return nil, ErrRosterFull
	}

	return commitPromotion(ctx, store, logger, trip, candidate)
}

// PromoteDriver promotes the first driver on the waitlist into an open
// driver spot
func PromoteDriver(
	ctx context.Context,
	store RecordStore,
	logger *zap.Logger,
	tripID string,
) (*PromoteResult, error) {
	logger.Debug("Starting promoteDriver", zap.String("trip_id", tripID))

	trip, current, err := loadTripState(ctx, store, logger, tripID)
	if err != nil {
		return nil, err
	}

	if len(current.Roster) >= trip.Capacity {
		return nil, ErrRosterFull
	}
	if driverSpotsAvailable(trip, current) <= 0 {
		return nil, ErrNoDriverSpots
	}

	candidate, found := firstByFlag(current.Waitlist, true)
	if !found {
		return nil, ErrNoDriversOnWaitlist
	}

	return commitPromotion(ctx, store, logger, trip, candidate)
}

// PromoteNonDriver promotes the first non-driver on the waitlist into an
// open non-driver seat
func PromoteNonDriver(
	ctx context.Context,
	store RecordStore,
	logger *zap.Logger,
	tripID string,
) (*PromoteResult, error) {
	logger.Debug("Starting promoteNonDriver", zap.String("trip_id", tripID))

	trip, current, err := loadTripState(ctx, store, logger, tripID)
	if err != nil {
		return nil, err
	}

	if len(current.Roster) >= trip.Capacity {
		return nil, ErrRosterFull
	}
	if nonDriverSpotsAvailable(trip, current) <= 0 {
		return nil, ErrNoNonDriverSpots
	}

	candidate, found := firstByFlag(current.Waitlist, false)
	if !found {
		return nil, ErrNoNonDriversOnWaitlist
	}

	return commitPromotion(ctx, store, logger, trip, candidate)
}

// commitPromotion writes the single status update a successful promotion or
// re-admission produces. Remaining waitlist positions are left as they are.
func commitPromotion(
	ctx context.Context,
	store RecordStore,
	logger *zap.Logger,
	trip model.Trip,
	candidate model.Signup,
) (*PromoteResult, error) {
	status := model.RosterStatus(candidate.Driver).Encode()

	if err := store.UpdateSignupStatus(ctx, candidate.ID, status); err != nil {
		return nil, upstream("update signup status", err)
	}

	logger.Info("Promoted participant",
		zap.String("trip_id", trip.ID),
		zap.String("signup_id", candidate.ID),
		zap.Bool("driver", candidate.Driver),
		zap.String("status", status))

	candidate.Status = status
	return &PromoteResult{Promoted: candidate, NewStatus: status}, nil
}
