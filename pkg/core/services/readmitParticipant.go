package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ReadmitParticipant restores a dropped participant straight onto the
// roster, subject to the same live capacity checks as promotion. The
// participant must currently be in the trip's dropped set.
func ReadmitParticipant(
	ctx context.Context,
	store RecordStore,
	logger *zap.Logger,
	tripID string,
	participantID string,
) (*PromoteResult, error) {
	logger.Debug("Starting readmitParticipant",
		zap.String("trip_id", tripID),
		zap.String("participant_id", participantID))

	trip, current, err := loadTripState(ctx, store, logger, tripID)
	if err != nil {
		return nil, err
	}

	candidate, found := findSignup(current.Dropped, participantID)
	if !found {
		return nil, fmt.Errorf("dropped participant %s: %w", participantID, ErrParticipantNotFound)
	}

	if len(current.Roster) >= trip.Capacity {
		return nil, ErrRosterFull
	}
	if candidate.Driver {
		if driverSpotsAvailable(trip, current) <= 0 {
			return nil, ErrNoDriverSpots
		}
	} else {
		if nonDriverSpotsAvailable(trip, current) <= 0 {
			return nil, ErrNoNonDriverSpots
		}
	}

	return commitPromotion(ctx, store, logger, trip, candidate)
}
