package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/model"
)

// DropResult reports the dropped participant's rewritten status
type DropResult struct {
	ParticipantID string
	Status        string
}

// DropParticipant soft-removes a participant by rewriting their status to a
// date-stamped dropped marker, whatever their current status. The record is
// never deleted and no capacity check applies; dropping an already-dropped
// participant just refreshes the date. Nonexistent ids surface whatever the
// record store reports.
func DropParticipant(
	ctx context.Context,
	store RecordStore,
	logger *zap.Logger,
	tripID string,
	participantID string,
) (*DropResult, error) {
	status := model.DroppedStatus(time.Now()).Encode()

	if err := store.UpdateSignupStatus(ctx, participantID, status); err != nil {
		return nil, upstream("update signup status", err)
	}

	logger.Info("Dropped participant",
		zap.String("trip_id", tripID),
		zap.String("participant_id", participantID),
		zap.String("status", status))

	return &DropResult{ParticipantID: participantID, Status: status}, nil
}
