package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/roster"
)

const (
	roleDriver      = "Driver"
	roleParticipant = "Participant"
)

// RosterSheetRow is one participant line in the published snapshot
type RosterSheetRow struct {
	Name   string
	Role   string
	Status string
}

// PublishedRoster is the snapshot pushed to the shared sheet: the current
// roster followed by the waitlist in queue order. Dropped participants are
// left out.
type PublishedRoster struct {
	TripID   string
	TripName string
	Rows     []RosterSheetRow
}

// RosterPublisher pushes a finished roster snapshot to the shared sheet
type RosterPublisher interface {
	PublishRoster(ctx context.Context, published *PublishedRoster) error
}

// PublishRoster builds the trip's roster snapshot from live records and
// pushes it through the publisher
func PublishRoster(
	ctx context.Context,
	store RecordStore,
	publisher RosterPublisher,
	logger *zap.Logger,
	tripID string,
) (*PublishedRoster, error) {
	logger.Debug("Starting publishRoster", zap.String("trip_id", tripID))

	trip, current, err := loadTripState(ctx, store, logger, tripID)
	if err != nil {
		return nil, err
	}

	published := &PublishedRoster{
		TripID:   trip.ID,
		TripName: trip.Name,
		Rows:     buildRosterSheetRows(current),
	}

	if err := publisher.PublishRoster(ctx, published); err != nil {
		return nil, upstream("publish roster sheet", err)
	}

	logger.Info("Published roster",
		zap.String("trip_id", trip.ID),
		zap.Int("rows", len(published.Rows)))

	return published, nil
}

// buildRosterSheetRows lays out roster members first (drivers ahead of
// participants, alphabetical within each role), then the waitlist in its
// queue order
func buildRosterSheetRows(current roster.Classification) []RosterSheetRow {
	rows := make([]RosterSheetRow, 0, len(current.Roster)+len(current.Waitlist))

	for _, s := range current.Roster {
		rows = append(rows, RosterSheetRow{
			Name:   s.Name,
			Role:   roleLabel(s.Driver),
			Status: s.Status,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Role != rows[j].Role {
			return rows[i].Role == roleDriver
		}
		return rows[i].Name < rows[j].Name
	})

	for _, s := range current.Waitlist {
		rows = append(rows, RosterSheetRow{
			Name:   s.Name,
			Role:   roleLabel(s.Driver),
			Status: s.Status,
		})
	}

	return rows
}

func roleLabel(driver bool) string {
	if driver {
		return roleDriver
	}
	return roleParticipant
}
