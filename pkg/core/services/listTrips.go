package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/model"
)

// ListTrips returns every trip in the record store
func ListTrips(ctx context.Context, store RecordStore, logger *zap.Logger) ([]model.Trip, error) {
	trips, err := store.ListTrips(ctx)
	if err != nil {
		return nil, upstream("fetch trips", err)
	}

	logger.Debug("Found trips", zap.Int("count", len(trips)))
	return trips, nil
}
