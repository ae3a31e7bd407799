package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/model"
)

func TestViewSignups_PartitionsByStatus(t *testing.T) {
	trips := []model.Trip{testTrip(4, 2)}
	signups := []model.Signup{
		testSignup("d1", true, "Selected (driver)"),
		testSignup("d2", true, "ON TRIP"),
		testSignup("p1", false, "Selected (nondriver)"),
		testSignup("w1", false, "Waitlist (nondriver) - 1"),
		testSignup("x1", false, "Dropped- 03/15/2025"),
		testSignup("n1", false, ""),
	}
	store := newMockRecordStore(trips, signups)

	result, err := ViewSignups(context.Background(), store, zap.NewNop(), "trip-1")
	require.NoError(t, err)

	assert.Equal(t, "trip-1", result.Trip.ID)
	assert.Len(t, result.All, 6)
	assert.Len(t, result.Roster, 3)
	assert.Len(t, result.Waitlist, 1)
	assert.Len(t, result.Dropped, 1)
	assert.Equal(t, 2, result.DriverCount)
}

func TestViewSignups_UnknownTrip(t *testing.T) {
	store := newMockRecordStore(nil, nil)

	_, err := ViewSignups(context.Background(), store, zap.NewNop(), "trip-404")

	var upstreamErr *UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}

func TestViewSignups_ListFailure(t *testing.T) {
	trips := []model.Trip{testTrip(4, 2)}
	store := newMockRecordStore(trips, nil)
	store.listSignupsErr = assert.AnError

	_, err := ViewSignups(context.Background(), store, zap.NewNop(), "trip-1")

	var upstreamErr *UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}
