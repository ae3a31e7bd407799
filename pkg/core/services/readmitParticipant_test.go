package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReadmitParticipant_RestoresDroppedDriver(t *testing.T) {
	trips, signups := rosterFixture(10, 3, 2, 5,
		testSignup("dr-1", true, "Dropped- 03/15/2025"),
	)
	store := newMockRecordStore(trips, signups)

	result, err := ReadmitParticipant(context.Background(), store, zap.NewNop(), "trip-1", "dr-1")
	require.NoError(t, err)

	assert.Equal(t, "dr-1", result.Promoted.ID)
	assert.Equal(t, "Selected (driver)", store.updatedStatuses["dr-1"])
	assert.Len(t, store.updateOrder, 1)
}

func TestReadmitParticipant_RestoresDroppedNonDriver(t *testing.T) {
	trips, signups := rosterFixture(10, 3, 2, 5,
		testSignup("dp-1", false, "Dropped- 03/15/2025"),
	)
	store := newMockRecordStore(trips, signups)

	result, err := ReadmitParticipant(context.Background(), store, zap.NewNop(), "trip-1", "dp-1")
	require.NoError(t, err)

	assert.Equal(t, "dp-1", result.Promoted.ID)
	assert.Equal(t, "Selected (nondriver)", store.updatedStatuses["dp-1"])
}

func TestReadmitParticipant_NotFound(t *testing.T) {
	trips, signups := rosterFixture(10, 3, 2, 5,
		testSignup("dp-1", false, "Dropped- 03/15/2025"),
	)
	store := newMockRecordStore(trips, signups)

	// A roster member is not in the dropped set
	_, err := ReadmitParticipant(context.Background(), store, zap.NewNop(), "trip-1", "rd-1")
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	_, err = ReadmitParticipant(context.Background(), store, zap.NewNop(), "trip-1", "ghost")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestReadmitParticipant_RosterFull(t *testing.T) {
	trips, signups := rosterFixture(10, 3, 3, 7,
		testSignup("dp-1", false, "Dropped- 03/15/2025"),
	)
	store := newMockRecordStore(trips, signups)

	_, err := ReadmitParticipant(context.Background(), store, zap.NewNop(), "trip-1", "dp-1")
	assert.ErrorIs(t, err, ErrRosterFull)
}

func TestReadmitParticipant_NoDriverSpots(t *testing.T) {
	// Driver slots full but the roster still has room
	trips, signups := rosterFixture(10, 3, 3, 5,
		testSignup("dr-1", true, "Dropped- 03/15/2025"),
	)
	store := newMockRecordStore(trips, signups)

	_, err := ReadmitParticipant(context.Background(), store, zap.NewNop(), "trip-1", "dr-1")
	assert.ErrorIs(t, err, ErrNoDriverSpots)
	assert.Empty(t, store.updatedStatuses)
}

func TestReadmitParticipant_NoNonDriverSpots(t *testing.T) {
	trips, signups := rosterFixture(10, 3, 2, 7,
		testSignup("dp-1", false, "Dropped- 03/15/2025"),
	)
	store := newMockRecordStore(trips, signups)

	_, err := ReadmitParticipant(context.Background(), store, zap.NewNop(), "trip-1", "dp-1")
	assert.ErrorIs(t, err, ErrNoNonDriverSpots)
}
