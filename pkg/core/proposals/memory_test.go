package proposals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryStore(ttl time.Duration) (*MemoryStore, *time.Time) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(ttl)
	store.now = func() time.Time { return current }
	return store, &current
}

func testProposal(tripID string, createdAt time.Time) Proposal {
	return Proposal{
		ID:          "prop-" + tripID,
		TripID:      tripID,
		RosterIDs:   []string{"s1", "s2"},
		WaitlistIDs: []string{"s3"},
		CreatedAt:   createdAt,
	}
}

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, current := newTestMemoryStore(10 * time.Minute)

	p := testProposal("trip-1", *current)
	require.NoError(t, store.Put(ctx, p))

	got, ok, err := store.Get(ctx, "trip-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p, got)

	require.NoError(t, store.Delete(ctx, "trip-1"))

	_, ok, err = store.Get(ctx, "trip-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store, _ := newTestMemoryStore(10 * time.Minute)

	_, ok, err := store.Get(context.Background(), "trip-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_PutReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	store, current := newTestMemoryStore(10 * time.Minute)

	require.NoError(t, store.Put(ctx, testProposal("trip-1", *current)))

	replacement := testProposal("trip-1", *current)
	replacement.ID = "prop-second"
	replacement.RosterIDs = []string{"s9"}
	require.NoError(t, store.Put(ctx, replacement))

	got, ok, err := store.Get(ctx, "trip-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "prop-second", got.ID)
	assert.Equal(t, []string{"s9"}, got.RosterIDs)
}

func TestMemoryStore_GetExpired(t *testing.T) {
	ctx := context.Background()
	store, current := newTestMemoryStore(10 * time.Minute)

	require.NoError(t, store.Put(ctx, testProposal("trip-1", *current)))

	*current = current.Add(11 * time.Minute)

	_, ok, err := store.Get(ctx, "trip-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_SweepExpired(t *testing.T) {
	ctx := context.Background()
	store, current := newTestMemoryStore(10 * time.Minute)

	stale := testProposal("trip-old", *current)
	require.NoError(t, store.Put(ctx, stale))

	*current = current.Add(11 * time.Minute)
	fresh := testProposal("trip-new", *current)
	require.NoError(t, store.Put(ctx, fresh))

	assert.Equal(t, 1, store.SweepExpired(ctx))

	_, ok, err := store.Get(ctx, "trip-old")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Get(ctx, "trip-new")
	require.NoError(t, err)
	assert.True(t, ok)
}
