package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/model"
	"github.com/calebmorton/trip-roster/pkg/core/proposals"
	"github.com/calebmorton/trip-roster/pkg/core/services"
)

const testPassphrase = "open-sesame"

type mockStore struct {
	mu              sync.Mutex
	trips           []model.Trip
	signups         []model.Signup
	listTripsErr    error
	updatedStatuses map[string]string
}

func (m *mockStore) ListTrips(ctx context.Context) ([]model.Trip, error) {
	if m.listTripsErr != nil {
		return nil, m.listTripsErr
	}
	return m.trips, nil
}

func (m *mockStore) GetTrip(ctx context.Context, tripID string) (model.Trip, error) {
	for _, t := range m.trips {
		if t.ID == tripID {
			return t, nil
		}
	}
	return model.Trip{}, fmt.Errorf("trip %s not found", tripID)
}

func (m *mockStore) ListSignupsForTrip(ctx context.Context, tripID string) ([]model.Signup, error) {
	var out []model.Signup
	for _, s := range m.signups {
		if s.TripID == tripID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStore) UpdateSignupStatus(ctx context.Context, signupID string, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updatedStatuses == nil {
		m.updatedStatuses = make(map[string]string)
	}
	m.updatedStatuses[signupID] = status
	return nil
}

type mockPublisher struct {
	published *services.PublishedRoster
	err       error
}

func (m *mockPublisher) PublishRoster(ctx context.Context, published *services.PublishedRoster) error {
	if m.err != nil {
		return m.err
	}
	m.published = published
	return nil
}

// fixtureStore builds a trip with two roster members, one waitlisted
// non-driver and one dropped non-driver
func fixtureStore() *mockStore {
	return &mockStore{
		trips: []model.Trip{
			{ID: "trip-1", Name: "Spring Coast Trip", Capacity: 3, DriverSlots: 1},
		},
		signups: []model.Signup{
			{ID: "d1", TripID: "trip-1", Name: "Alex", Driver: true, Status: "Selected (driver)"},
			{ID: "p1", TripID: "trip-1", Name: "Morgan", Status: "Selected (nondriver)"},
			{ID: "p2", TripID: "trip-1", Name: "Sam", Status: "Waitlist (nondriver) - 1"},
			{ID: "p3", TripID: "trip-1", Name: "Kit", Status: "Dropped- 01/05/2026"},
		},
	}
}

func setupRouter(store services.RecordStore, cache proposals.Store, publisher services.RosterPublisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(
		Config{Passphrase: testPassphrase},
		Dependencies{Store: store, Cache: cache, Publisher: publisher, Logger: zap.NewNop()},
	)
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Passphrase", testPassphrase)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedProposal(t *testing.T, cache proposals.Store, rosterIDs, waitlistIDs []string) {
	t.Helper()
	err := cache.Put(context.Background(), proposals.Proposal{
		ID:          "prop-1",
		TripID:      "trip-1",
		RosterIDs:   rosterIDs,
		WaitlistIDs: waitlistIDs,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
}

func TestListTrips(t *testing.T) {
	router := setupRouter(fixtureStore(), proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodGet, "/trips", nil)
	require.Equal(t, http.StatusOK, w.Code)

	trips := decodeJSON[[]TripResponse](t, w)
	require.Len(t, trips, 1)
	assert.Equal(t, "trip-1", trips[0].ID)
	assert.Equal(t, 3, trips[0].Capacity)
	assert.Equal(t, 1, trips[0].DriverSlots)
	assert.Equal(t, 2, trips[0].NonDriverSlots)
}

func TestListTrips_UpstreamFailure(t *testing.T) {
	store := fixtureStore()
	store.listTripsErr = assert.AnError
	router := setupRouter(store, proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodGet, "/trips", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestViewSignups(t *testing.T) {
	router := setupRouter(fixtureStore(), proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodGet, "/trips/trip-1/signups", nil)
	require.Equal(t, http.StatusOK, w.Code)

	view := decodeJSON[ViewSignupsResponse](t, w)
	assert.Equal(t, "Spring Coast Trip", view.Trip.Name)
	assert.Len(t, view.Roster, 2)
	assert.Len(t, view.Waitlist, 1)
	assert.Len(t, view.Dropped, 1)
	assert.Equal(t, 1, view.DriverCount)
}

func TestViewSignups_UnknownTrip(t *testing.T) {
	router := setupRouter(fixtureStore(), proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodGet, "/trips/trip-404/signups", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRandomize_StoresProposal(t *testing.T) {
	cache := proposals.NewMemoryStore(0)
	router := setupRouter(fixtureStore(), cache, nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/randomize", nil)
	require.Equal(t, http.StatusOK, w.Code)

	proposal := decodeJSON[ProposalResponse](t, w)
	assert.NotEmpty(t, proposal.ProposalID)

	// All four signups enter the draw, dropped included
	assert.Len(t, proposal.Roster, 3)
	assert.Len(t, proposal.Waitlist, 1)

	stored, ok, err := cache.Get(context.Background(), "trip-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, proposal.ProposalID, stored.ID)
}

func TestRandomize_EmptyPool(t *testing.T) {
	store := fixtureStore()
	store.signups = nil
	router := setupRouter(store, proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/randomize", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApprove_CommitsProposal(t *testing.T) {
	store := fixtureStore()
	cache := proposals.NewMemoryStore(0)
	seedProposal(t, cache, []string{"d1", "p1"}, []string{"p2"})
	router := setupRouter(store, cache, nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/approve", ApproveRequest{
		Roster:   []string{"p1", "d1"},
		Waitlist: []string{"p2"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	result := decodeJSON[ApproveResponse](t, w)
	assert.Equal(t, 3, result.UpdatedCount)

	assert.Equal(t, "Selected (driver)", store.updatedStatuses["d1"])
	assert.Equal(t, "Selected (nondriver)", store.updatedStatuses["p1"])
	assert.Equal(t, "Waitlist (nondriver) - 1", store.updatedStatuses["p2"])

	_, ok, err := cache.Get(context.Background(), "trip-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestApprove_NoPendingProposal(t *testing.T) {
	router := setupRouter(fixtureStore(), proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/approve", ApproveRequest{
		Roster:   []string{"d1"},
		Waitlist: []string{},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApprove_Mismatch(t *testing.T) {
	cache := proposals.NewMemoryStore(0)
	seedProposal(t, cache, []string{"d1", "p1"}, []string{"p2"})
	router := setupRouter(fixtureStore(), cache, nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/approve", ApproveRequest{
		Roster:   []string{"d1", "p2"},
		Waitlist: []string{"p1"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// A mismatch must not consume the pending proposal
	_, ok, err := cache.Get(context.Background(), "trip-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestApprove_MissingRoster(t *testing.T) {
	router := setupRouter(fixtureStore(), proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/approve", map[string]any{
		"waitlist": []string{"p2"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPromote_NextInLine(t *testing.T) {
	store := fixtureStore()
	// Free a seat so the waitlisted non-driver can move up
	store.trips[0].Capacity = 4
	router := setupRouter(store, proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/promote", nil)
	require.Equal(t, http.StatusOK, w.Code)

	result := decodeJSON[PromoteResponse](t, w)
	assert.Equal(t, "p2", result.Promoted.ID)
	assert.Equal(t, "Selected (nondriver)", result.NewStatus)
	assert.Equal(t, "Selected (nondriver)", store.updatedStatuses["p2"])
}

func TestPromote_RosterFull(t *testing.T) {
	store := fixtureStore()
	store.trips[0].Capacity = 2
	router := setupRouter(store, proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/promote", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPromote_UnknownRole(t *testing.T) {
	router := setupRouter(fixtureStore(), proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/promote?role=pilot", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDrop(t *testing.T) {
	store := fixtureStore()
	router := setupRouter(store, proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/signups/p1/drop", nil)
	require.Equal(t, http.StatusOK, w.Code)

	result := decodeJSON[DropResponse](t, w)
	assert.Equal(t, "p1", result.ParticipantID)
	assert.Contains(t, result.Status, "Dropped-")
	assert.Contains(t, store.updatedStatuses["p1"], "Dropped-")
}

func TestReadmit(t *testing.T) {
	store := fixtureStore()
	store.trips[0].Capacity = 4
	router := setupRouter(store, proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/signups/p3/readmit", nil)
	require.Equal(t, http.StatusOK, w.Code)

	result := decodeJSON[PromoteResponse](t, w)
	assert.Equal(t, "p3", result.Promoted.ID)
	assert.Equal(t, "Selected (nondriver)", result.NewStatus)
}

func TestReadmit_NotDropped(t *testing.T) {
	router := setupRouter(fixtureStore(), proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/signups/p1/readmit", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublish(t *testing.T) {
	publisher := &mockPublisher{}
	router := setupRouter(fixtureStore(), proposals.NewMemoryStore(0), publisher)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/publish", nil)
	require.Equal(t, http.StatusOK, w.Code)

	result := decodeJSON[PublishResponse](t, w)
	assert.Equal(t, "trip-1", result.TripID)
	assert.Equal(t, "Spring Coast Trip", result.TripName)
	assert.Equal(t, 3, result.RowCount)

	require.NotNil(t, publisher.published)
	assert.Len(t, publisher.published.Rows, 3)
}

func TestPublish_Disabled(t *testing.T) {
	router := setupRouter(fixtureStore(), proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodPost, "/trips/trip-1/publish", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAssistant(t *testing.T) {
	router := setupRouter(fixtureStore(), proposals.NewMemoryStore(0), nil)

	w := doRequest(t, router, http.MethodPost, "/assistant", AssistantRequest{
		Query: "how do I approve the pending selection",
	})
	require.Equal(t, http.StatusOK, w.Code)

	reply := decodeJSON[services.AssistantReply](t, w)
	require.Len(t, reply.Actions, 1)
	assert.Equal(t, "approve", reply.Actions[0].Name)
}
