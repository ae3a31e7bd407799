package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/calebmorton/trip-roster/pkg/core/model"
)

// mockRecordStore is a test double for RecordStore. Status writes are
// recorded rather than applied; statusErrs fails writes for specific ids.
type mockRecordStore struct {
	mu sync.Mutex

	trips   []model.Trip
	signups []model.Signup

	listTripsErr   error
	getTripErr     error
	listSignupsErr error
	updateErr      error
	statusErrs     map[string]error

	updatedStatuses map[string]string
	updateOrder     []string

	inFlight    int
	maxInFlight int
}

func newMockRecordStore(trips []model.Trip, signups []model.Signup) *mockRecordStore {
	return &mockRecordStore{
		trips:           trips,
		signups:         signups,
		updatedStatuses: make(map[string]string),
	}
}

func (m *mockRecordStore) ListTrips(ctx context.Context) ([]model.Trip, error) {
	if m.listTripsErr != nil {
		return nil, m.listTripsErr
	}
	return m.trips, nil
}

func (m *mockRecordStore) GetTrip(ctx context.Context, tripID string) (model.Trip, error) {
	if m.getTripErr != nil {
		return model.Trip{}, m.getTripErr
	}
	for _, trip := range m.trips {
		if trip.ID == tripID {
			return trip, nil
		}
	}
	return model.Trip{}, fmt.Errorf("trip %s not found", tripID)
}

func (m *mockRecordStore) ListSignupsForTrip(ctx context.Context, tripID string) ([]model.Signup, error) {
	if m.listSignupsErr != nil {
		return nil, m.listSignupsErr
	}
	var matched []model.Signup
	for _, s := range m.signups {
		if s.TripID == tripID {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (m *mockRecordStore) UpdateSignupStatus(ctx context.Context, signupID string, status string) error {
	m.mu.Lock()
	m.inFlight++
	if m.inFlight > m.maxInFlight {
		m.maxInFlight = m.inFlight
	}
	m.mu.Unlock()

	// hold the slot briefly so concurrent writers actually overlap
	time.Sleep(time.Millisecond)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight--

	if m.updateErr != nil {
		return m.updateErr
	}
	if err, ok := m.statusErrs[signupID]; ok {
		return err
	}

	m.updatedStatuses[signupID] = status
	m.updateOrder = append(m.updateOrder, signupID)
	return nil
}

func testTrip(capacity, driverSlots int) model.Trip {
	return model.Trip{
		ID:          "trip-1",
		Name:        "Spring Coast Trip",
		Capacity:    capacity,
		DriverSlots: driverSlots,
	}
}

func testSignup(id string, driver bool, status string) model.Signup {
	return model.Signup{
		ID:     id,
		TripID: "trip-1",
		Name:   "Member " + id,
		Driver: driver,
		Status: status,
	}
}
