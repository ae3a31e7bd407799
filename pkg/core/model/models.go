package model

// Trip represents a single outing with a fixed roster capacity
type Trip struct {
	ID   string
	Name string

	// Capacity is the total number of roster slots, leads included
	Capacity int

	// DriverSlots is the number of additional-driver slots that must be filled
	DriverSlots int

	// NonDriverCapacity is the explicit non-driver seat count. Zero means
	// "derive from Capacity - DriverSlots"; see NonDriverSlots.
	NonDriverCapacity int
}

// NonDriverSlots returns the number of non-driver seats on the trip.
// Capacity checks assume DriverSlots + NonDriverSlots == Capacity; a record
// that violates this produces wrong availability math, not an error.
func (t Trip) NonDriverSlots() int {
	if t.NonDriverCapacity > 0 {
		return t.NonDriverCapacity
	}
	return t.Capacity - t.DriverSlots
}

// Signup represents one participant's signup for a trip
type Signup struct {
	ID     string
	TripID string
	Name   string

	// Driver reports driver eligibility. It is sourced from the record store
	// and never written by this service.
	Driver bool

	// Status is the raw stored status string; see ParseStatus
	Status string
}
