package proposals

import (
	"context"
	"time"
)

const (
	// DefaultTTL is how long a pending proposal stays approvable
	DefaultTTL = 10 * time.Minute

	// DefaultSweepInterval is how often expired proposals are cleared
	DefaultSweepInterval = time.Minute
)

// Proposal is a randomized roster draw awaiting approval. Only signup
// identifiers are kept; the display copy of the draw is rebuilt from the
// record store when needed. At most one proposal exists per trip and a new
// draw replaces the old one.
type Proposal struct {
	ID          string    `json:"id"`
	TripID      string    `json:"trip_id"`
	RosterIDs   []string  `json:"roster_ids"`
	WaitlistIDs []string  `json:"waitlist_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store holds pending proposals keyed by trip. Implementations expire
// entries after a TTL; Get never returns an expired proposal.
type Store interface {
	// Put stores p as the trip's pending proposal, replacing any
	// previous one.
	Put(ctx context.Context, p Proposal) error

	// Get returns the trip's pending proposal. The bool reports whether
	// a live proposal exists.
	Get(ctx context.Context, tripID string) (Proposal, bool, error)

	// Delete removes the trip's pending proposal if present.
	Delete(ctx context.Context, tripID string) error

	// SweepExpired clears expired proposals and reports how many were
	// removed. Backends with server-side expiry may do nothing.
	SweepExpired(ctx context.Context) int
}
