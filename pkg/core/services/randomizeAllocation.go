package services

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/model"
	"github.com/calebmorton/trip-roster/pkg/core/proposals"
	"github.com/calebmorton/trip-roster/pkg/core/roster"
)

// RandomizeResult contains a freshly drawn allocation awaiting approval
type RandomizeResult struct {
	ProposalID       string
	ProposedRoster   []model.Signup
	ProposedWaitlist []model.Signup
}

// RandomizeAllocation draws a fresh random roster for the trip and stores it
// as the trip's pending proposal, replacing any earlier draw. Every signup
// goes back into the draw regardless of current status. Nothing is written
// to the record store; ApproveProposal commits the draw.
func RandomizeAllocation(
	ctx context.Context,
	store RecordStore,
	cache proposals.Store,
	rng *rand.Rand,
	logger *zap.Logger,
	tripID string,
) (*RandomizeResult, error) {
	logger.Debug("Starting randomizeAllocation", zap.String("trip_id", tripID))

	// Step 1: Fetch the trip and its full signup list
	trip, err := store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, upstream("fetch trip", err)
	}

	signups, err := store.ListSignupsForTrip(ctx, tripID)
	if err != nil {
		return nil, upstream("fetch signups", err)
	}
	logger.Debug("Found signups", zap.Int("count", len(signups)))

	// Step 2: Draw the candidate roster and waitlist
	selection, err := roster.Randomize(trip, signups, rng)
	if err != nil {
		return nil, err
	}

	// Step 3: Store the draw as the trip's one pending proposal
	proposal := proposals.Proposal{
		ID:          uuid.New().String(),
		TripID:      trip.ID,
		RosterIDs:   selection.RosterIDs(),
		WaitlistIDs: selection.WaitlistIDs(),
		CreatedAt:   time.Now(),
	}
	if err := cache.Put(ctx, proposal); err != nil {
		return nil, upstream("store proposal", err)
	}

	logger.Info("Stored pending proposal",
		zap.String("trip_id", trip.ID),
		zap.String("proposal_id", proposal.ID),
		zap.Int("roster_size", len(selection.Roster)),
		zap.Int("waitlist_size", len(selection.Waitlist)))

	return &RandomizeResult{
		ProposalID:       proposal.ID,
		ProposedRoster:   selection.Roster,
		ProposedWaitlist: selection.Waitlist,
	}, nil
}
