package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/model"
	"github.com/calebmorton/trip-roster/pkg/core/proposals"
)

// maxConcurrentStatusWrites bounds in-flight record store writes during an
// approval. The store rate-limits clients; this ceiling is part of that
// contract, not a tuning knob.
const maxConcurrentStatusWrites = 2

// ApproveResult reports how many signup statuses were rewritten
type ApproveResult struct {
	UpdatedCount int
}

type statusUpdate struct {
	signupID string
	status   string
}

// ApproveProposal commits a pending proposal. The submitted roster and
// waitlist id sets must match the stored draw exactly; the proposal is
// consumed before any status is written, so a concurrent duplicate approval
// fails cleanly instead of double-committing. A failure during the write
// phase leaves the already-applied statuses in place and the trip must be
// re-randomized.
func ApproveProposal(
	ctx context.Context,
	store RecordStore,
	cache proposals.Store,
	logger *zap.Logger,
	tripID string,
	rosterIDs []string,
	waitlistIDs []string,
) (*ApproveResult, error) {
	logger.Debug("Starting approveProposal",
		zap.String("trip_id", tripID),
		zap.Int("roster_ids", len(rosterIDs)),
		zap.Int("waitlist_ids", len(waitlistIDs)))

	// Step 1: Look up the pending proposal
	proposal, ok, err := cache.Get(ctx, tripID)
	if err != nil {
		return nil, upstream("fetch pending proposal", err)
	}
	if !ok {
		return nil, ErrNoPendingProposal
	}

	// Step 2: The submitted sets must equal the stored draw, order aside.
	// A stale client approving a replaced draw fails here with the entry
	// intact, so re-randomizing and retrying stays possible.
	if !sameIDSet(rosterIDs, proposal.RosterIDs) || !sameIDSet(waitlistIDs, proposal.WaitlistIDs) {
		logger.Warn("Submitted allocation does not match pending proposal",
			zap.String("trip_id", tripID),
			zap.String("proposal_id", proposal.ID))
		return nil, ErrProposalMismatch
	}

	// Step 3: Consume the proposal before writing anything. A concurrent
	// duplicate approval now fails at step 1 instead of double-committing.
	if err := cache.Delete(ctx, tripID); err != nil {
		return nil, upstream("consume pending proposal", err)
	}

	// Step 4: Resolve driver flags and build the full status rewrite set
	signups, err := store.ListSignupsForTrip(ctx, tripID)
	if err != nil {
		return nil, upstream("fetch signups", err)
	}
	signupsByID := make(map[string]model.Signup, len(signups))
	for _, s := range signups {
		signupsByID[s.ID] = s
	}

	updates, err := buildStatusUpdates(rosterIDs, waitlistIDs, signupsByID)
	if err != nil {
		return nil, err
	}

	// Step 5: Apply the rewrites with bounded concurrency
	updated, err := applyStatusUpdates(ctx, store, updates, logger)
	if err != nil {
		logger.Warn("Approval write phase incomplete",
			zap.String("trip_id", tripID),
			zap.Int("updated", updated),
			zap.Int("total", len(updates)),
			zap.Error(err))
		return nil, err
	}

	logger.Info("Approved proposal",
		zap.String("trip_id", tripID),
		zap.String("proposal_id", proposal.ID),
		zap.Int("updated", updated))

	return &ApproveResult{UpdatedCount: updated}, nil
}

// buildStatusUpdates assigns final statuses: roster members by driver flag,
// waitlist members numbered 1-based within their driver/non-driver sub-queue
// in submitted order
func buildStatusUpdates(rosterIDs, waitlistIDs []string, signupsByID map[string]model.Signup) ([]statusUpdate, error) {
	updates := make([]statusUpdate, 0, len(rosterIDs)+len(waitlistIDs))

	for _, id := range rosterIDs {
		s, ok := signupsByID[id]
		if !ok {
			return nil, fmt.Errorf("roster signup %s: %w", id, ErrParticipantNotFound)
		}
		updates = append(updates, statusUpdate{
			signupID: id,
			status:   model.RosterStatus(s.Driver).Encode(),
		})
	}

	driverPos, nonDriverPos := 0, 0
	for _, id := range waitlistIDs {
		s, ok := signupsByID[id]
		if !ok {
			return nil, fmt.Errorf("waitlist signup %s: %w", id, ErrParticipantNotFound)
		}

		var status model.Status
		if s.Driver {
			driverPos++
			status = model.WaitlistStatus(true, driverPos)
		} else {
			nonDriverPos++
			status = model.WaitlistStatus(false, nonDriverPos)
		}
		updates = append(updates, statusUpdate{signupID: id, status: status.Encode()})
	}

	return updates, nil
}

// applyStatusUpdates writes statuses with at most maxConcurrentStatusWrites
// in flight. Writes are independent; a failure does not stop the others and
// nothing is rolled back.
func applyStatusUpdates(ctx context.Context, store RecordStore, updates []statusUpdate, logger *zap.Logger) (int, error) {
	type writeResult struct {
		signupID string
		err      error
	}

	resultChan := make(chan writeResult, len(updates))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentStatusWrites)

	for _, update := range updates {
		wg.Add(1)
		go func(u statusUpdate) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			resultChan <- writeResult{
				signupID: u.signupID,
				err:      store.UpdateSignupStatus(ctx, u.signupID, u.status),
			}
		}(update)
	}

	wg.Wait()
	close(resultChan)

	updated := 0
	var firstErr error
	for result := range resultChan {
		if result.err != nil {
			logger.Warn("Status write failed",
				zap.String("signup_id", result.signupID),
				zap.Error(result.err))
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		updated++
	}

	if firstErr != nil {
		return updated, upstream("update signup statuses", firstErr)
	}
	return updated, nil
}

// sameIDSet reports whether a and b contain exactly the same identifiers,
// ignoring order and duplicates
func sameIDSet(a, b []string) bool {
	bSet := make(map[string]bool, len(b))
	for _, id := range b {
		bSet[id] = true
	}

	aSet := make(map[string]bool, len(a))
	for _, id := range a {
		if !bSet[id] {
			return false
		}
		aSet[id] = true
	}

	return len(aSet) == len(bSet)
}
