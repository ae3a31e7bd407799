package services

import (
	"errors"
	"fmt"
)

// Domain refusals. Transport layers map these to client errors; anything
// else coming out of a service is an infrastructure fault.
var (
	ErrRosterFull             = errors.New("roster is already at capacity")
	ErrNoDriverSpots          = errors.New("no driver spots available")
	ErrNoNonDriverSpots       = errors.New("no non-driver spots available")
	ErrWaitlistEmpty          = errors.New("waitlist is empty")
	ErrNoDriversOnWaitlist    = errors.New("no drivers on the waitlist")
	ErrNoNonDriversOnWaitlist = errors.New("no non-drivers on the waitlist")
	ErrParticipantNotFound    = errors.New("participant not found")
	ErrNoPendingProposal      = errors.New("no pending proposal for this trip")
	ErrProposalMismatch       = errors.New("submitted allocation does not match the pending proposal")
)

// UpstreamError wraps a record store, cache or publisher failure so callers
// can tell infrastructure faults from domain refusals with errors.As.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}
