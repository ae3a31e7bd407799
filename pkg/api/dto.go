package api

import (
	"github.com/calebmorton/trip-roster/pkg/core/model"
)

// TripResponse is the wire form of a trip
type TripResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Capacity       int    `json:"capacity"`
	DriverSlots    int    `json:"driverSlots"`
	NonDriverSlots int    `json:"nonDriverSlots"`
}

func toTripResponse(t model.Trip) TripResponse {
	return TripResponse{
		ID:             t.ID,
		Name:           t.Name,
		Capacity:       t.Capacity,
		DriverSlots:    t.DriverSlots,
		NonDriverSlots: t.NonDriverSlots(),
	}
}

// SignupResponse is the wire form of a signup
type SignupResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Driver bool   `json:"driver"`
	Status string `json:"status"`
}

func toSignupResponse(s model.Signup) SignupResponse {
	return SignupResponse{
		ID:     s.ID,
		Name:   s.Name,
		Driver: s.Driver,
		Status: s.Status,
	}
}

func toSignupResponses(signups []model.Signup) []SignupResponse {
	out := make([]SignupResponse, 0, len(signups))
	for _, s := range signups {
		out = append(out, toSignupResponse(s))
	}
	return out
}

// ViewSignupsResponse is the live allocation state of one trip
type ViewSignupsResponse struct {
	Trip        TripResponse     `json:"trip"`
	Roster      []SignupResponse `json:"roster"`
	Waitlist    []SignupResponse `json:"waitlist"`
	Dropped     []SignupResponse `json:"dropped"`
	DriverCount int              `json:"driverCount"`
}

// ProposalResponse is a freshly drawn allocation awaiting approval
type ProposalResponse struct {
	ProposalID string           `json:"proposalID"`
	Roster     []SignupResponse `json:"roster"`
	Waitlist   []SignupResponse `json:"waitlist"`
}

// ApproveRequest carries the exact allocation the caller wants committed
type ApproveRequest struct {
	Roster   []string `json:"roster" binding:"required"`
	Waitlist []string `json:"waitlist"`
}

// ApproveResponse reports a committed allocation
type ApproveResponse struct {
	UpdatedCount int `json:"updatedCount"`
}

// PromoteResponse reports a waitlist promotion
type PromoteResponse struct {
	Promoted  SignupResponse `json:"promoted"`
	NewStatus string         `json:"newStatus"`
}

// DropResponse reports a soft removal
type DropResponse struct {
	ParticipantID string `json:"participantID"`
	Status        string `json:"status"`
}

// PublishResponse reports a roster snapshot pushed to the published sheet
type PublishResponse struct {
	TripID   string `json:"tripID"`
	TripName string `json:"tripName"`
	RowCount int    `json:"rowCount"`
}

// AssistantRequest is a free-text question about what the service can do
type AssistantRequest struct {
	Query string `json:"query"`
}
