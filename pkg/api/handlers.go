package api

import (
	"math/rand/v2"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/proposals"
	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// handlers carries the dependencies every endpoint needs. publisher is nil
// when roster publishing is disabled in config.
type handlers struct {
	store     services.RecordStore
	cache     proposals.Store
	publisher services.RosterPublisher
	logger    *zap.Logger
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) listTrips(c *gin.Context) {
	trips, err := services.ListTrips(c.Request.Context(), h.store, h.logger)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	out := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) viewSignups(c *gin.Context) {
	result, err := services.ViewSignups(c.Request.Context(), h.store, h.logger, c.Param("tripID"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ViewSignupsResponse{
		Trip:        toTripResponse(result.Trip),
		Roster:      toSignupResponses(result.Roster),
		Waitlist:    toSignupResponses(result.Waitlist),
		Dropped:     toSignupResponses(result.Dropped),
		DriverCount: result.DriverCount,
	})
}

func (h *handlers) randomize(c *gin.Context) {
	// Each request draws from its own generator; only the CLI needs
	// reproducible draws.
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	result, err := services.RandomizeAllocation(c.Request.Context(), h.store, h.cache, rng, h.logger, c.Param("tripID"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ProposalResponse{
		ProposalID: result.ProposalID,
		Roster:     toSignupResponses(result.ProposedRoster),
		Waitlist:   toSignupResponses(result.ProposedWaitlist),
	})
}

func (h *handlers) approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := services.ApproveProposal(c.Request.Context(), h.store, h.cache, h.logger, c.Param("tripID"), req.Roster, req.Waitlist)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ApproveResponse{UpdatedCount: result.UpdatedCount})
}

func (h *handlers) promote(c *gin.Context) {
	ctx := c.Request.Context()
	tripID := c.Param("tripID")

	var result *services.PromoteResult
	var err error

	switch role := c.Query("role"); role {
	case "":
		result, err = services.PromoteNext(ctx, h.store, h.logger, tripID)
	case "driver":
		result, err = services.PromoteDriver(ctx, h.store, h.logger, tripID)
	case "nondriver":
		result, err = services.PromoteNonDriver(ctx, h.store, h.logger, tripID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be driver or nondriver"})
		return
	}
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, PromoteResponse{
		Promoted:  toSignupResponse(result.Promoted),
		NewStatus: result.NewStatus,
	})
}

func (h *handlers) drop(c *gin.Context) {
	result, err := services.DropParticipant(c.Request.Context(), h.store, h.logger, c.Param("tripID"), c.Param("signupID"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, DropResponse{
		ParticipantID: result.ParticipantID,
		Status:        result.Status,
	})
}

func (h *handlers) readmit(c *gin.Context) {
	result, err := services.ReadmitParticipant(c.Request.Context(), h.store, h.logger, c.Param("tripID"), c.Param("signupID"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, PromoteResponse{
		Promoted:  toSignupResponse(result.Promoted),
		NewStatus: result.NewStatus,
	})
}

func (h *handlers) publish(c *gin.Context) {
	if h.publisher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "roster publishing is disabled"})
		return
	}

	published, err := services.PublishRoster(c.Request.Context(), h.store, h.publisher, h.logger, c.Param("tripID"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, PublishResponse{
		TripID:   published.TripID,
		TripName: published.TripName,
		RowCount: len(published.Rows),
	})
}

func (h *handlers) assistant(c *gin.Context) {
	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	reply := services.DescribeActions(h.logger, req.Query)
	c.JSON(http.StatusOK, reply)
}
