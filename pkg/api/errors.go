package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/roster"
	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// respondServiceError maps core service errors onto HTTP statuses.
// Allocation rule violations are the caller's problem (400), missing
// entities are 404, a stale approval is a conflict (409) and record store
// or publisher failures surface as 502 so callers can tell "you can't do
// that" apart from "the backend is down".
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var upstreamErr *services.UpstreamError

	switch {
	case errors.Is(err, services.ErrNoPendingProposal),
		errors.Is(err, services.ErrParticipantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrProposalMismatch):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, roster.ErrInvalidCapacity),
		errors.Is(err, roster.ErrEmptyPool),
		errors.Is(err, services.ErrRosterFull),
		errors.Is(err, services.ErrNoDriverSpots),
		errors.Is(err, services.ErrNoNonDriverSpots),
		errors.Is(err, services.ErrWaitlistEmpty),
		errors.Is(err, services.ErrNoDriversOnWaitlist),
		errors.Is(err, services.ErrNoNonDriversOnWaitlist):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.As(err, &upstreamErr):
		logger.Error("upstream failure", zap.String("requestID", c.GetString(requestIDKey)), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		logger.Error("unhandled service error", zap.String("requestID", c.GetString(requestIDKey)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
