package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/core/proposals"
	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// Config carries the server settings the router needs
type Config struct {
	Passphrase string
}

// Dependencies are the backing services the handlers share
type Dependencies struct {
	Store     services.RecordStore
	Cache     proposals.Store
	Publisher services.RosterPublisher
	Logger    *zap.Logger
}

// NewRouter wires middleware, handlers and routes and returns the engine.
// This is the API composition root; handlers stay unaware of which record
// store or proposal cache backs them.
func NewRouter(cfg Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(deps.Logger))

	h := &handlers{
		store:     deps.Store,
		cache:     deps.Cache,
		publisher: deps.Publisher,
		logger:    deps.Logger,
	}

	router.GET("/health", h.health)

	authed := router.Group("/", PassphraseAuth(cfg.Passphrase))
	{
		authed.GET("/trips", h.listTrips)
		authed.GET("/trips/:tripID/signups", h.viewSignups)
		authed.POST("/trips/:tripID/randomize", h.randomize)
		authed.POST("/trips/:tripID/approve", h.approve)
		authed.POST("/trips/:tripID/promote", h.promote)
		authed.POST("/trips/:tripID/signups/:signupID/drop", h.drop)
		authed.POST("/trips/:tripID/signups/:signupID/readmit", h.readmit)
		authed.POST("/trips/:tripID/publish", h.publish)
		authed.POST("/assistant", h.assistant)
	}

	return router
}
