package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/internal/config"
	"github.com/calebmorton/trip-roster/pkg/core/proposals"
	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// AppContext holds the application dependencies shared across all commands.
// Publisher is nil when roster publishing is disabled in config.
type AppContext struct {
	Cfg       *config.Config
	Store     services.RecordStore
	Cache     proposals.Store
	Publisher services.RosterPublisher
	Logger    *zap.Logger
	Ctx       context.Context
}
