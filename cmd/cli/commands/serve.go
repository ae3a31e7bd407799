package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/pkg/api"
	"github.com/calebmorton/trip-roster/pkg/core/proposals"
)

// ServeCmd creates the serve command running the HTTP API
func ServeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the trip roster HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gin.SetMode(gin.ReleaseMode)

			passphrase := os.Getenv("TRIP_ROSTER_PASSPHRASE")
			if passphrase == "" {
				app.Logger.Warn("TRIP_ROSTER_PASSPHRASE is not set, API auth is disabled")
			}

			router := api.NewRouter(
				api.Config{Passphrase: passphrase},
				api.Dependencies{
					Store:     app.Store,
					Cache:     app.Cache,
					Publisher: app.Publisher,
					Logger:    app.Logger,
				},
			)

			ctx, stop := signal.NotifyContext(app.Ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			go proposals.RunSweeper(ctx, app.Cache, app.Cfg.Proposals.SweepInterval(), app.Logger)

			srv := &http.Server{
				Addr:              app.Cfg.Server.ListenAddr,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       10 * time.Second,
				WriteTimeout:      30 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				app.Logger.Info("API server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-ctx.Done():
			}

			app.Logger.Info("Shutting down API server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
}
