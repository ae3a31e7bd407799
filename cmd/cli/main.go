package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebmorton/trip-roster/cmd/cli/commands"
	"github.com/calebmorton/trip-roster/internal/config"
	"github.com/calebmorton/trip-roster/pkg/clients/airtableclient"
	"github.com/calebmorton/trip-roster/pkg/clients/sheetsclient"
	"github.com/calebmorton/trip-roster/pkg/core/proposals"
	"github.com/calebmorton/trip-roster/pkg/postgres"
	"github.com/calebmorton/trip-roster/pkg/utils/logging"
)

var (
	env        string
	verbose    bool
	configPath string
	app        *commands.AppContext
)

func main() {
	app = &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "trip-roster",
		Short: "Trip Roster CLI - Manage trip allocations",
		Long:  `A CLI tool for drawing, approving and maintaining trip rosters from signup records.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment name used to prefix log files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (defaults to trip_roster_config.yaml)")

	rootCmd.AddCommand(commands.ServeCmd(app))
	rootCmd.AddCommand(commands.TripsCmd(app))
	rootCmd.AddCommand(commands.RosterCmd(app))
	rootCmd.AddCommand(commands.RandomizeCmd(app))
	rootCmd.AddCommand(commands.ApproveCmd(app))
	rootCmd.AddCommand(commands.PromoteCmd(app))
	rootCmd.AddCommand(commands.DropCmd(app))
	rootCmd.AddCommand(commands.ReadmitCmd(app))
	rootCmd.AddCommand(commands.PublishCmd(app))
	rootCmd.AddCommand(commands.AssistantCmd(app))
	rootCmd.AddCommand(commands.SeedCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, config, record store, proposal cache and the
// optional publisher
func initApp() error {
	app.Ctx = context.Background()

	// .env is optional; its values feed the env lookups below
	envLoaded := godotenv.Load() == nil

	logger, err := logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	logger.Info("Starting application", zap.String("environment", env))
	if !envLoaded {
		logger.Debug("No .env file found, using process environment")
	}

	logger.Info("Loading configuration")
	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Cfg = cfg
	logger.Debug("Configuration loaded successfully")

	switch cfg.RecordStore.Backend {
	case config.BackendAirtable:
		logger.Info("Initializing Airtable record store",
			zap.String("base_id", cfg.RecordStore.Airtable.BaseID))
		client, err := airtableclient.NewClient(cfg.RecordStore.Airtable, os.Getenv("AIRTABLE_API_KEY"))
		if err != nil {
			return fmt.Errorf("failed to create airtable client: %w", err)
		}
		app.Store = client

	case config.BackendPostgres:
		logger.Info("Connecting to Postgres record store")
		db, err := postgres.NewDB(app.Ctx, cfg.PostgresURL())
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := db.RunMigrations(app.Ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Store = db
	}

	switch cfg.Proposals.Backend {
	case config.ProposalsRedis:
		logger.Info("Connecting to Redis proposal store",
			zap.String("addr", cfg.Proposals.Redis.Addr))
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Proposals.Redis.Addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       cfg.Proposals.Redis.DB,
		})
		if err := client.Ping(app.Ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}
		app.Cache = proposals.NewRedisStore(client, cfg.Proposals.TTL())

	default:
		app.Cache = proposals.NewMemoryStore(cfg.Proposals.TTL())
	}

	if cfg.Publisher.Enabled {
		logger.Info("Initializing roster publisher",
			zap.String("spreadsheet_id", cfg.Publisher.SpreadsheetID))
		publisher, err := sheetsclient.NewClient(app.Ctx, cfg.Publisher)
		if err != nil {
			return fmt.Errorf("failed to create sheets client: %w", err)
		}
		app.Publisher = publisher
	}

	return nil
}
