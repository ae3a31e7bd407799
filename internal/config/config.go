package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServerConfig controls the HTTP API listener
type ServerConfig struct {
	ListenAddr string `yaml:"listenAddr,omitempty"`
}

// AirtableConfig locates the trip and signup tables within an Airtable
// base. The API key is not configuration, it comes from the
// AIRTABLE_API_KEY environment variable.
type AirtableConfig struct {
	BaseID       string `yaml:"baseID,omitempty"`
	TripsTable   string `yaml:"tripsTable,omitempty"`
	SignupsTable string `yaml:"signupsTable,omitempty"`
	BaseURL      string `yaml:"baseURL,omitempty"`
}

// PostgresConfig locates the Postgres record store. URL may be left empty
// when the DATABASE_URL environment variable is set.
type PostgresConfig struct {
	URL string `yaml:"url,omitempty"`
}

// RecordStoreConfig selects and configures the record store backend
type RecordStoreConfig struct {
	Backend  string         `yaml:"backend" validate:"required,oneof=airtable postgres"`
	Airtable AirtableConfig `yaml:"airtable,omitempty"`
	Postgres PostgresConfig `yaml:"postgres,omitempty"`
}

// RedisConfig locates the shared proposal store. The password comes from
// the REDIS_PASSWORD environment variable.
type RedisConfig struct {
	Addr string `yaml:"addr,omitempty"`
	DB   int    `yaml:"db,omitempty" validate:"omitempty,min=0"`
}

// ProposalsConfig controls pending proposal expiry and storage
type ProposalsConfig struct {
	Backend      string      `yaml:"backend,omitempty" validate:"omitempty,oneof=memory redis"`
	TTLMinutes   int         `yaml:"ttlMinutes,omitempty" validate:"omitempty,min=1"`
	SweepSeconds int         `yaml:"sweepSeconds,omitempty" validate:"omitempty,min=1"`
	Redis        RedisConfig `yaml:"redis,omitempty"`
}

// TTL returns how long a pending proposal stays approvable
func (p ProposalsConfig) TTL() time.Duration {
	return time.Duration(p.TTLMinutes) * time.Minute
}

// SweepInterval returns how often expired proposals are cleared
func (p ProposalsConfig) SweepInterval() time.Duration {
	return time.Duration(p.SweepSeconds) * time.Second
}

// PublisherConfig controls the optional roster snapshot publisher
type PublisherConfig struct {
	Enabled         bool   `yaml:"enabled,omitempty"`
	SpreadsheetID   string `yaml:"spreadsheetID,omitempty"`
	SheetName       string `yaml:"sheetName,omitempty"`
	CredentialsFile string `yaml:"credentialsFile,omitempty"`
}

// Config represents the application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server,omitempty"`
	RecordStore RecordStoreConfig `yaml:"recordStore" validate:"required"`
	Proposals   ProposalsConfig   `yaml:"proposals,omitempty"`
	Publisher   PublisherConfig   `yaml:"publisher,omitempty"`
}

const (
	// BackendAirtable and BackendPostgres name the record store backends
	BackendAirtable = "airtable"
	BackendPostgres = "postgres"

	// ProposalsMemory and ProposalsRedis name the proposal store backends
	ProposalsMemory = "memory"
	ProposalsRedis  = "redis"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from trip_roster_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate runs struct validation plus the backend-specific checks the
// tags cannot express
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.RecordStore.Backend == BackendAirtable && cfg.RecordStore.Airtable.BaseID == "" {
		return fmt.Errorf("recordStore.airtable.baseID is required for the airtable backend")
	}
	if cfg.RecordStore.Backend == BackendPostgres &&
		cfg.RecordStore.Postgres.URL == "" && os.Getenv("DATABASE_URL") == "" {
		return fmt.Errorf("recordStore.postgres.url or DATABASE_URL is required for the postgres backend")
	}

	if cfg.Proposals.Backend == ProposalsRedis && cfg.Proposals.Redis.Addr == "" {
		return fmt.Errorf("proposals.redis.addr is required for the redis backend")
	}

	if cfg.Publisher.Enabled {
		if cfg.Publisher.SpreadsheetID == "" {
			return fmt.Errorf("publisher.spreadsheetID is required when the publisher is enabled")
		}
		if cfg.Publisher.CredentialsFile == "" {
			return fmt.Errorf("publisher.credentialsFile is required when the publisher is enabled")
		}
	}

	return nil
}

// PostgresURL resolves the Postgres connection string, preferring the
// config file over the DATABASE_URL environment variable
func (c *Config) PostgresURL() string {
	if c.RecordStore.Postgres.URL != "" {
		return c.RecordStore.Postgres.URL
	}
	return os.Getenv("DATABASE_URL")
}

func applyDefaults(cfg *Config) {
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}

	if cfg.RecordStore.Airtable.TripsTable == "" {
		cfg.RecordStore.Airtable.TripsTable = "Trips"
	}
	if cfg.RecordStore.Airtable.SignupsTable == "" {
		cfg.RecordStore.Airtable.SignupsTable = "Signups"
	}

	if cfg.Proposals.Backend == "" {
		cfg.Proposals.Backend = ProposalsMemory
	}
	if cfg.Proposals.TTLMinutes == 0 {
		cfg.Proposals.TTLMinutes = 10
	}
	if cfg.Proposals.SweepSeconds == 0 {
		cfg.Proposals.SweepSeconds = 60
	}

	if cfg.Publisher.SheetName == "" {
		cfg.Publisher.SheetName = "Roster"
	}
}

// findConfigFile searches for trip_roster_config.yaml in the current
// directory and the home directory
func findConfigFile() (string, error) {
	configFileName := "trip_roster_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
