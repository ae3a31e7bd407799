package airtableclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/calebmorton/trip-roster/internal/config"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// Client talks to the Airtable REST API for a single base. It implements the
// record store the core services read trips and signups through.
type Client struct {
	baseURL      string
	apiKey       string
	baseID       string
	tripsTable   string
	signupsTable string
	session      *http.Client
}

// NewClient creates an Airtable client for the configured base. The API key
// comes from the AIRTABLE_API_KEY environment variable, not the config file.
func NewClient(cfg config.AirtableConfig, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("airtable api key is empty")
	}
	if cfg.BaseID == "" {
		return nil, fmt.Errorf("airtable base ID is empty")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		apiKey:       apiKey,
		baseID:       cfg.BaseID,
		tripsTable:   cfg.TripsTable,
		signupsTable: cfg.SignupsTable,
		session:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// tableURL builds the record collection URL for a table in the client's base
func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
}
