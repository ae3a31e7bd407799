package sheetsclient

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/calebmorton/trip-roster/internal/config"
	"github.com/calebmorton/trip-roster/pkg/utils"
)

// Client wraps the Google Sheets API client used to publish roster snapshots
type Client struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewClient creates a Sheets client authenticated with a service account key.
// The publisher runs headless, so there is no interactive OAuth flow.
func NewClient(ctx context.Context, cfg config.PublisherConfig) (*Client, error) {
	httpClient, err := utils.ServiceAccountClient(ctx, cfg.CredentialsFile, utils.ScopeSheets)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheets http client: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
	}, nil
}

// ensureSheet creates the configured tab if the spreadsheet doesn't have it yet
func (c *Client) ensureSheet(ctx context.Context) error {
	spreadsheet, err := c.service.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == c.sheetName {
			return nil
		}
	}

	req := &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: c.sheetName,
			},
		},
	}

	batchUpdateRequest := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{req},
	}

	_, err = c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, batchUpdateRequest).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	return nil
}
