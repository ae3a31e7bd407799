package sheetsclient

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// PublishRoster writes a roster snapshot to the configured tab, creating the
// tab if needed. The whole tab is cleared first so rows from a previously
// larger roster don't linger below the fresh data.
func (c *Client) PublishRoster(ctx context.Context, published *services.PublishedRoster) error {
	if err := c.ensureSheet(ctx); err != nil {
		return err
	}

	clearRange := fmt.Sprintf("'%s'", c.sheetName)
	_, err := c.service.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	values := [][]interface{}{
		{published.TripName},
		{},
		{"Name", "Role", "Status"},
	}
	for _, row := range published.Rows {
		values = append(values, []interface{}{row.Name, row.Role, row.Status})
	}

	valueRange := &sheets.ValueRange{
		Values: values,
	}

	writeRange := fmt.Sprintf("'%s'!A1", c.sheetName)
	_, err = c.service.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write roster rows: %w", err)
	}

	return nil
}
