package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// PublishCmd creates the publish command
func PublishCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <trip_id>",
		Short: "Push a trip's committed roster to the shared Google Sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Publisher == nil {
				return fmt.Errorf("roster publishing is disabled, enable it in the config file")
			}

			published, err := services.PublishRoster(app.Ctx, app.Store, app.Publisher, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Published %d roster rows for %s to the sheet.\n\n",
				len(published.Rows), published.TripName)

			return nil
		},
	}
}
