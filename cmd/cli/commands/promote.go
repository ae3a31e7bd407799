package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// PromoteCmd creates the promote command
func PromoteCmd(app *AppContext) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "promote <trip_id>",
		Short: "Move the next waitlisted participant onto the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tripID := args[0]

			var result *services.PromoteResult
			var err error
			switch role {
			case "":
				result, err = services.PromoteNext(app.Ctx, app.Store, app.Logger, tripID)
			case "driver":
				result, err = services.PromoteDriver(app.Ctx, app.Store, app.Logger, tripID)
			case "nondriver":
				result, err = services.PromoteNonDriver(app.Ctx, app.Store, app.Logger, tripID)
			default:
				return fmt.Errorf("role must be driver or nondriver, got: %s", role)
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Promoted %s to the roster as %s.\n\n", result.Promoted.Name, result.NewStatus)

			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Restrict promotion to driver or nondriver")

	return cmd
}
