package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// ApproveCmd creates the approve command
func ApproveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <trip_id>",
		Short: "Commit the trip's pending draw, writing statuses to the record store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tripID := args[0]

			// The CLI always approves the draw exactly as it was stored.
			// Echoing the proposal's own id sets back through the service
			// keeps the same mismatch guard the API enforces.
			proposal, ok, err := app.Cache.Get(app.Ctx, tripID)
			if err != nil {
				return fmt.Errorf("failed to read pending proposal: %w", err)
			}
			if !ok {
				return fmt.Errorf("no pending proposal for trip %s, run randomize first", tripID)
			}

			result, err := services.ApproveProposal(app.Ctx, app.Store, app.Cache, app.Logger,
				tripID, proposal.RosterIDs, proposal.WaitlistIDs)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Allocation committed! %d signup statuses written.\n\n", result.UpdatedCount)

			return nil
		},
	}
}
