package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// DropCmd creates the drop command
func DropCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "drop <trip_id> <participant_id>",
		Short: "Soft-remove a participant, stamping today's date on their record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.DropParticipant(app.Ctx, app.Store, app.Logger, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Dropped participant %s (%s). Their seat is open for promotion.\n\n",
				result.ParticipantID, result.Status)

			return nil
		},
	}
}
