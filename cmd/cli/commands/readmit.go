package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// ReadmitCmd creates the readmit command
func ReadmitCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "readmit <trip_id> <participant_id>",
		Short: "Return a dropped participant to the roster if a seat fits them",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ReadmitParticipant(app.Ctx, app.Store, app.Logger, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Readmitted %s to the roster as %s.\n\n", result.Promoted.Name, result.NewStatus)

			return nil
		},
	}
}
