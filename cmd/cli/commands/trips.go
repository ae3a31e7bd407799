package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// TripsCmd creates the trips command
func TripsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "trips",
		Short: "List all trips with their capacities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := services.ListTrips(app.Ctx, app.Store, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d trips:\n\n", len(trips))
			for _, t := range trips {
				fmt.Printf("- %s (%s) - %d seats, %d driver slots, %d non-driver seats\n",
					t.Name, t.ID, t.Capacity, t.DriverSlots, t.NonDriverSlots())
			}
			fmt.Println()

			return nil
		},
	}
}
