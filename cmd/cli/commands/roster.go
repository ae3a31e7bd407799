package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmorton/trip-roster/pkg/core/model"
	"github.com/calebmorton/trip-roster/pkg/core/services"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// RosterCmd creates the roster command
func RosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "roster <trip_id>",
		Short: "Show a trip's current roster, waitlist and dropped participants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ViewSignups(app.Ctx, app.Store, app.Logger, args[0])
			if err != nil {
				return err
			}

			trip := result.Trip
			fmt.Printf("\n%s (%s)\n", trip.Name, trip.ID)
			fmt.Printf("Capacity: %d seats (%d driver, %d non-driver)\n",
				trip.Capacity, trip.DriverSlots, trip.NonDriverSlots())
			fmt.Printf("Filled:   %d/%d, %d drivers on board\n",
				len(result.Roster), trip.Capacity, result.DriverCount)

			width := nameColumnWidth(result.All)
			printSection("Roster", result.Roster, width)
			printSection("Waitlist", result.Waitlist, width)
			printSection("Dropped", result.Dropped, width)
			fmt.Println()

			return nil
		},
	}
}

func printSection(title string, signups []model.Signup, width int) {
	fmt.Printf("\n%s (%d):\n", title, len(signups))
	if len(signups) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, s := range signups {
		status := model.ParseStatus(s.Status)
		fmt.Printf("  %-*s %-11s %s%s%s\n",
			width, s.Name, roleLabel(s.Driver), statusColor(status.Kind), s.Status, colorReset)
	}
}

// statusColor picks the display colour for a status class
func statusColor(kind model.StatusKind) string {
	switch kind {
	case model.StatusRoster:
		return colorGreen
	case model.StatusWaitlist:
		return colorYellow
	case model.StatusDropped:
		return colorDim
	}
	return colorReset
}

// roleLabel renders a signup's eligibility flag for display
func roleLabel(driver bool) string {
	if driver {
		return "driver"
	}
	return "non-driver"
}

// nameColumnWidth sizes the name column to the widest name on the list
func nameColumnWidth(signups []model.Signup) int {
	width := 20
	for _, s := range signups {
		if len(s.Name) > width {
			width = len(s.Name)
		}
	}
	return width + 2
}
