package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// AssistantCmd creates the assistant command
func AssistantCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assistant <question...>",
		Short: "Ask which roster action fits what you are trying to do",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := services.DescribeActions(app.Logger, strings.Join(args, " "))

			fmt.Printf("\n%s\n\n", reply.Answer)
			for _, action := range reply.Actions {
				fmt.Printf("  %-12s %s\n", action.Name, action.Description)
			}
			fmt.Println()

			return nil
		},
	}
}
