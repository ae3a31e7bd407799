package commands

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/calebmorton/trip-roster/pkg/core/services"
)

// RandomizeCmd creates the randomize command
func RandomizeCmd(app *AppContext) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "randomize <trip_id>",
		Short: "Draw a fresh random roster for a trip, held for approval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(seed, 0))
			} else {
				rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			}

			result, err := services.RandomizeAllocation(app.Ctx, app.Store, app.Cache, rng, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Draw complete! Proposal %s is pending approval.\n", result.ProposalID)

			fmt.Printf("\nProposed roster (%d):\n", len(result.ProposedRoster))
			for i, s := range result.ProposedRoster {
				fmt.Printf("  %2d. %s (%s)\n", i+1, s.Name, roleLabel(s.Driver))
			}

			fmt.Printf("\nProposed waitlist (%d):\n", len(result.ProposedWaitlist))
			for i, s := range result.ProposedWaitlist {
				fmt.Printf("  %2d. %s (%s)\n", i+1, s.Name, roleLabel(s.Driver))
			}

			fmt.Printf("\nRun 'trip-roster approve %s' within %s to commit this draw.\n\n",
				args[0], app.Cfg.Proposals.TTL())

			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible draw")

	return cmd
}
