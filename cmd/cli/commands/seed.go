package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calebmorton/trip-roster/pkg/core/model"
	"github.com/calebmorton/trip-roster/pkg/postgres"
)

type seedFile struct {
	Trips []struct {
		ID                string `json:"id"`
		Name              string `json:"name"`
		Capacity          int    `json:"capacity"`
		DriverSlots       int    `json:"driver_slots"`
		NonDriverCapacity int    `json:"non_driver_capacity"`
	} `json:"trips"`
	Signups []struct {
		ID     string `json:"id"`
		TripID string `json:"trip_id"`
		Name   string `json:"name"`
		Driver bool   `json:"driver"`
		Status string `json:"status"`
	} `json:"signups"`
}

// SeedCmd creates the seed command for loading fixture data into Postgres
func SeedCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.json>",
		Short: "Load trips and signups from a JSON file into the Postgres store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, ok := app.Store.(*postgres.DB)
			if !ok {
				return fmt.Errorf("seed requires the postgres record store backend")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read seed file: %w", err)
			}

			var seed seedFile
			if err := json.Unmarshal(data, &seed); err != nil {
				return fmt.Errorf("failed to parse seed file: %w", err)
			}

			for _, t := range seed.Trips {
				trip := model.Trip{
					ID:                t.ID,
					Name:              t.Name,
					Capacity:          t.Capacity,
					DriverSlots:       t.DriverSlots,
					NonDriverCapacity: t.NonDriverCapacity,
				}
				if err := db.InsertTrip(app.Ctx, trip); err != nil {
					return err
				}
			}

			signups := make([]model.Signup, 0, len(seed.Signups))
			for _, s := range seed.Signups {
				signups = append(signups, model.Signup{
					ID:     s.ID,
					TripID: s.TripID,
					Name:   s.Name,
					Driver: s.Driver,
					Status: s.Status,
				})
			}
			if err := db.InsertSignups(app.Ctx, signups); err != nil {
				return err
			}

			fmt.Printf("\n✓ Seeded %d trips and %d signups.\n\n", len(seed.Trips), len(seed.Signups))

			return nil
		},
	}
}
