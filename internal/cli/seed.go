package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/fleetdeck/internal/wire"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Ensure the starter dataset is present and report collection sizes",
	Long: `Seeding runs on every start and only fills collections that are absent,
so this command never overwrites existing data. It reports what is stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// Touching any service runs first-start seeding through wire.
		ships, err := wire.FleetService().ListShips(ctx)
		if err != nil {
			return fmt.Errorf("failed to read ships: %w", err)
		}
		components, err := wire.FleetService().ListComponents(ctx)
		if err != nil {
			return fmt.Errorf("failed to read components: %w", err)
		}
		jobs, err := wire.JobService().ListJobs(ctx)
		if err != nil {
			return fmt.Errorf("failed to read jobs: %w", err)
		}
		feed, err := wire.NotificationService().List(ctx)
		if err != nil {
			return fmt.Errorf("failed to read notifications: %w", err)
		}

		fmt.Println("Collections:")
		fmt.Printf("  ships         %d\n", len(ships))
		fmt.Printf("  components    %d\n", len(components))
		fmt.Printf("  jobs          %d\n", len(jobs))
		fmt.Printf("  notifications %d\n", len(feed))
		return nil
	},
}

// SeedCmd returns the seed command.
func SeedCmd() *cobra.Command { return seedCmd }
