package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/fleetdeck/internal/ports/primary"
	"github.com/example/fleetdeck/internal/validate"
	"github.com/example/fleetdeck/internal/wire"
)

var shipCmd = &cobra.Command{
	Use:   "ship",
	Short: "Manage ships in the fleet",
	Long:  "List, show, add, update, and delete ships",
}

var shipListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all ships",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ships, err := wire.FleetService().ListShips(ctx)
		if err != nil {
			return fmt.Errorf("failed to list ships: %w", err)
		}

		if len(ships) == 0 {
			fmt.Println("No ships found")
			return nil
		}

		fmt.Printf("Found %d ship(s):\n\n", len(ships))
		for _, s := range ships {
			fmt.Printf("%-40s %-16s IMO %-9s %-8s %s\n", s.ID, s.Name, s.IMO, s.Flag, colorizeShipStatus(s.Status))
		}
		return nil
	},
}

var shipShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show ship details with its components and jobs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ship, err := wire.FleetService().GetShip(ctx, args[0])
		if err != nil {
			return err
		}
		if ship == nil {
			return fmt.Errorf("ship %s not found", args[0])
		}

		fmt.Printf("Ship: %s (%s)\n", ship.Name, ship.ID)
		fmt.Printf("IMO: %s  Flag: %s  Status: %s\n", ship.IMO, ship.Flag, colorizeShipStatus(ship.Status))
		fmt.Printf("Registered: %s\n", ship.RegistrationDate)
		if ship.Description != "" {
			fmt.Printf("Description: %s\n", ship.Description)
		}
		fmt.Println()

		components, err := wire.FleetService().ListComponentsByShip(ctx, ship.ID)
		if err != nil {
			return fmt.Errorf("failed to get components: %w", err)
		}
		if len(components) == 0 {
			fmt.Println("No components installed")
		} else {
			fmt.Printf("Components (%d):\n", len(components))
			for _, c := range components {
				fmt.Printf("  %s %s [%s] next maintenance %s\n", c.ID, c.Name, c.Status, c.NextMaintenanceDate)
			}
		}

		jobs, err := wire.JobService().ListJobsByShip(ctx, ship.ID)
		if err != nil {
			return fmt.Errorf("failed to get jobs: %w", err)
		}
		if len(jobs) > 0 {
			fmt.Printf("\nJobs (%d):\n", len(jobs))
			for _, j := range jobs {
				fmt.Printf("  %s %s %s [%s] scheduled %s\n", j.ID, j.Type, colorizePriority(j.Priority), colorizeJobStatus(j.Status), j.ScheduledDate)
			}
		}

		return nil
	},
}

var shipAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new ship",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, err := requireUser(ctx)
		if err != nil {
			return err
		}
		if err := requireAction(user, "create_ship"); err != nil {
			return err
		}

		req := primary.CreateShipRequest{Name: args[0]}
		req.IMO, _ = cmd.Flags().GetString("imo")
		req.Flag, _ = cmd.Flags().GetString("flag")
		req.Status, _ = cmd.Flags().GetString("status")
		req.RegistrationDate, _ = cmd.Flags().GetString("registered")
		req.Description, _ = cmd.Flags().GetString("description")

		if err := validate.Ship(req); err != nil {
			return fmt.Errorf("invalid ship: %w", err)
		}

		ship, err := wire.FleetService().AddShip(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to add ship: %w", err)
		}

		fmt.Printf("✓ Added ship %s: %s\n", ship.ID, ship.Name)
		return nil
	},
}

var shipUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update fields of a ship",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, err := requireUser(ctx)
		if err != nil {
			return err
		}
		if err := requireAction(user, "edit_ship"); err != nil {
			return err
		}

		req := primary.UpdateShipRequest{
			Name:             changedString(cmd, "name"),
			IMO:              changedString(cmd, "imo"),
			Flag:             changedString(cmd, "flag"),
			Status:           changedString(cmd, "status"),
			RegistrationDate: changedString(cmd, "registered"),
			Description:      changedString(cmd, "description"),
		}

		ship, err := wire.FleetService().UpdateShip(ctx, args[0], req)
		if err != nil {
			return fmt.Errorf("failed to update ship: %w", err)
		}
		if ship == nil {
			fmt.Printf("Ship %s not found, nothing updated\n", args[0])
			return nil
		}

		fmt.Printf("✓ Updated ship %s: %s\n", ship.ID, ship.Name)
		return nil
	},
}

var shipDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a ship (components and jobs are left in place)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, err := requireUser(ctx)
		if err != nil {
			return err
		}
		if err := requireAction(user, "delete_ship"); err != nil {
			return err
		}

		if err := wire.FleetService().DeleteShip(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete ship: %w", err)
		}

		fmt.Printf("✓ Deleted ship %s\n", args[0])
		return nil
	},
}

func init() {
	shipAddCmd.Flags().String("imo", "", "IMO number")
	shipAddCmd.Flags().String("flag", "", "Flag state")
	shipAddCmd.Flags().String("status", "Active", "Ship status")
	shipAddCmd.Flags().String("registered", "", "Registration date (YYYY-MM-DD)")
	shipAddCmd.Flags().StringP("description", "d", "", "Ship description")

	shipUpdateCmd.Flags().String("name", "", "Ship name")
	shipUpdateCmd.Flags().String("imo", "", "IMO number")
	shipUpdateCmd.Flags().String("flag", "", "Flag state")
	shipUpdateCmd.Flags().String("status", "", "Ship status")
	shipUpdateCmd.Flags().String("registered", "", "Registration date (YYYY-MM-DD)")
	shipUpdateCmd.Flags().StringP("description", "d", "", "Ship description")
}

// ShipCmd returns the ship command tree.
func ShipCmd() *cobra.Command {
	shipCmd.AddCommand(shipListCmd)
	shipCmd.AddCommand(shipShowCmd)
	shipCmd.AddCommand(shipAddCmd)
	shipCmd.AddCommand(shipUpdateCmd)
	shipCmd.AddCommand(shipDeleteCmd)
	return shipCmd
}
