package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/fleetdeck/internal/derive"
	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/primary"
	"github.com/example/fleetdeck/internal/validate"
	"github.com/example/fleetdeck/internal/wire"
)

var componentCmd = &cobra.Command{
	Use:   "component",
	Short: "Manage ship components",
	Long:  "List, add, update, and delete components installed on ships",
}

var componentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List components, optionally for one ship",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		shipID, _ := cmd.Flags().GetString("ship")

		components, err := listComponents(ctx, shipID)
		if err != nil {
			return fmt.Errorf("failed to list components: %w", err)
		}

		if len(components) == 0 {
			fmt.Println("No components found")
			return nil
		}

		now := time.Now()
		fmt.Printf("Found %d component(s):\n\n", len(components))
		for _, c := range components {
			overdueMark := ""
			if derive.IsOverdue(c, now) {
				overdueMark = color.New(color.FgRed).Sprint(" [OVERDUE]")
			}
			fmt.Printf("%-40s %-16s ship %-8s next %s%s\n", c.ID, c.Name, c.ShipID, c.NextMaintenanceDate, overdueMark)
		}
		return nil
	},
}

var componentAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a component to a ship",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, err := requireUser(ctx)
		if err != nil {
			return err
		}
		if err := requireAction(user, "create_component"); err != nil {
			return err
		}

		req := primary.CreateComponentRequest{Name: args[0]}
		req.ShipID, _ = cmd.Flags().GetString("ship")
		req.SerialNumber, _ = cmd.Flags().GetString("serial")
		req.InstallDate, _ = cmd.Flags().GetString("installed")
		req.LastMaintenanceDate, _ = cmd.Flags().GetString("last-maintenance")
		req.NextMaintenanceDate, _ = cmd.Flags().GetString("next-maintenance")
		req.Status, _ = cmd.Flags().GetString("status")
		req.Description, _ = cmd.Flags().GetString("description")

		if err := validate.Component(req); err != nil {
			return fmt.Errorf("invalid component: %w", err)
		}

		// Referential check lives here, not in the repository.
		ship, err := wire.FleetService().GetShip(ctx, req.ShipID)
		if err != nil {
			return err
		}
		if ship == nil {
			return fmt.Errorf("ship %s not found", req.ShipID)
		}

		component, err := wire.FleetService().AddComponent(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to add component: %w", err)
		}

		fmt.Printf("✓ Added component %s: %s on %s\n", component.ID, component.Name, ship.Name)
		return nil
	},
}

var componentUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update fields of a component",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, err := requireUser(ctx)
		if err != nil {
			return err
		}
		if err := requireAction(user, "edit_component"); err != nil {
			return err
		}

		req := primary.UpdateComponentRequest{
			ShipID:              changedString(cmd, "ship"),
			Name:                changedString(cmd, "name"),
			SerialNumber:        changedString(cmd, "serial"),
			InstallDate:         changedString(cmd, "installed"),
			LastMaintenanceDate: changedString(cmd, "last-maintenance"),
			NextMaintenanceDate: changedString(cmd, "next-maintenance"),
			Status:              changedString(cmd, "status"),
			Description:         changedString(cmd, "description"),
		}

		component, err := wire.FleetService().UpdateComponent(ctx, args[0], req)
		if err != nil {
			return fmt.Errorf("failed to update component: %w", err)
		}
		if component == nil {
			fmt.Printf("Component %s not found, nothing updated\n", args[0])
			return nil
		}

		fmt.Printf("✓ Updated component %s: %s\n", component.ID, component.Name)
		return nil
	},
}

var componentDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a component (jobs are left in place)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, err := requireUser(ctx)
		if err != nil {
			return err
		}
		if err := requireAction(user, "delete_component"); err != nil {
			return err
		}

		if err := wire.FleetService().DeleteComponent(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete component: %w", err)
		}

		fmt.Printf("✓ Deleted component %s\n", args[0])
		return nil
	},
}

func listComponents(ctx context.Context, shipID string) ([]models.Component, error) {
	if shipID != "" {
		return wire.FleetService().ListComponentsByShip(ctx, shipID)
	}
	return wire.FleetService().ListComponents(ctx)
}

func init() {
	componentListCmd.Flags().String("ship", "", "Only components on this ship")

	componentAddCmd.Flags().String("ship", "", "Ship the component is installed on")
	componentAddCmd.Flags().String("serial", "", "Serial number")
	componentAddCmd.Flags().String("installed", "", "Install date (YYYY-MM-DD)")
	componentAddCmd.Flags().String("last-maintenance", "", "Last maintenance date (YYYY-MM-DD)")
	componentAddCmd.Flags().String("next-maintenance", "", "Next maintenance date (YYYY-MM-DD)")
	componentAddCmd.Flags().String("status", "Active", "Component status")
	componentAddCmd.Flags().StringP("description", "d", "", "Component description")

	componentUpdateCmd.Flags().String("ship", "", "Ship the component is installed on")
	componentUpdateCmd.Flags().String("name", "", "Component name")
	componentUpdateCmd.Flags().String("serial", "", "Serial number")
	componentUpdateCmd.Flags().String("installed", "", "Install date (YYYY-MM-DD)")
	componentUpdateCmd.Flags().String("last-maintenance", "", "Last maintenance date (YYYY-MM-DD)")
	componentUpdateCmd.Flags().String("next-maintenance", "", "Next maintenance date (YYYY-MM-DD)")
	componentUpdateCmd.Flags().String("status", "", "Component status")
	componentUpdateCmd.Flags().StringP("description", "d", "", "Component description")
}

// ComponentCmd returns the component command tree.
func ComponentCmd() *cobra.Command {
	componentCmd.AddCommand(componentListCmd)
	componentCmd.AddCommand(componentAddCmd)
	componentCmd.AddCommand(componentUpdateCmd)
	componentCmd.AddCommand(componentDeleteCmd)
	return componentCmd
}
