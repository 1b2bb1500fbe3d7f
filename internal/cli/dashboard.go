package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/fleetdeck/internal/wire"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the fleet KPI dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		now := time.Now()

		kpis, err := wire.DashboardService().KPIs(ctx, now)
		if err != nil {
			return fmt.Errorf("failed to compute KPIs: %w", err)
		}

		fmt.Println("Fleet Maintenance Dashboard")
		fmt.Println()
		fmt.Printf("Ships:      %d total, %d active\n", kpis.TotalShips, kpis.ActiveShips)
		fmt.Printf("Components: %d total, %d overdue\n", kpis.TotalComponents, kpis.OverdueComponents)
		fmt.Printf("Jobs:       %d total, %d active, %d completed\n", kpis.TotalJobs, kpis.ActiveJobs, kpis.CompletedJobs)
		fmt.Println()
		fmt.Printf("Fleet efficiency:       %3d%%\n", kpis.FleetEfficiency)
		fmt.Printf("Maintenance compliance: %3d%%\n", kpis.MaintenanceCompliance)
		fmt.Printf("Completion rate:        %3d%%\n", kpis.CompletionRate)

		if kpis.CriticalJobs > 0 || kpis.OverdueComponents > 0 {
			fmt.Println()
			alert := color.New(color.FgRed, color.Bold)
			if kpis.CriticalJobs > 0 {
				alert.Printf("! %d critical job(s) need attention\n", kpis.CriticalJobs)
			}
			if kpis.OverdueComponents > 0 {
				alert.Printf("! %d component(s) overdue for maintenance\n", kpis.OverdueComponents)
			}
		}

		fmt.Println()
		fmt.Println("Open jobs by priority:")
		fmt.Printf("  Critical %d  High %d  Medium %d  Low %d\n",
			kpis.CriticalJobs, kpis.HighJobs, kpis.MediumJobs, kpis.LowJobs)

		upcoming, err := wire.DashboardService().UpcomingHighPriority(ctx, now)
		if err != nil {
			return err
		}
		if len(upcoming) > 0 {
			fmt.Println()
			fmt.Println("Upcoming high-priority work:")
			for _, v := range upcoming {
				where := v.ShipName
				if v.ComponentName != "" {
					where += " / " + v.ComponentName
				}
				fmt.Printf("  %s %s %s (%s) - %s\n",
					v.Job.ScheduledDate, colorizePriority(v.Job.Priority), v.Job.Type, where, v.Job.Description)
			}
		}

		recent, err := wire.DashboardService().RecentJobs(ctx, 6)
		if err != nil {
			return err
		}
		if len(recent) > 0 {
			fmt.Println()
			fmt.Println("Recent jobs:")
			for _, v := range recent {
				fmt.Printf("  %s [%s] %s - %s\n",
					v.Job.ID, colorizeJobStatus(v.Job.Status), v.ShipName, v.Job.Description)
			}
		}

		return nil
	},
}

// DashboardCmd returns the dashboard command.
func DashboardCmd() *cobra.Command { return dashboardCmd }
