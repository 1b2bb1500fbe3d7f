package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/fleetdeck/internal/derive"
	"github.com/example/fleetdeck/internal/wire"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Show scheduled jobs for a month or a single day",
	Long: `Show which days of a month carry scheduled jobs, with a status
breakdown. With --day, list the jobs scheduled on that date instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if day, _ := cmd.Flags().GetString("day"); day != "" {
			when, ok := derive.ParseWhen(day)
			if !ok {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", day)
			}
			views, err := wire.DashboardService().JobsOnDay(ctx, when)
			if err != nil {
				return fmt.Errorf("failed to look up jobs: %w", err)
			}
			if len(views) == 0 {
				fmt.Printf("No jobs scheduled on %s\n", day)
				return nil
			}
			fmt.Printf("Jobs on %s:\n\n", day)
			for _, v := range views {
				fmt.Printf("  %s %s %s [%s] %s / %s\n",
					v.Job.ID, v.Job.Type, colorizePriority(v.Job.Priority), colorizeJobStatus(v.Job.Status), v.ShipName, v.ComponentName)
			}
			return nil
		}

		now := time.Now()
		year, month := now.Year(), now.Month()
		if len(args) == 1 {
			parsed, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month %q, want YYYY-MM", args[0])
			}
			year, month = parsed.Year(), parsed.Month()
		}

		summary, err := wire.DashboardService().Month(ctx, year, month)
		if err != nil {
			return fmt.Errorf("failed to summarize month: %w", err)
		}

		fmt.Printf("%s %d\n\n", month, year)
		if len(summary.DaysWithJobs) == 0 {
			fmt.Println("No jobs scheduled this month")
			return nil
		}

		fmt.Print("Days with jobs:")
		for _, d := range summary.DaysWithJobs {
			fmt.Printf(" %d", d)
		}
		fmt.Println()
		fmt.Printf("\nTotal %d | Open %d | In Progress %d | Completed %d\n",
			summary.TotalJobs, summary.OpenJobs, summary.InProgress, summary.CompletedJobs)
		return nil
	},
}

func init() {
	calendarCmd.Flags().String("day", "", "List jobs on this date (YYYY-MM-DD)")
}

// CalendarCmd returns the calendar command.
func CalendarCmd() *cobra.Command { return calendarCmd }
