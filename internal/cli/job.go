package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/fleetdeck/internal/derive"
	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/primary"
	"github.com/example/fleetdeck/internal/validate"
	"github.com/example/fleetdeck/internal/wire"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage maintenance jobs",
	Long:  "List, add, update, and delete maintenance jobs raised against ship components",
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs, optionally for one ship or component",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		shipID, _ := cmd.Flags().GetString("ship")
		componentID, _ := cmd.Flags().GetString("component")

		var jobs []models.Job
		var err error
		switch {
		case shipID != "":
			jobs, err = wire.JobService().ListJobsByShip(ctx, shipID)
		case componentID != "":
			jobs, err = wire.JobService().ListJobsByComponent(ctx, componentID)
		default:
			jobs, err = wire.JobService().ListJobs(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}

		if len(jobs) == 0 {
			fmt.Println("No jobs found")
			return nil
		}

		fmt.Printf("Found %d job(s):\n\n", len(jobs))
		for _, j := range jobs {
			fmt.Printf("%-40s %-20s %-8s %-12s scheduled %s\n",
				j.ID, j.Type, colorizePriority(j.Priority), colorizeJobStatus(j.Status), j.ScheduledDate)
		}
		return nil
	},
}

var jobShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show job details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		job, err := wire.JobService().GetJob(ctx, args[0])
		if err != nil {
			return err
		}
		if job == nil {
			return fmt.Errorf("job %s not found", args[0])
		}

		// Dangling ship/component references show as blank, not errors.
		var shipName, componentName string
		if ship, err := wire.FleetService().GetShip(ctx, job.ShipID); err == nil && ship != nil {
			shipName = ship.Name
		}
		if c, err := wire.FleetService().GetComponent(ctx, job.ComponentID); err == nil && c != nil {
			componentName = c.Name
		}

		fmt.Printf("Job: %s\n", job.ID)
		fmt.Printf("%s on %s / %s\n", job.Type, shipName, componentName)
		fmt.Printf("Priority: %s  Status: %s\n", colorizePriority(job.Priority), colorizeJobStatus(job.Status))
		fmt.Printf("Scheduled: %s  Created: %s\n", job.ScheduledDate, job.CreatedDate)
		if job.CompletedDate != "" {
			fmt.Printf("Completed: %s\n", job.CompletedDate)
		}
		fmt.Printf("Estimated hours: %g", job.EstimatedHours)
		if job.ActualHours != 0 {
			fmt.Printf("  Actual hours: %g", job.ActualHours)
		}
		fmt.Println()
		fmt.Printf("Description: %s\n", job.Description)
		return nil
	},
}

var jobAddCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Create a maintenance job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, err := requireUser(ctx)
		if err != nil {
			return err
		}
		if err := requireAction(user, "create_job"); err != nil {
			return err
		}

		req := primary.CreateJobRequest{Description: args[0]}
		req.ShipID, _ = cmd.Flags().GetString("ship")
		req.ComponentID, _ = cmd.Flags().GetString("component")
		req.Type, _ = cmd.Flags().GetString("type")
		req.Priority, _ = cmd.Flags().GetString("priority")
		req.Status, _ = cmd.Flags().GetString("status")
		req.AssignedEngineerID, _ = cmd.Flags().GetString("engineer")
		req.ScheduledDate, _ = cmd.Flags().GetString("scheduled")
		req.EstimatedHours, _ = cmd.Flags().GetFloat64("hours")

		if req.AssignedEngineerID != "" {
			if err := requireAction(user, "assign_job"); err != nil {
				return err
			}
		}

		if err := validate.Job(req); err != nil {
			return fmt.Errorf("invalid job: %w", err)
		}

		// The component must belong to the named ship; checked here, never
		// re-validated by the repository.
		component, err := wire.FleetService().GetComponent(ctx, req.ComponentID)
		if err != nil {
			return err
		}
		if component == nil {
			return fmt.Errorf("component %s not found", req.ComponentID)
		}
		if component.ShipID != req.ShipID {
			return fmt.Errorf("component %s is not installed on ship %s", req.ComponentID, req.ShipID)
		}

		job, err := wire.JobService().CreateJob(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}

		fmt.Printf("✓ Created job %s: %s\n", job.ID, job.Description)
		return nil
	},
}

var jobUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update fields of a job",
	Long: `Update fields of a job. A status change emits a notification; moving to
Completed also stamps the completion date unless --completed is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, err := requireUser(ctx)
		if err != nil {
			return err
		}
		if err := requireAction(user, "edit_job"); err != nil {
			return err
		}
		if cmd.Flags().Changed("engineer") {
			if err := requireAction(user, "assign_job"); err != nil {
				return err
			}
		}

		req := primary.UpdateJobRequest{
			ShipID:             changedString(cmd, "ship"),
			ComponentID:        changedString(cmd, "component"),
			Type:               changedString(cmd, "type"),
			Priority:           changedString(cmd, "priority"),
			Status:             changedString(cmd, "status"),
			AssignedEngineerID: changedString(cmd, "engineer"),
			ScheduledDate:      changedString(cmd, "scheduled"),
			CompletedDate:      changedString(cmd, "completed"),
			Description:        changedString(cmd, "description"),
			EstimatedHours:     changedFloat(cmd, "hours"),
			ActualHours:        changedFloat(cmd, "actual-hours"),
		}

		// Caller convention: completion date travels with Completed status.
		if req.Status != nil && *req.Status == models.JobStatusCompleted && req.CompletedDate == nil {
			today := time.Now().Format(derive.DateLayout)
			req.CompletedDate = &today
		}

		job, err := wire.JobService().UpdateJob(ctx, args[0], req)
		if err != nil {
			return fmt.Errorf("failed to update job: %w", err)
		}
		if job == nil {
			fmt.Printf("Job %s not found, nothing updated\n", args[0])
			return nil
		}

		fmt.Printf("✓ Updated job %s [%s]\n", job.ID, colorizeJobStatus(job.Status))
		return nil
	},
}

var jobDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, err := requireUser(ctx)
		if err != nil {
			return err
		}
		if err := requireAction(user, "delete_job"); err != nil {
			return err
		}

		if err := wire.JobService().DeleteJob(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete job: %w", err)
		}

		fmt.Printf("✓ Deleted job %s\n", args[0])
		return nil
	},
}

func init() {
	jobListCmd.Flags().String("ship", "", "Only jobs for this ship")
	jobListCmd.Flags().String("component", "", "Only jobs for this component")

	jobAddCmd.Flags().String("ship", "", "Ship the job is raised against")
	jobAddCmd.Flags().String("component", "", "Component the job is raised against")
	jobAddCmd.Flags().String("type", "", "Job type")
	jobAddCmd.Flags().String("priority", "Medium", "Job priority")
	jobAddCmd.Flags().String("status", "Open", "Job status")
	jobAddCmd.Flags().String("engineer", "", "Assigned engineer id")
	jobAddCmd.Flags().String("scheduled", "", "Scheduled date (YYYY-MM-DD)")
	jobAddCmd.Flags().Float64("hours", 0, "Estimated hours")

	jobUpdateCmd.Flags().String("ship", "", "Ship the job is raised against")
	jobUpdateCmd.Flags().String("component", "", "Component the job is raised against")
	jobUpdateCmd.Flags().String("type", "", "Job type")
	jobUpdateCmd.Flags().String("priority", "", "Job priority")
	jobUpdateCmd.Flags().String("status", "", "Job status")
	jobUpdateCmd.Flags().String("engineer", "", "Assigned engineer id")
	jobUpdateCmd.Flags().String("scheduled", "", "Scheduled date (YYYY-MM-DD)")
	jobUpdateCmd.Flags().String("completed", "", "Completed date (YYYY-MM-DD)")
	jobUpdateCmd.Flags().StringP("description", "d", "", "Job description")
	jobUpdateCmd.Flags().Float64("hours", 0, "Estimated hours")
	jobUpdateCmd.Flags().Float64("actual-hours", 0, "Actual hours spent")
}

// JobCmd returns the job command tree.
func JobCmd() *cobra.Command {
	jobCmd.AddCommand(jobListCmd)
	jobCmd.AddCommand(jobShowCmd)
	jobCmd.AddCommand(jobAddCmd)
	jobCmd.AddCommand(jobUpdateCmd)
	jobCmd.AddCommand(jobDeleteCmd)
	return jobCmd
}
