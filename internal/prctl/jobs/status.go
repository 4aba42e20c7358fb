package jobs

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/prctl/common"
)

func NewStatusCmd() *cobra.Command {
	var showOutput bool
	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Show a job and its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobClient, err := common.NewJobClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer jobClient.Close()

			ctx, cancel := common.Context()
			defer cancel()

			job, err := jobClient.GetJob(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get job status: %w", err)
			}
			if common.JSONOutput {
				return writeJSON(cmd.OutOrStdout(), job)
			}
			printJob(cmd.OutOrStdout(), job, showOutput)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showOutput, "output", "o", false, "Print the captured transcript")
	return cmd
}

func printJob(w io.Writer, job *domain.Job, showOutput bool) {
	fmt.Fprintf(w, "Job ID: %s\n", job.ID)
	if job.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", job.Name)
	}
	fmt.Fprintf(w, "Status: %s\n", renderStatus(job.Status))
	fmt.Fprintf(w, "Playbook: %s (%s)\n", job.Playbook, job.JobType)
	if job.Inventory.ID != "" {
		fmt.Fprintf(w, "Inventory: %s\n", job.Inventory.ID)
	}
	if job.Credential != nil && job.Credential.SSHUsername != "" {
		fmt.Fprintf(w, "SSH user: %s\n", job.Credential.SSHUsername)
	}
	if job.CancelFlag && !job.Status.IsTerminal() {
		fmt.Fprintln(w, warnStyle.Render("Cancel requested"))
	}

	fmt.Fprintf(w, "\nTiming:\n")
	fmt.Fprintf(w, "  Created: %s\n", job.CreatedAt.Local().Format(time.DateTime))
	if job.StartedAt != nil {
		fmt.Fprintf(w, "  Started: %s\n", job.StartedAt.Local().Format(time.DateTime))
	}
	if job.FinishedAt != nil {
		fmt.Fprintf(w, "  Finished: %s\n", job.FinishedAt.Local().Format(time.DateTime))
	}
	if d := job.GetDuration(); d > 0 {
		fmt.Fprintf(w, "  Duration: %s\n", d.Round(time.Second))
	}

	if job.ResultTraceback != "" {
		fmt.Fprintf(w, "\nTraceback:\n%s\n", errorStyle.Render(job.ResultTraceback))
	}
	if showOutput && job.ResultStdout != "" {
		fmt.Fprintf(w, "\nOutput:\n%s\n", job.ResultStdout)
	}

	fmt.Fprintf(w, "\nAvailable Actions:\n")
	switch {
	case job.Status == domain.StatusNew:
		fmt.Fprintf(w, "  prctl start %s\n", job.ID)
	case !job.Status.IsTerminal():
		fmt.Fprintf(w, "  prctl watch %s\n", job.ID)
		fmt.Fprintf(w, "  prctl cancel %s\n", job.ID)
	default:
		fmt.Fprintf(w, "  prctl status %s --output\n", job.ID)
	}
}
