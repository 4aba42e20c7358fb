package jobs

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/prctl/common"
)

func NewListCmd() *cobra.Command {
	var (
		statuses []string
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := make([]domain.JobStatus, 0, len(statuses))
			for _, s := range statuses {
				st := domain.JobStatus(s)
				if !st.IsValid() {
					return fmt.Errorf("unknown status %q", s)
				}
				filter = append(filter, st)
			}

			jobClient, err := common.NewJobClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer jobClient.Close()

			ctx, cancel := common.Context()
			defer cancel()

			jobs, err := jobClient.ListJobs(ctx, filter, limit)
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}
			if common.JSONOutput {
				return writeJSON(cmd.OutOrStdout(), jobs)
			}
			printJobTable(cmd.OutOrStdout(), jobs)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Only jobs in these statuses")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of jobs, 0 for all")
	return cmd
}

func printJobTable(w io.Writer, jobs []*domain.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, "No jobs found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tPLAYBOOK\tCREATED")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.Name, j.Status, j.Playbook, j.CreatedAt.Local().Format(time.DateTime))
	}
	_ = tw.Flush()
}
