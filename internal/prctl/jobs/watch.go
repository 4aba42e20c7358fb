package jobs

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/playrunner/api"
	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/prctl/common"
	"github.com/ehsaniara/playrunner/pkg/client"
)

func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <id>",
		Short: "Stream a job's output until it finishes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobClient, err := common.NewJobClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer jobClient.Close()
			return followJob(context.Background(), cmd.OutOrStdout(), jobClient, args[0])
		},
	}
}

// followJob prints transcript chunks as they arrive and fails unless the
// job ends successful. Ctrl-C stops watching without canceling the job.
func followJob(ctx context.Context, out io.Writer, jobClient *client.JobClient, jobID string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var final api.WatchUpdate
	err := jobClient.WatchJob(ctx, jobID, func(u api.WatchUpdate) error {
		if u.Output != "" {
			if _, err := io.WriteString(out, u.Output); err != nil {
				return err
			}
		}
		final = u
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	if !final.Final {
		return fmt.Errorf("watch ended before job %s finished", jobID)
	}

	fmt.Fprintf(out, "\nJob %s finished: %s\n", jobID, renderStatus(final.Status))
	if final.Traceback != "" {
		fmt.Fprintln(out, errorStyle.Render(final.Traceback))
	}
	if final.Status != domain.StatusSuccessful {
		return fmt.Errorf("job %s ended %s", jobID, final.Status)
	}
	return nil
}
