package jobs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/playrunner/internal/prctl/common"
)

func NewCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Request cancellation of a job",
		Long:  "Request cancellation. A running job is killed at the runner's next poll; a job not yet running ends canceled when it is started.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobClient, err := common.NewJobClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer jobClient.Close()

			ctx, cancel := common.Context()
			defer cancel()

			ok, err := jobClient.CancelJob(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel job: %w", err)
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Job %s already finished, nothing to cancel\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cancel requested for job %s\n", args[0])
			return nil
		},
	}
}
