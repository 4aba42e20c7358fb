package jobs

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/prctl/common"
	"github.com/ehsaniara/playrunner/pkg/errors"
)

type startOptions struct {
	passwords    map[string]string
	sshUsername  string
	sudoUsername string
	watch        bool
	noPrompt     bool
}

func NewStartCmd() *cobra.Command {
	opts := &startOptions{}
	cmd := &cobra.Command{
		Use:   "start <id>",
		Short: "Queue a job, asking for any passwords it still needs",
		Long: `Queue a job for execution. Passwords the credential marks as ASK are taken
from --password or asked for interactively.

  prctl start 4f1c --password sudo_password=secret
  prctl start 4f1c --ssh-username ops --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringToStringVar(&opts.passwords, "password", nil,
		"Start-time secret as field=value (ssh_key_unlock, ssh_password, sudo_password)")
	cmd.Flags().StringVar(&opts.sshUsername, "ssh-username", "", "Override the credential's SSH username")
	cmd.Flags().StringVar(&opts.sudoUsername, "sudo-username", "", "Override the credential's sudo username")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Follow the job until it finishes")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "Fail instead of asking for missing passwords")
	return cmd
}

func (o *startOptions) overrides() map[string]string {
	out := make(map[string]string, len(o.passwords)+2)
	for k, v := range o.passwords {
		out[k] = v
	}
	if o.sshUsername != "" {
		out[domain.FieldSSHUsername] = o.sshUsername
	}
	if o.sudoUsername != "" {
		out[domain.FieldSudoUsername] = o.sudoUsername
	}
	return out
}

func runStart(cmd *cobra.Command, jobID string, opts *startOptions) error {
	jobClient, err := common.NewJobClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer jobClient.Close()

	overrides := opts.overrides()

	ctx, cancel := common.Context()
	needed, err := jobClient.PasswordsNeeded(ctx, jobID, overrides)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to check passwords: %w", err)
	}

	if len(needed) > 0 {
		if opts.noPrompt || !common.StdinIsTTY() {
			return errors.NewPasswordsNeededError(needed)
		}
		values, err := askPasswords(jobID, needed, cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		for k, v := range values {
			overrides[k] = v
		}
	}

	ctx, cancel = common.Context()
	job, err := jobClient.StartJob(ctx, jobID, overrides)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to start job: %w", err)
	}

	if !opts.watch {
		if common.JSONOutput {
			return writeJSON(cmd.OutOrStdout(), job)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Job %s queued (%s)\n", job.ID, renderStatus(job.Status))
		return nil
	}
	return followJob(context.Background(), cmd.OutOrStdout(), jobClient, jobID)
}
