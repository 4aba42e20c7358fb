// Package cli is the prctl command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ehsaniara/playrunner/internal/prctl/common"
	"github.com/ehsaniara/playrunner/internal/prctl/jobs"
	"github.com/ehsaniara/playrunner/pkg/logger"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prctl",
		Short: "prctl - command line client for playrunner",
		Long: `prctl talks to a playrunner daemon over gRPC.

  prctl create -f job.yml          register a job
  prctl start <id> --watch         supply passwords, queue the job and follow it
  prctl status <id>                show the stored result
  prctl cancel <id>                request cancellation`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			logger.SetLevel(logger.WARN)
			return common.LoadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&common.ConfigPath, "config", "",
		"Path to configuration file (searches common locations if not specified)")
	rootCmd.PersistentFlags().StringVar(&common.ServerAddress, "server", "",
		"Daemon address, overrides client.serverAddress")
	rootCmd.PersistentFlags().BoolVar(&common.JSONOutput, "json", false,
		"Output in JSON format")

	rootCmd.AddCommand(jobs.NewCreateCmd())
	rootCmd.AddCommand(jobs.NewStartCmd())
	rootCmd.AddCommand(jobs.NewStatusCmd())
	rootCmd.AddCommand(jobs.NewListCmd())
	rootCmd.AddCommand(jobs.NewCancelCmd())
	rootCmd.AddCommand(jobs.NewWatchCmd())
	rootCmd.AddCommand(NewVersionCmd())
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
