// Package common holds state shared by prctl subcommands.
package common

import (
	"context"
	"fmt"
	"os"

	"github.com/ehsaniara/playrunner/pkg/client"
	"github.com/ehsaniara/playrunner/pkg/config"
)

var (
	Config        *config.Config
	ConfigPath    string
	ServerAddress string
	JSONOutput    bool
)

// LoadConfig reads the client configuration. An explicit --config path must
// exist; otherwise the usual search path applies.
func LoadConfig() error {
	if ConfigPath != "" {
		cfg, err := config.LoadConfigFrom(ConfigPath)
		if err != nil {
			return err
		}
		Config = cfg
		return nil
	}
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// NewJobClient creates a client based on configuration
func NewJobClient() (*client.JobClient, error) {
	if Config == nil {
		return nil, fmt.Errorf("no configuration loaded - this should not happen")
	}
	cfg := Config.Client
	if ServerAddress != "" {
		cfg.ServerAddress = ServerAddress
	}
	return client.NewJobClient(cfg)
}

// Context bounds a single request by the configured client timeout.
func Context() (context.Context, context.CancelFunc) {
	timeout := config.DefaultConfig.Client.Timeout
	if Config != nil && Config.Client.Timeout > 0 {
		timeout = Config.Client.Timeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// StdinIsTTY reports whether prompts can be shown interactively.
func StdinIsTTY() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
