package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/ehsaniara/playrunner/internal/modes"
	"github.com/ehsaniara/playrunner/pkg/config"
	"github.com/ehsaniara/playrunner/pkg/logger"
	"github.com/ehsaniara/playrunner/pkg/version"
)

func main() {
	version.Component = "playrunner"

	cfg, path, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initializeLogging(cfg)

	mainLogger := logger.WithField("component", "main")
	mainLogger.Info("configuration loaded", "source", path, "version", version.GetShortVersion())

	if runErr := modes.RunServer(context.Background(), cfg); runErr != nil {
		mainLogger.Error("playrunner failed", "error", runErr)
		os.Exit(1)
	}
}

func initializeLogging(cfg *config.Config) {
	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Printf("Invalid log level '%s', using INFO", cfg.Logging.Level)
		level = logger.INFO
	}

	out := os.Stdout
	if cfg.Logging.Output != "stdout" && cfg.Logging.Output != "" {
		if e := os.MkdirAll(filepath.Dir(cfg.Logging.Output), 0755); e != nil {
			log.Printf("Failed to setup log file, using stdout: %v", e)
		} else if f, e := os.OpenFile(cfg.Logging.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640); e != nil {
			log.Printf("Failed to open log file, using stdout: %v", e)
		} else {
			out = f
		}
	}

	logger.SetGlobal(logger.NewWithConfig(logger.Config{
		Level:  level,
		Output: out,
		Format: cfg.Logging.Format,
		Mode:   "server",
	}))
}
