package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/mailbox-postage/internal/application"
	"github.com/eugenenazirov/mailbox-postage/internal/config"
	"github.com/eugenenazirov/mailbox-postage/internal/logging"
)

func main() {
	overrides, err := parseFlags(os.Args[1:])
	kingpin.FatalIfError(err, "parse flags")

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := app.Run(os.Stdout); err != nil {
		logger.Fatal("failed to display mailbox", zap.Error(err))
	}
}

// parseFlags turns command-line arguments into configuration overrides.
func parseFlags(args []string) (*config.CLIOverrides, error) {
	kingpinApp := kingpin.New("mailbox", "Mailbox postage calculator - totals postage for letters, parcels and advertisements")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()
	logEncoding := kingpinApp.Flag("log-encoding", "Log encoding (json or console)").String()

	if _, err := kingpinApp.Parse(args); err != nil {
		return nil, err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *logEncoding != "" {
		overrides.LogEncoding = logEncoding
	}

	return overrides, nil
}
