package gopin

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/roemer/gopin/pkg/config"
	"github.com/roemer/gopin/pkg/engine"
	"github.com/roemer/gopin/pkg/logging"
	"github.com/roemer/gopin/pkg/registry"
	"github.com/samber/lo"
)

func RunCmd(args []string) error {
	// Flags and help for the command
	var verbose bool
	var write bool
	var configFile string
	var versionsFile string
	flagSet := flag.NewFlagSet("gopin", flag.ExitOnError)
	flagSet.BoolVar(&verbose, "verbose", false, "The flag to set in order to get verbose output")
	flagSet.BoolVar(&verbose, "v", verbose, "Alias for -verbose")
	flagSet.BoolVar(&write, "write", false, "Persist the discovered updates to the versions file instead of only reporting them")
	flagSet.StringVar(&configFile, "config", "", "The path to the config file to read")
	flagSet.StringVar(&versionsFile, "file", "", "The path to the versions file to check")
	flagSet.Usage = func() { printUsage(flagSet) }
	flagSet.Parse(args)

	// Create a logger
	desiredLogLevel := lo.Ternary(verbose, slog.LevelDebug, slog.LevelInfo)
	logger := slog.New(logging.NewReadableTextHandler(os.Stdout, &logging.ReadableTextHandlerOptions{Level: desiredLogLevel}))
	logger.Debug(fmt.Sprintf("Initialized logger with level: %s", desiredLogLevel))
	logger.Info(fmt.Sprintf("Starting gopin v%s", Version))

	// Read the configuration
	gopinConfig, err := config.Load(configFile)
	if err != nil {
		return err
	}

	// The flag wins over the config file
	if versionsFile == "" {
		versionsFile = gopinConfig.VersionsFile
	}

	// Create and run the engine
	updateEngine := engine.New(&engine.Settings{
		Logger:       logger,
		VersionsFile: versionsFile,
		HostRules:    gopinConfig.HostRules,
		Dependencies: registry.Dependencies(),
	})
	runResult, err := updateEngine.Run(&engine.RunOptions{Write: write})
	if err != nil {
		return err
	}

	// A run that persisted at least one update counts as a success, even when
	// unrelated dependencies failed to resolve
	if len(runResult.Failed) > 0 && !runResult.Written {
		return fmt.Errorf("failed resolving %d %s", len(runResult.Failed),
			lo.Ternary(len(runResult.Failed) == 1, "dependency", "dependencies"))
	}
	return nil
}
