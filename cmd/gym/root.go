// ABOUTME: Root Cobra command for gym CLI.
// ABOUTME: Opens config, logging, storage, and the tracker via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/DLAppStuff/GymAppTest/internal/config"
	"github.com/DLAppStuff/GymAppTest/internal/logging"
	"github.com/DLAppStuff/GymAppTest/internal/storage"
	"github.com/DLAppStuff/GymAppTest/internal/tracker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// skipTracker marks commands that run without opening the data store.
const skipTracker = "skip-tracker"

var (
	configPath string

	cfg    *config.Config
	logger *logrus.Logger
	store  storage.Store
	gym    *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "gym",
	Short: "Personal strength training tracker",
	Long: `Gym is a CLI tool for logging strength training sets and tracking progress.

WHAT IT TRACKS:

  Exercises      grouped as Push, Pull, or Legs
  Sets           weight x reps, dated by calendar day
  Records        heaviest weight per exercise, with the surplus over the last record
  Body weight    one entry per day

QUICK START:

  $ gym exercise add "Bench Press" --category push   # Create an exercise
  $ gym set add "Bench Press" 60 8                   # Log 60 kg x 8 today
  $ gym set add "Bench Press" 62.5 5 --date 2024-01-05
  $ gym dashboard                                    # Weekly/monthly summary
  $ gym heatmap                                      # Which days you trained

PROGRESS:

  $ gym progress "Bench Press"     # Max weight and volume per day
  $ gym pr show                    # Current records
  $ gym pr rebuild "Bench Press"   # Recompute a record after deleting sets

MCP INTEGRATION:

  Run 'gym mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "gym": { "command": "gym", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in SQLite at ~/.local/share/gym/gym.db by default.
  Switch backends with 'gym config set backend <sqlite|badger|charm|file>'.
  The charm backend syncs across devices; see 'gym sync --help'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" || skipsTracker(cmd) {
			return nil
		}
		return openTracker()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeTracker()
	},
}

// skipsTracker reports whether cmd or any of its parents opted out of the store.
func skipsTracker(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipTracker] == "true" {
			return true
		}
	}
	return false
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

func openTracker() error {
	// A failed RunE skips PersistentPostRunE, so a prior store may still be open.
	if err := closeTracker(); err != nil {
		return err
	}

	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = logging.Setup(logging.Params{
		Level:    cfg.GetLogLevel(),
		FileName: cfg.GetLogFile(),
	})

	store, err = cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
	}

	gym, err = tracker.Open(store, tracker.WithLogger(logger))
	if err != nil {
		_ = store.Close()
		store = nil
		return fmt.Errorf("failed to load data: %w", err)
	}

	logger.WithField("backend", cfg.GetBackend()).Debug("tracker opened")
	return nil
}

func closeTracker() error {
	gym = nil
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.config/gym/config.json)")
}
