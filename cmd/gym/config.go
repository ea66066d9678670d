// ABOUTME: CLI commands for viewing and editing gym configuration.
// ABOUTME: Reads and writes the JSON config without opening the data store.
package main

import (
	"fmt"

	"github.com/DLAppStuff/GymAppTest/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit configuration",
	Long: `View and edit the gym configuration file.

KEYS:

  backend     Storage backend: sqlite (default), badger, charm, or file
  data_dir    Root directory for local data (default: ~/.local/share/gym)
  log_level   debug, info, warn (default), or error
  log_file    Write rotated logs here instead of stderr

EXAMPLES:

  gym config show
  gym config set backend charm
  gym config set log_level debug`,
	Annotations: map[string]string{skipTracker: "true"},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		fmt.Println(faint.Sprint(configFilePath()))
		for _, kv := range c.Values() {
			fmt.Printf("%s %s\n", padRight(kv[0], 10), kv[1])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return err
		}
		save := c.Save
		if configPath != "" {
			save = func() error { return c.SaveTo(configPath) }
		}
		if err := save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Set %s = %s", args[0], args[1])
		return nil
	},
}

func configFilePath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetConfigPath()
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
