// ABOUTME: CLI commands for exporting and importing gym data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; imports JSON.
package main

import (
	"fmt"
	"os"

	"github.com/DLAppStuff/GymAppTest/internal/calendar"
	"github.com/DLAppStuff/GymAppTest/internal/storage"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export gym data",
	Long: `Export gym data in various formats.

FORMATS:

  json       {exercises, prs} document (suitable for backup and 'gym import')
  yaml       YAML report including body weight (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include sets since this date (YYYY-MM-DD, markdown only)

EXAMPLES:

  gym export json                        # Export all data as JSON
  gym export json -o backup.json         # Save to file
  gym export yaml                        # Export as YAML
  gym export markdown --since 2024-01-01 # Export sets from 2024 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = gym.Export()
		case "yaml":
			data, err = storage.ExportYAML(gym.Snapshot())
		case "markdown":
			since := ""
			if exportSince != "" {
				since, err = calendar.NormalizeDate(exportSince)
				if err != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
			}
			data = []byte(storage.ExportMarkdown(gym.Snapshot(), since))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import gym data from JSON",
	Long: `Import exercises and records from a JSON file.

The file must contain both "exercises" and "prs" keys. Importing REPLACES
all exercises and records; body weight entries are kept. On a malformed
file nothing is changed.

EXAMPLES:

  gym import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := savedOrWarn(gym.Import(data)); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		fmt.Printf("  %d exercises\n", len(gym.Exercises()))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include sets since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
