// ABOUTME: CLI commands for the body weight log.
// ABOUTME: One entry per day; adding again on the same day replaces it.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var bodyWeightDate string

var bodyWeightCmd = &cobra.Command{
	Use:     "bodyweight",
	Aliases: []string{"bw"},
	Short:   "Track body weight",
	Long: `Track body weight in kilograms, one entry per day.

EXAMPLES:

  gym bodyweight add 81.4
  gym bodyweight add 81.9 --date 2024-01-04
  gym bodyweight list
  gym bodyweight delete 2024-01-04`,
}

var bodyWeightAddCmd = &cobra.Command{
	Use:     "add <weight>",
	Aliases: []string{"a"},
	Short:   "Record body weight",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := parseWeight(args[0])
		if err != nil {
			return err
		}
		entry, err := gym.AddBodyWeight(bodyWeightDate, weight)
		if err := savedOrWarn(err); err != nil {
			return fmt.Errorf("failed to record body weight: %w", err)
		}
		color.Green("✓ Recorded %s", formatKg(entry.Weight))
		fmt.Printf("  %s\n", faint.Sprint(entry.Date))
		return nil
	},
}

var bodyWeightListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List body weight entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := gym.BodyWeightLog()
		if len(entries) == 0 {
			fmt.Println("No body weight entries found.")
			return nil
		}

		var previous float64
		for i, e := range entries {
			change := ""
			if i > 0 {
				diff := e.Weight - previous
				switch {
				case diff > 0:
					change = faint.Sprintf(" (+%s)", formatKg(diff))
				case diff < 0:
					change = faint.Sprintf(" (-%s)", formatKg(-diff))
				}
			}
			fmt.Printf("%s %s%s\n", faint.Sprint(e.Date), formatKg(e.Weight), change)
			previous = e.Weight
		}
		return nil
	},
}

var bodyWeightDeleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete the entry for a date",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := savedOrWarn(gym.DeleteBodyWeight(args[0])); err != nil {
			return fmt.Errorf("failed to delete body weight: %w", err)
		}
		color.Yellow("✗ Deleted body weight for %s", args[0])
		return nil
	},
}

func init() {
	bodyWeightAddCmd.Flags().StringVar(&bodyWeightDate, "date", "", "date of the entry (YYYY-MM-DD, default: today)")

	bodyWeightCmd.AddCommand(bodyWeightAddCmd)
	bodyWeightCmd.AddCommand(bodyWeightListCmd)
	bodyWeightCmd.AddCommand(bodyWeightDeleteCmd)
	rootCmd.AddCommand(bodyWeightCmd)
}
