// ABOUTME: CLI commands for personal records.
// ABOUTME: Shows current records and rebuilds one from the remaining sets.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var prCmd = &cobra.Command{
	Use:     "pr",
	Aliases: []string{"record"},
	Short:   "Show and rebuild personal records",
	Long: `A personal record is the heaviest weight logged for an exercise.
Reps do not count. The surplus is the gain over the record it replaced.

Deleting a set never lowers a record. Use 'gym pr rebuild' to recompute
a record from the sets that remain.`,
}

var prShowCmd = &cobra.Command{
	Use:   "show [exercise]",
	Short: "Show records",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			pr, err := gym.Record(args[0])
			if err != nil {
				return err
			}
			if pr == nil {
				fmt.Printf("No record for %s yet.\n", args[0])
				return nil
			}
			printRecord(args[0], pr.Weight, pr.Date, pr.Surplus())
			return nil
		}

		found := false
		for _, s := range gym.Exercises() {
			if s.PR == nil {
				continue
			}
			found = true
			printRecord(s.Name, s.PR.Weight, s.PR.Date, s.PR.Surplus())
		}
		if !found {
			fmt.Println("No records yet.")
		}
		return nil
	},
}

var prRebuildCmd = &cobra.Command{
	Use:   "rebuild <exercise>",
	Short: "Recompute a record from the remaining sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pr, err := gym.RecomputePR(args[0])
		if err := savedOrWarn(err); err != nil {
			return fmt.Errorf("failed to rebuild record: %w", err)
		}
		if pr == nil {
			color.Yellow("✗ Cleared record for %s (no sets left)", args[0])
			return nil
		}
		color.Green("✓ Rebuilt record for %s", args[0])
		printRecord(args[0], pr.Weight, pr.Date, pr.Surplus())
		return nil
	},
}

func printRecord(name string, weight float64, date string, surplus float64) {
	extra := ""
	if surplus > 0 {
		extra = color.GreenString(" (+%s)", formatKg(surplus))
	}
	fmt.Printf("%s %s %s%s\n",
		padRight(truncate(name, 24), 24),
		formatKg(weight),
		faint.Sprint(date),
		extra)
}

func init() {
	prCmd.AddCommand(prShowCmd)
	prCmd.AddCommand(prRebuildCmd)
	rootCmd.AddCommand(prCmd)
}
