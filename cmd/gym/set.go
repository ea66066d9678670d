// ABOUTME: CLI commands for logging and removing sets.
// ABOUTME: Announces new records and enforces the today-only delete rule.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/DLAppStuff/GymAppTest/internal/tracker"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	setDate     string
	setDeleteID string
	setListDate string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Log and manage sets",
	Long: `Log sets (weight x reps) against an exercise.

Weights are in kilograms. A set counts toward the day it is dated; without
--date it is dated today. Only sets dated today can be deleted.

EXAMPLES:

  gym set add "Bench Press" 60 8
  gym set add "Squat" 100 5 --date 2024-01-05
  gym set list "Squat"
  gym set delete "Bench Press" 0
  gym set delete "Bench Press" --id 3f2a9c1e-...
  gym set last "Bench Press"`,
}

var setAddCmd = &cobra.Command{
	Use:     "add <exercise> <weight> <reps>",
	Aliases: []string{"a"},
	Short:   "Log a set",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := parseWeight(args[1])
		if err != nil {
			return err
		}
		reps, err := parseReps(args[2])
		if err != nil {
			return err
		}

		result, err := gym.AddSet(args[0], weight, reps, setDate)
		if err := savedOrWarn(err); err != nil {
			return fmt.Errorf("failed to add set: %w", err)
		}

		color.Green("✓ Logged %s x %d", formatKg(result.Set.Weight), result.Set.Reps)
		fmt.Printf("  %s %s\n", faint.Sprint(shortID(result.Set.ID)), faint.Sprint(result.Set.Date))
		if result.NewRecord {
			msg := fmt.Sprintf("🏆 New PR for %s: %s", args[0], formatKg(result.Record.Weight))
			if surplus := result.Record.Surplus(); surplus > 0 {
				msg += fmt.Sprintf(" (+%s)", formatKg(surplus))
			}
			color.New(color.FgYellow, color.Bold).Println(msg)
		}
		return nil
	},
}

var setListCmd = &cobra.Command{
	Use:     "list <exercise>",
	Aliases: []string{"ls", "l"},
	Short:   "List sets for an exercise",
	Long: `List every set logged for an exercise in the order it was logged.

OUTPUT FORMAT:

  Each line shows: [INDEX]  ID  DATE  WEIGHT x REPS`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := gym.Sets(args[0])
		if err != nil {
			return err
		}

		shown := 0
		for i, s := range sets {
			if setListDate != "" && s.Date != setListDate {
				continue
			}
			shown++
			fmt.Printf("%s %s %s %s x %d\n",
				padRight(fmt.Sprintf("[%d]", i), 5),
				faint.Sprint(shortID(s.ID)),
				faint.Sprint(s.Date),
				formatKg(s.Weight),
				s.Reps)
		}
		if shown == 0 {
			fmt.Println("No sets found.")
		}
		return nil
	},
}

var setDeleteCmd = &cobra.Command{
	Use:     "delete <exercise> [index]",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a set logged today",
	Long: `Delete a set by its index in 'gym set list' or by its id.

Only sets dated today can be deleted. The exercise's record is not
changed; run 'gym pr rebuild <exercise>' to recompute it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			removed models.Set
			err     error
		)

		switch {
		case setDeleteID != "":
			id, parseErr := uuid.Parse(setDeleteID)
			if parseErr != nil {
				return fmt.Errorf("invalid set id: %s", setDeleteID)
			}
			removed, err = gym.DeleteSetByID(args[0], id)
		case len(args) == 2:
			index, parseErr := strconv.Atoi(args[1])
			if parseErr != nil {
				return fmt.Errorf("invalid index: %s", args[1])
			}
			removed, err = gym.DeleteSet(args[0], index)
		default:
			return fmt.Errorf("provide a set index or --id")
		}

		if errors.Is(err, tracker.ErrSetNotDeletable) {
			return fmt.Errorf("%w\nOnly today's sets can be deleted", err)
		}
		if err := savedOrWarn(err); err != nil {
			return fmt.Errorf("failed to delete set: %w", err)
		}

		color.Yellow("✗ Deleted %s x %d", formatKg(removed.Weight), removed.Reps)
		return nil
	},
}

var setLastCmd = &cobra.Command{
	Use:   "last <exercise>",
	Short: "Show the most recent set",
	Long:  `Show the last set logged today, or the last set ever logged when there is none today.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		last, err := gym.LastSet(args[0])
		if err != nil {
			return err
		}
		if last == nil {
			fmt.Println("No sets logged yet.")
			return nil
		}
		fmt.Printf("%s x %d %s\n", formatKg(last.Weight), last.Reps, faint.Sprint(last.Date))
		return nil
	},
}

func init() {
	setAddCmd.Flags().StringVar(&setDate, "date", "", "date of the set (YYYY-MM-DD, default: today)")
	setListCmd.Flags().StringVar(&setListDate, "date", "", "only show sets on this date (YYYY-MM-DD)")
	setDeleteCmd.Flags().StringVar(&setDeleteID, "id", "", "delete by set id instead of index")

	setCmd.AddCommand(setAddCmd)
	setCmd.AddCommand(setListCmd)
	setCmd.AddCommand(setDeleteCmd)
	setCmd.AddCommand(setLastCmd)
	rootCmd.AddCommand(setCmd)
}
