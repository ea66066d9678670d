// ABOUTME: CLI commands for managing exercises.
// ABOUTME: Supports add, list, show, and delete with category filtering.
package main

import (
	"fmt"

	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exerciseCategory     string
	exerciseListCategory string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex", "e"},
	Short:   "Manage exercises",
	Long: `Manage the exercises you log sets against.

Every exercise belongs to one category: Push, Pull, or Legs.
Names are case-sensitive and must be unique.

EXAMPLES:

  gym exercise add "Bench Press" --category push
  gym exercise list --category legs
  gym exercise show "Bench Press"
  gym exercise delete "Bench Press"`,
}

var exerciseAddCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a"},
	Short:   "Create an exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := models.ParseCategory(exerciseCategory)
		if err != nil {
			return err
		}

		if err := savedOrWarn(gym.AddExercise(args[0], category)); err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s", args[0])
		fmt.Printf("  %s\n", faint.Sprint(category))
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List exercises",
	Long: `List exercises sorted by name.

OUTPUT FORMAT:

  Each line shows: NAME  CATEGORY  SETS  (RECORD)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries := gym.Exercises()
		if exerciseListCategory != "" {
			category, err := models.ParseCategory(exerciseListCategory)
			if err != nil {
				return err
			}
			summaries = gym.ExercisesByCategory(category)
		}

		if len(summaries) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		for _, s := range summaries {
			record := ""
			if s.PR != nil {
				record = faint.Sprintf(" (PR %s on %s)", formatKg(s.PR.Weight), s.PR.Date)
			}
			fmt.Printf("%s %s %s%s\n",
				padRight(truncate(s.Name, 24), 24),
				faint.Sprint(padRight(string(s.Category), 5)),
				padRight(fmt.Sprintf("%d sets", s.Sets), 9),
				record)
		}
		return nil
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show an exercise with today's sets",
	Long: `Show an exercise's record and the sets logged today.

The index in the first column is what 'gym set delete' expects.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := gym.Exercise(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(view.Name), faint.Sprintf("(%s)", view.Category))
		if view.PR != nil {
			fmt.Printf("PR: %s on %s", formatKg(view.PR.Weight), view.PR.Date)
			if surplus := view.PR.Surplus(); surplus > 0 {
				fmt.Printf(" %s", color.GreenString("(+%s)", formatKg(surplus)))
			}
			fmt.Println()
		} else {
			fmt.Println("PR: none yet")
		}
		fmt.Printf("Total sets: %d\n\n", view.TotalSets)

		if len(view.TodaySets) == 0 {
			fmt.Println("No sets logged today.")
			return nil
		}
		fmt.Println("Today:")
		for _, s := range view.TodaySets {
			fmt.Printf("  %s %s %s x %d\n",
				padRight(fmt.Sprintf("[%d]", s.Index), 5),
				faint.Sprint(shortID(s.ID)),
				formatKg(s.Weight),
				s.Reps)
		}
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete an exercise and its record",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := savedOrWarn(gym.DeleteExercise(args[0])); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}
		color.Yellow("✗ Deleted %s", args[0])
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "category: push, pull, or legs")
	_ = exerciseAddCmd.MarkFlagRequired("category")
	exerciseListCmd.Flags().StringVarP(&exerciseListCategory, "category", "c", "", "filter by category")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
