// ABOUTME: CLI commands for the dashboard, heatmap, and progress series.
// ABOUTME: Read-only views computed against the current date.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/DLAppStuff/GymAppTest/internal/tracker"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	heatmapPrevious bool
	heatmapMonth    string
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d"},
	Short:   "Show weekly and monthly summary",
	Long: `Show workout days this week (Monday to Sunday) and this month,
exercise and set totals, and the records set this month and last month.

A workout day is any calendar day with at least one logged set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := gym.Dashboard()
		bold := color.New(color.Bold)

		fmt.Printf("%s %d\n", padRight("Workouts this week", 22), d.WorkoutsThisWeek)
		fmt.Printf("%s %d\n", padRight("Workouts this month", 22), d.WorkoutsThisMonth)
		fmt.Printf("%s %d\n", padRight("Exercises", 22), d.TotalExercises)
		fmt.Printf("%s %d\n", padRight("Sets logged", 22), d.TotalSets)
		fmt.Printf("%s %d %s\n", padRight("New PRs this month", 22), d.NewPRsThisMonth,
			faint.Sprintf("(last month: %d)", d.NewPRsPastMonth))

		if len(d.MonthlyPRList) == 0 {
			return nil
		}
		fmt.Println()
		bold.Println("Records this month")
		for _, pr := range d.MonthlyPRList {
			printRecord(pr.ExerciseName, pr.Weight, "", pr.Surplus)
		}
		return nil
	},
}

var heatmapCmd = &cobra.Command{
	Use:     "heatmap",
	Aliases: []string{"cal"},
	Short:   "Show which days you trained this month",
	Long: `Show a Monday-first calendar of the month with training days highlighted.

Use --previous to show last month instead, or --month for any month.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if heatmapMonth != "" {
			month, err := time.ParseInLocation("2006-01", heatmapMonth, time.Local)
			if err != nil {
				return fmt.Errorf("invalid month: %s (use YYYY-MM)", heatmapMonth)
			}
			printHeatmap(gym.HeatmapFor(month))
			return nil
		}
		printHeatmap(gym.Heatmap(!heatmapPrevious))
		return nil
	},
}

func printHeatmap(view tracker.HeatmapView) {
	trained := color.New(color.BgGreen, color.FgBlack)
	today := color.New(color.Underline)

	color.New(color.Bold).Println(view.Month)
	fmt.Println(" Mo  Tu  We  Th  Fr  Sa  Su")

	var line strings.Builder
	for i, c := range view.Cells {
		cell := "    "
		if !c.Blank {
			label := fmt.Sprintf("%3d", c.Day)
			switch {
			case c.Present:
				label = trained.Sprint(label)
			case c.IsToday:
				label = today.Sprint(label)
			}
			cell = label + " "
		}
		line.WriteString(cell)
		if (i+1)%7 == 0 {
			fmt.Println(strings.TrimRight(line.String(), " "))
			line.Reset()
		}
	}
	if line.Len() > 0 {
		fmt.Println(strings.TrimRight(line.String(), " "))
	}
}

var progressCmd = &cobra.Command{
	Use:     "progress <exercise>",
	Aliases: []string{"p"},
	Short:   "Show max weight and volume per day",
	Long: `Show an exercise's progress series: the heaviest weight and the total
volume (weight x reps) for every day it was trained, oldest first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := gym.Exercise(args[0])
		if err != nil {
			return err
		}
		if len(view.MaxWeightSeries) == 0 {
			fmt.Println("No sets logged yet.")
			return nil
		}

		fmt.Printf("%s %s %s\n", padRight("DATE", 12), padRight("MAX", 10), "VOLUME")
		for _, p := range view.MaxWeightSeries {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(padRight(p.Date, 12)),
				padRight(formatKg(p.Weight), 10),
				formatKg(view.DailyVolume[p.Date]))
		}
		return nil
	},
}

func init() {
	heatmapCmd.Flags().BoolVar(&heatmapPrevious, "previous", false, "show the previous month")
	heatmapCmd.Flags().StringVar(&heatmapMonth, "month", "", "show a specific month (YYYY-MM)")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(progressCmd)
}
