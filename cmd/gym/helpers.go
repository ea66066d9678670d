// ABOUTME: Shared output helpers for gym CLI commands.
// ABOUTME: Column padding, truncation, and non-blocking save warnings.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/DLAppStuff/GymAppTest/internal/tracker"
	"github.com/fatih/color"
)

var faint = color.New(color.Faint)

// savedOrWarn turns a persistence failure into a warning. The change is
// kept in memory for this run, so the command still succeeds.
func savedOrWarn(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, tracker.ErrPersistenceWrite) {
		color.Yellow("⚠ Change not saved: %v", err)
		return nil
	}
	return err
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// formatKg prints weights without trailing zeros: 60, 62.5, 61.25.
func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " kg"
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight: %s", s)
	}
	return w, nil
}

func parseReps(s string) (int, error) {
	r, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid reps: %s", s)
	}
	return r, nil
}

func shortID(id fmt.Stringer) string {
	return id.String()[:8]
}
