// ABOUTME: Tests for the monthly heatmap presence grid.
// ABOUTME: Checks Monday-first alignment and duplicate-date handling.
package stats

import (
	"testing"
	"time"

	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func presentDays(cells []models.DayCell) []int {
	var days []int
	for _, c := range cells {
		if c.Present {
			days = append(days, c.Day)
		}
	}
	return days
}

func TestBuildMonthGridWednesdayStart(t *testing.T) {
	// November 2023 has 30 days and starts on a Wednesday.
	monthStart := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)
	dates := []string{"2023-11-05", "2023-11-05", "2023-11-14"}

	cells := BuildMonthGrid(dates, monthStart)

	require.Len(t, cells, 2+30)
	assert.True(t, cells[0].Blank)
	assert.True(t, cells[1].Blank)
	assert.False(t, cells[2].Blank)
	assert.Equal(t, 1, cells[2].Day)
	assert.Equal(t, "2023-11-01", cells[2].Date)
	assert.Equal(t, []int{5, 14}, presentDays(cells))
}

func TestBuildMonthGridFebruaryLeapYear(t *testing.T) {
	// February 2024 starts on a Thursday and has 29 days.
	monthStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	dates := []string{"2024-02-05", "2024-02-05T21:00:00Z", "2024-02-14", "2024-03-05", "2024-01-14"}

	cells := BuildMonthGrid(dates, monthStart)

	require.Len(t, cells, 3+29)
	assert.Equal(t, 3, LeadingBlanks(monthStart))
	assert.Equal(t, []int{5, 14}, presentDays(cells))
	assert.Equal(t, 29, cells[len(cells)-1].Day)
}

func TestLeadingBlanks(t *testing.T) {
	tests := []struct {
		month time.Time
		want  int
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 0},  // Monday
		{time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), 6}, // Sunday
		{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 5},  // Saturday
		{time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), 5}, // mid-month uses the 1st
	}

	for _, tt := range tests {
		t.Run(tt.month.Format("2006-01-02"), func(t *testing.T) {
			assert.Equal(t, tt.want, LeadingBlanks(tt.month))
		})
	}
}

func TestMarkToday(t *testing.T) {
	cells := BuildMonthGrid(nil, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC))
	MarkToday(cells, "2023-11-07")

	var today []string
	for _, c := range cells {
		if c.IsToday {
			today = append(today, c.Date)
		}
	}
	assert.Equal(t, []string{"2023-11-07"}, today)
}
