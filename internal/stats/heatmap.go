// ABOUTME: Monthly workout presence grid for the heatmap view.
// ABOUTME: Presence is boolean per day; repeated dates do not stack.
package stats

import (
	"time"

	"github.com/DLAppStuff/GymAppTest/internal/calendar"
	"github.com/DLAppStuff/GymAppTest/internal/models"
)

// LeadingBlanks is the number of empty cells before day 1 in a Monday-first week.
func LeadingBlanks(monthStart time.Time) int {
	y, m, _ := monthStart.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, monthStart.Location())
	return (int(first.Weekday()) + 6) % 7
}

// BuildMonthGrid returns blank alignment cells followed by one cell per day
// of monthStart's month, each flagged when workoutDates contains that date.
func BuildMonthGrid(workoutDates []string, monthStart time.Time) []models.DayCell {
	present := make(map[string]bool, len(workoutDates))
	for _, d := range workoutDates {
		present[calendar.Key(d)] = true
	}

	y, m, _ := monthStart.Date()
	loc := monthStart.Location()
	blanks := LeadingBlanks(monthStart)
	days := calendar.DaysIn(monthStart)

	cells := make([]models.DayCell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, models.DayCell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		key := calendar.DateKey(time.Date(y, m, day, 0, 0, 0, 0, loc))
		cells = append(cells, models.DayCell{
			Day:     day,
			Date:    key,
			Present: present[key],
		})
	}
	return cells
}

// MarkToday flags the cell whose date matches today's key.
func MarkToday(cells []models.DayCell, today string) {
	for i := range cells {
		if !cells[i].Blank && cells[i].Date == today {
			cells[i].IsToday = true
		}
	}
}
