// ABOUTME: Dashboard summary counts across all exercises and records.
// ABOUTME: Workouts are counted as distinct dates, not sets.
package stats

import (
	"sort"
	"time"

	"github.com/DLAppStuff/GymAppTest/internal/calendar"
	"github.com/DLAppStuff/GymAppTest/internal/models"
)

// MonthlyPR is a record set during the current month.
type MonthlyPR struct {
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Surplus      float64 `json:"surplus"`
}

// Dashboard is the overview shown on the landing screen.
type Dashboard struct {
	WorkoutsThisWeek  int         `json:"workoutsThisWeek"`
	WorkoutsThisMonth int         `json:"workoutsThisMonth"`
	TotalExercises    int         `json:"totalExercises"`
	TotalSets         int         `json:"totalSets"`
	NewPRsThisMonth   int         `json:"newPRsThisMonth"`
	NewPRsPastMonth   int         `json:"newPRsPastMonth"`
	MonthlyPRList     []MonthlyPR `json:"monthlyPRList"`
}

// ComputeDashboard summarizes exercises and records relative to now.
// Dates that cannot be parsed are left out of every window.
func ComputeDashboard(exercises map[string]*models.Exercise, prs map[string]models.PersonalRecord, now time.Time) Dashboard {
	w := calendar.NewWindows(now)
	week, month, prevMonth := w.CurrentWeek(), w.CurrentMonth(), w.PreviousMonth()
	loc := now.Location()

	d := Dashboard{MonthlyPRList: []MonthlyPR{}}

	datesThisWeek := make(map[string]struct{})
	datesThisMonth := make(map[string]struct{})
	for _, ex := range exercises {
		d.TotalExercises++
		d.TotalSets += len(ex.Sets)
		for _, s := range ex.Sets {
			day, err := calendar.ParseDate(s.Date, loc)
			if err != nil {
				continue
			}
			key := calendar.DateKey(day)
			if week.Contains(day) {
				datesThisWeek[key] = struct{}{}
			}
			if month.Contains(day) {
				datesThisMonth[key] = struct{}{}
			}
		}
	}
	d.WorkoutsThisWeek = len(datesThisWeek)
	d.WorkoutsThisMonth = len(datesThisMonth)

	for name, pr := range prs {
		day, err := calendar.ParseDate(pr.Date, loc)
		if err != nil {
			continue
		}
		if month.Contains(day) {
			d.NewPRsThisMonth++
			d.MonthlyPRList = append(d.MonthlyPRList, MonthlyPR{
				ExerciseName: name,
				Weight:       pr.Weight,
				Surplus:      pr.Surplus(),
			})
		}
		if prevMonth.Contains(day) {
			d.NewPRsPastMonth++
		}
	}
	sort.Slice(d.MonthlyPRList, func(i, j int) bool {
		return d.MonthlyPRList[i].ExerciseName < d.MonthlyPRList[j].ExerciseName
	})

	return d
}
