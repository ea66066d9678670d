// ABOUTME: Tests for dashboard summary counts.
// ABOUTME: Verifies distinct-date counting and month windows for records.
package stats

import (
	"testing"
	"time"

	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/stretchr/testify/assert"
)

func exerciseWith(name string, sets ...models.Set) *models.Exercise {
	ex := models.NewExercise(name, models.CategoryPush)
	ex.Sets = append(ex.Sets, sets...)
	return ex
}

func TestComputeDashboard(t *testing.T) {
	// Wednesday 2024-03-13
	now := time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC)

	exercises := map[string]*models.Exercise{
		"Bench": exerciseWith("Bench",
			models.NewSet(100, 5, "2024-03-11"),
			models.NewSet(100, 5, "2024-03-11"),
			models.NewSet(100, 5, "2024-03-11"),
			models.NewSet(95, 5, "2024-03-02"),
			models.NewSet(90, 5, "2024-02-20"),
		),
		"Squat": exerciseWith("Squat",
			models.NewSet(140, 5, "2024-03-11T07:00:00Z"),
			models.NewSet(140, 5, "2024-03-13"),
			models.NewSet(145, 1, "2024-03-18"),
		),
		"Row": exerciseWith("Row"),
	}
	prs := map[string]models.PersonalRecord{
		"Bench": {Weight: 100, Date: "2024-03-11", PreviousWeight: 95},
		"Squat": {Weight: 145, Date: "2024-03-18", PreviousWeight: 0},
		"Row":   {Weight: 70, Date: "2024-02-14", PreviousWeight: 65},
	}

	d := ComputeDashboard(exercises, prs, now)

	assert.Equal(t, 2, d.WorkoutsThisWeek, "03-11 and 03-13 only; 03-18 is next week")
	assert.Equal(t, 4, d.WorkoutsThisMonth, "03-02, 03-11, 03-13, 03-18")
	assert.Equal(t, 3, d.TotalExercises)
	assert.Equal(t, 8, d.TotalSets)
	assert.Equal(t, 2, d.NewPRsThisMonth)
	assert.Equal(t, 1, d.NewPRsPastMonth)
	assert.Equal(t, []MonthlyPR{
		{ExerciseName: "Bench", Weight: 100, Surplus: 5},
		{ExerciseName: "Squat", Weight: 145, Surplus: 0},
	}, d.MonthlyPRList)
}

func TestComputeDashboardCountsSharedDateOnce(t *testing.T) {
	now := time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC)
	exercises := map[string]*models.Exercise{
		"Bench": exerciseWith("Bench", models.NewSet(100, 5, "2024-03-12")),
		"Squat": exerciseWith("Squat", models.NewSet(140, 5, "2024-03-12")),
	}

	d := ComputeDashboard(exercises, nil, now)

	assert.Equal(t, 1, d.WorkoutsThisWeek)
	assert.Equal(t, 1, d.WorkoutsThisMonth)
	assert.Equal(t, 2, d.TotalSets)
}

func TestComputeDashboardEmpty(t *testing.T) {
	d := ComputeDashboard(nil, nil, time.Now())

	assert.Zero(t, d.WorkoutsThisWeek)
	assert.Zero(t, d.TotalExercises)
	assert.NotNil(t, d.MonthlyPRList)
	assert.Empty(t, d.MonthlyPRList)
}

func TestComputeDashboardSkipsBadDates(t *testing.T) {
	now := time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC)
	exercises := map[string]*models.Exercise{
		"Bench": exerciseWith("Bench", models.Set{Weight: 100, Reps: 5, Date: "garbage"}),
	}
	prs := map[string]models.PersonalRecord{"Bench": {Weight: 100, Date: "garbage"}}

	d := ComputeDashboard(exercises, prs, now)

	assert.Equal(t, 1, d.TotalSets)
	assert.Zero(t, d.WorkoutsThisMonth)
	assert.Zero(t, d.NewPRsThisMonth)
}
