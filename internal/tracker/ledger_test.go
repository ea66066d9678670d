// ABOUTME: Tests for exercise and set mutations on the tracker.
// ABOUTME: Covers end-to-end logging flows, validation, and the today-only delete rule.
package tracker

import (
	"math"
	"testing"

	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBenchProgression(t *testing.T) {
	tr, _ := newTestTracker(t, "2024-01-05")

	require.NoError(t, tr.AddExercise("Bench", models.CategoryPush))
	res, err := tr.AddSet("Bench", 100, 5, "2024-01-01")
	require.NoError(t, err)
	assert.True(t, res.NewRecord)

	res, err = tr.AddSet("Bench", 110, 3, "2024-01-02")
	require.NoError(t, err)
	assert.True(t, res.NewRecord)

	pr, err := tr.Record("Bench")
	require.NoError(t, err)
	require.NotNil(t, pr)
	assert.Equal(t, models.PersonalRecord{Weight: 110, Date: "2024-01-02", PreviousWeight: 100}, *pr)

	view, err := tr.Exercise("Bench")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2024-01-01": 500, "2024-01-02": 330}, view.DailyVolume)

	// A lighter set adds volume but leaves the record alone.
	res, err = tr.AddSet("Bench", 90, 10, "2024-01-03")
	require.NoError(t, err)
	assert.False(t, res.NewRecord)

	pr, err = tr.Record("Bench")
	require.NoError(t, err)
	assert.Equal(t, models.PersonalRecord{Weight: 110, Date: "2024-01-02", PreviousWeight: 100}, *pr)

	view, err = tr.Exercise("Bench")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2024-01-01": 500, "2024-01-02": 330, "2024-01-03": 900}, view.DailyVolume)
}

func TestDeletePastSetRejected(t *testing.T) {
	tr, store := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Bench", models.CategoryPush))
	_, err := tr.AddSet("Bench", 100, 5, "2024-01-01")
	require.NoError(t, err)

	before, err := tr.Export()
	require.NoError(t, err)
	puts := store.puts

	_, err = tr.DeleteSet("Bench", 0)
	assert.ErrorIs(t, err, ErrSetNotDeletable)

	after, err := tr.Export()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Equal(t, puts, store.puts, "rejected delete must not write")
}

func TestDeleteTodaySet(t *testing.T) {
	tr, _ := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Squat", models.CategoryLegs))
	_, err := tr.AddSet("Squat", 140, 5, "2024-01-04")
	require.NoError(t, err)
	_, err = tr.AddSet("Squat", 150, 3, "")
	require.NoError(t, err)

	view, err := tr.Exercise("Squat")
	require.NoError(t, err)
	require.Len(t, view.TodaySets, 1)
	assert.Equal(t, 1, view.TodaySets[0].Index)
	assert.Equal(t, "2024-01-05", view.TodaySets[0].Date)

	removed, err := tr.DeleteSet("Squat", 1)
	require.NoError(t, err)
	assert.Equal(t, 150.0, removed.Weight)

	view, err = tr.Exercise("Squat")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2024-01-04": 700}, view.DailyVolume, "deleted date disappears entirely")
	assert.Empty(t, view.TodaySets)

	// The record is not rebuilt by a delete.
	require.NotNil(t, view.PR)
	assert.Equal(t, 150.0, view.PR.Weight)
}

func TestDeleteSetByID(t *testing.T) {
	tr, _ := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Row", models.CategoryPull))
	first, err := tr.AddSet("Row", 60, 10, "2024-01-05")
	require.NoError(t, err)
	second, err := tr.AddSet("Row", 60, 10, "2024-01-05")
	require.NoError(t, err)

	removed, err := tr.DeleteSetByID("Row", second.Set.ID)
	require.NoError(t, err)
	assert.Equal(t, second.Set.ID, removed.ID)

	sets, err := tr.Sets("Row")
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, first.Set.ID, sets[0].ID)

	_, err = tr.DeleteSetByID("Row", uuid.New())
	assert.ErrorIs(t, err, ErrUnknownSet)
}

func TestDeleteSetIndexOutOfRange(t *testing.T) {
	tr, _ := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Row", models.CategoryPull))

	for _, idx := range []int{-1, 0, 3} {
		_, err := tr.DeleteSet("Row", idx)
		assert.ErrorIs(t, err, ErrInvalidInput, "index %d", idx)
	}
}

func TestAddSetValidation(t *testing.T) {
	tr, store := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Bench", models.CategoryPush))
	puts := store.puts

	tests := []struct {
		name    string
		ex      string
		weight  float64
		reps    int
		date    string
		wantErr error
	}{
		{"zero weight", "Bench", 0, 5, "2024-01-01", ErrInvalidInput},
		{"negative weight", "Bench", -10, 5, "2024-01-01", ErrInvalidInput},
		{"NaN weight", "Bench", math.NaN(), 5, "2024-01-01", ErrInvalidInput},
		{"infinite weight", "Bench", math.Inf(1), 5, "2024-01-01", ErrInvalidInput},
		{"zero reps", "Bench", 100, 0, "2024-01-01", ErrInvalidInput},
		{"negative reps", "Bench", 100, -2, "2024-01-01", ErrInvalidInput},
		{"malformed date", "Bench", 100, 5, "01/02/2024", ErrInvalidInput},
		{"impossible date", "Bench", 100, 5, "2024-02-30", ErrInvalidInput},
		{"unknown exercise", "Deadlift", 100, 5, "2024-01-01", ErrUnknownExercise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.AddSet(tt.ex, tt.weight, tt.reps, tt.date)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	sets, err := tr.Sets("Bench")
	require.NoError(t, err)
	assert.Empty(t, sets)
	assert.Equal(t, puts, store.puts)
}

func TestAddSetNormalizesTimestamp(t *testing.T) {
	tr, _ := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Bench", models.CategoryPush))

	res, err := tr.AddSet("Bench", 100, 5, "2024-01-05T07:15:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", res.Set.Date)
	assert.Equal(t, "2024-01-05", res.Record.Date)
}

func TestAddExerciseValidation(t *testing.T) {
	tr, _ := newTestTracker(t, "2024-01-05")

	require.NoError(t, tr.AddExercise("  Bench  ", models.CategoryPush))
	assert.ErrorIs(t, tr.AddExercise("Bench", models.CategoryPull), ErrDuplicateExercise)
	assert.ErrorIs(t, tr.AddExercise("", models.CategoryPush), ErrInvalidInput)
	assert.ErrorIs(t, tr.AddExercise("Curl", models.Category("Arms")), ErrInvalidInput)

	list := tr.Exercises()
	require.Len(t, list, 1)
	assert.Equal(t, "Bench", list[0].Name)
	assert.Equal(t, models.CategoryPush, list[0].Category)
}

func TestDeleteExerciseRemovesRecord(t *testing.T) {
	tr, _ := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Bench", models.CategoryPush))
	_, err := tr.AddSet("Bench", 100, 5, "2024-01-01")
	require.NoError(t, err)

	require.NoError(t, tr.DeleteExercise("Bench"))
	assert.ErrorIs(t, tr.DeleteExercise("Bench"), ErrUnknownExercise)

	_, err = tr.Record("Bench")
	assert.ErrorIs(t, err, ErrUnknownExercise)

	data, err := tr.Export()
	require.NoError(t, err)
	assert.JSONEq(t, `{"exercises":{},"prs":{}}`, string(data))
}

func TestRecomputePR(t *testing.T) {
	tr, _ := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Bench", models.CategoryPush))
	_, err := tr.AddSet("Bench", 100, 5, "2024-01-01")
	require.NoError(t, err)
	_, err = tr.AddSet("Bench", 120, 1, "2024-01-05")
	require.NoError(t, err)
	_, err = tr.DeleteSet("Bench", 1)
	require.NoError(t, err)

	stale, err := tr.Record("Bench")
	require.NoError(t, err)
	assert.Equal(t, 120.0, stale.Weight)

	rebuilt, err := tr.RecomputePR("Bench")
	require.NoError(t, err)
	require.NotNil(t, rebuilt)
	assert.Equal(t, models.PersonalRecord{Weight: 100, Date: "2024-01-01"}, *rebuilt)

	require.NoError(t, tr.AddExercise("Squat", models.CategoryLegs))
	none, err := tr.RecomputePR("Squat")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = tr.RecomputePR("Nope")
	assert.ErrorIs(t, err, ErrUnknownExercise)
}

func TestPersistenceFailureKeepsMutation(t *testing.T) {
	tr, store := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Bench", models.CategoryPush))

	store.failing = true
	res, err := tr.AddSet("Bench", 100, 5, "2024-01-05")
	assert.ErrorIs(t, err, ErrPersistenceWrite)
	assert.ErrorIs(t, err, errDiskFull)
	assert.True(t, res.NewRecord)

	sets, err := tr.Sets("Bench")
	require.NoError(t, err)
	assert.Len(t, sets, 1, "in-memory state stays authoritative")

	store.failing = false
	_, err = tr.AddSet("Bench", 105, 5, "2024-01-05")
	require.NoError(t, err)

	reopened, err := Open(store, WithClock(fixedClock("2024-01-05")))
	require.NoError(t, err)
	sets, err = reopened.Sets("Bench")
	require.NoError(t, err)
	assert.Len(t, sets, 2, "next successful write carries the full snapshot")
}

func TestLastSet(t *testing.T) {
	tr, _ := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Bench", models.CategoryPush))

	last, err := tr.LastSet("Bench")
	require.NoError(t, err)
	assert.Nil(t, last)

	_, err = tr.AddSet("Bench", 100, 5, "2024-01-05")
	require.NoError(t, err)
	_, err = tr.AddSet("Bench", 80, 8, "2024-01-03")
	require.NoError(t, err)

	last, err = tr.LastSet("Bench")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 100.0, last.Weight, "today's set wins over a later-logged older set")

	tr2, _ := newTestTracker(t, "2024-01-09")
	require.NoError(t, tr2.AddExercise("Bench", models.CategoryPush))
	_, err = tr2.AddSet("Bench", 100, 5, "2024-01-05")
	require.NoError(t, err)
	_, err = tr2.AddSet("Bench", 80, 8, "2024-01-03")
	require.NoError(t, err)
	last, err = tr2.LastSet("Bench")
	require.NoError(t, err)
	assert.Equal(t, 80.0, last.Weight)
}

func TestExercisesByCategory(t *testing.T) {
	tr, _ := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Squat", models.CategoryLegs))
	require.NoError(t, tr.AddExercise("Bench", models.CategoryPush))
	require.NoError(t, tr.AddExercise("Dips", models.CategoryPush))

	push := tr.ExercisesByCategory(models.CategoryPush)
	require.Len(t, push, 2)
	assert.Equal(t, "Bench", push[0].Name)
	assert.Equal(t, "Dips", push[1].Name)

	assert.Empty(t, tr.ExercisesByCategory(models.CategoryPull))
}
