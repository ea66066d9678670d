// ABOUTME: Tests for importing and exporting the exercises/prs document.
// ABOUTME: Covers round trips, rejected payloads, and loading legacy data.
package tracker

import (
	"testing"

	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/DLAppStuff/GymAppTest/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Tracker {
	t.Helper()
	tr, _ := newTestTracker(t, "2024-01-05")
	require.NoError(t, tr.AddExercise("Bench", models.CategoryPush))
	require.NoError(t, tr.AddExercise("Squat", models.CategoryLegs))
	require.NoError(t, tr.AddExercise("Row", models.CategoryPull))
	for _, s := range []struct {
		ex     string
		weight float64
		reps   int
		date   string
	}{
		{"Bench", 100, 5, "2024-01-01"},
		{"Bench", 110, 3, "2024-01-02"},
		{"Bench", 90, 10, "2024-01-02"},
		{"Squat", 140.5, 5, "2024-01-03"},
	} {
		_, err := tr.AddSet(s.ex, s.weight, s.reps, s.date)
		require.NoError(t, err)
	}
	return tr
}

func TestExportImportRoundTrip(t *testing.T) {
	src := seeded(t)
	exported, err := src.Export()
	require.NoError(t, err)

	dst, _ := newTestTracker(t, "2024-01-05")
	require.NoError(t, dst.Import(exported))

	again, err := dst.Export()
	require.NoError(t, err)
	assert.Equal(t, string(exported), string(again))

	// Importing into the same tracker is a no-op on state.
	require.NoError(t, src.Import(exported))
	same, err := src.Export()
	require.NoError(t, err)
	assert.Equal(t, string(exported), string(same))
}

func TestImportRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `exercises: {}`},
		{"empty", ``},
		{"array", `[]`},
		{"missing prs", `{"exercises": {}}`},
		{"missing exercises", `{"prs": {}}`},
		{"null prs", `{"exercises": {}, "prs": null}`},
		{"wrong type", `{"exercises": [], "prs": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := seeded(t)
			before, err := tr.Export()
			require.NoError(t, err)

			err = tr.Import([]byte(tt.payload))
			assert.ErrorIs(t, err, ErrImportFormat)

			after, err := tr.Export()
			require.NoError(t, err)
			assert.Equal(t, string(before), string(after), "state must be untouched")
		})
	}
}

func TestImportReplacesState(t *testing.T) {
	tr := seeded(t)

	payload := `{
		"exercises": {"Deadlift": {"category": "Pull", "sets": [{"weight": 180, "reps": 3, "date": "2024-01-04"}]}},
		"prs": {"Deadlift": {"weight": 180, "date": "2024-01-04", "previousWeight": 0}}
	}`
	require.NoError(t, tr.Import([]byte(payload)))

	list := tr.Exercises()
	require.Len(t, list, 1)
	assert.Equal(t, "Deadlift", list[0].Name)

	view, err := tr.Exercise("Deadlift")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2024-01-04": 540}, view.DailyVolume, "volume rebuilt from sets")

	sets, err := tr.Sets("Deadlift")
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.NotEqual(t, uuid.Nil, sets[0].ID, "legacy sets get an id")
}

func TestImportIgnoresStaleVolumeCache(t *testing.T) {
	tr, _ := newTestTracker(t, "2024-01-05")
	payload := `{
		"exercises": {"Bench": {"category": "Push",
			"sets": [{"weight": 100, "reps": 5, "date": "2024-01-01"}],
			"dailyVolume": [{"date": "2024-01-01", "volume": 9999}, {"date": "2023-12-31", "volume": 1}]}},
		"prs": {}
	}`
	require.NoError(t, tr.Import([]byte(payload)))

	view, err := tr.Exercise("Bench")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2024-01-01": 500}, view.DailyVolume)
}

func TestOpenLoadsPersistedState(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Put(storage.ProgressKey, []byte(`{"exercises":{"Bench":{"category":"Push","sets":[{"weight":50,"reps":10,"date":"2024-01-01"}]}},"prs":{}}`)))
	require.NoError(t, store.Put(storage.BodyWeightKey, []byte(`[{"date":"2024-01-01","weight":80}]`)))

	tr, err := Open(store, WithClock(fixedClock("2024-01-05")))
	require.NoError(t, err)

	view, err := tr.Exercise("Bench")
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalSets)
	assert.Nil(t, view.PR)
	assert.Equal(t, []models.BodyWeightEntry{{Date: "2024-01-01", Weight: 80}}, tr.BodyWeightLog())
}

func TestOpenRejectsCorruptState(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Put(storage.ProgressKey, []byte(`{not json`)))

	_, err := Open(store)
	assert.ErrorIs(t, err, ErrImportFormat)

	store = storage.NewMemoryStore()
	require.NoError(t, store.Put(storage.BodyWeightKey, []byte(`{"date":"x"}`)))
	_, err = Open(store)
	assert.ErrorIs(t, err, ErrImportFormat)
}

func TestSnapshotIsACopy(t *testing.T) {
	tr := seeded(t)
	_, err := tr.AddBodyWeight("2024-01-01", 82)
	require.NoError(t, err)

	snap := tr.Snapshot()
	assert.Equal(t, "gym", snap.Tool)
	assert.Len(t, snap.Exercises, 3)
	assert.Len(t, snap.BodyWeight, 1)

	snap.Exercises["Bench"].Sets[0].Weight = 1
	sets, err := tr.Sets("Bench")
	require.NoError(t, err)
	assert.Equal(t, 100.0, sets[0].Weight)
}
