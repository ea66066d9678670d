// ABOUTME: TrackerState is the serializable ledger of exercises and records.
// ABOUTME: Load and normalize helpers keep the derived volume cache consistent.
package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/DLAppStuff/GymAppTest/internal/stats"
	"github.com/google/uuid"
)

// TrackerState is the persisted {exercises, prs} document.
type TrackerState struct {
	Exercises map[string]*models.Exercise      `json:"exercises"`
	PRs       map[string]models.PersonalRecord `json:"prs"`
}

func newState() *TrackerState {
	return &TrackerState{
		Exercises: make(map[string]*models.Exercise),
		PRs:       make(map[string]models.PersonalRecord),
	}
}

// decodeState parses a state document. It requires both top-level keys
// to be present and non-null but does not validate their contents.
func decodeState(data []byte) (*TrackerState, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportFormat, err)
	}
	for _, key := range []string{"exercises", "prs"} {
		v, ok := raw[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, fmt.Errorf("%w: missing %q", ErrImportFormat, key)
		}
	}

	st := newState()
	if err := json.Unmarshal(raw["exercises"], &st.Exercises); err != nil {
		return nil, fmt.Errorf("%w: exercises: %w", ErrImportFormat, err)
	}
	if err := json.Unmarshal(raw["prs"], &st.PRs); err != nil {
		return nil, fmt.Errorf("%w: prs: %w", ErrImportFormat, err)
	}
	st.normalize()
	return st, nil
}

// normalize fills names, ids, and nil slices, then rebuilds every volume cache.
func (st *TrackerState) normalize() {
	for name, ex := range st.Exercises {
		if ex == nil {
			ex = models.NewExercise(name, "")
			st.Exercises[name] = ex
		}
		ex.Name = name
		if ex.Sets == nil {
			ex.Sets = []models.Set{}
		}
		for i := range ex.Sets {
			if ex.Sets[i].ID == uuid.Nil {
				ex.Sets[i].ID = uuid.New()
			}
		}
		refreshVolume(ex)
	}
}

// refreshVolume rebuilds the daily volume cache from the full set list.
func refreshVolume(ex *models.Exercise) {
	ex.DailyVolume = stats.VolumeSeries(ex.Sets)
}

func (st *TrackerState) encode() ([]byte, error) {
	return json.Marshal(st)
}
