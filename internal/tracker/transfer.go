// ABOUTME: Import and export of the {exercises, prs} document.
// ABOUTME: Import replaces state wholesale or not at all.
package tracker

import (
	"encoding/json"
	"fmt"

	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/DLAppStuff/GymAppTest/internal/storage"
)

// Export serializes exercises and records as indented JSON.
func (t *Tracker) Export() ([]byte, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	data, err := json.MarshalIndent(t.state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return data, nil
}

// Import replaces exercises and records with the contents of data. The
// payload must be JSON with both "exercises" and "prs" keys; on any format
// error the current state is left untouched.
func (t *Tracker) Import(data []byte) error {
	st, err := decodeState(data)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = st
	t.log.WithField("exercises", len(st.Exercises)).Info("state imported")
	return t.saveProgress()
}

// Snapshot returns a deep copy of all data for backup reports.
func (t *Tracker) Snapshot() *storage.ExportData {
	t.mu.RLock()
	defer t.mu.RUnlock()

	exercises := make(map[string]*models.Exercise, len(t.state.Exercises))
	for name, ex := range t.state.Exercises {
		cp := *ex
		cp.Sets = append([]models.Set{}, ex.Sets...)
		cp.DailyVolume = append([]models.VolumePoint{}, ex.DailyVolume...)
		exercises[name] = &cp
	}
	prs := make(map[string]models.PersonalRecord, len(t.state.PRs))
	for name, pr := range t.state.PRs {
		prs[name] = pr
	}

	return storage.NewExportData(exercises, prs, append([]models.BodyWeightEntry{}, t.bodyWeight...), t.clock())
}
