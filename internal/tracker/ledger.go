// ABOUTME: Ledger mutations: exercises and sets.
// ABOUTME: Volume is rebuilt after every set change; records only move on add.
package tracker

import (
	"fmt"
	"math"
	"strings"

	"github.com/DLAppStuff/GymAppTest/internal/calendar"
	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/DLAppStuff/GymAppTest/internal/stats"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AddSetResult describes a logged set and its effect on the record.
type AddSetResult struct {
	Set       models.Set             `json:"set"`
	NewRecord bool                   `json:"newRecord"`
	Record    *models.PersonalRecord `json:"record,omitempty"`
}

// AddExercise creates an empty exercise.
func (t *Tracker) AddExercise(name string, category models.Category) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: exercise name is required", ErrInvalidInput)
	}
	if !category.IsValid() {
		return fmt.Errorf("%w: category %q (use Push, Pull, or Legs)", ErrInvalidInput, category)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.state.Exercises[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateExercise, name)
	}
	t.state.Exercises[name] = models.NewExercise(name, category)

	t.log.WithFields(logrus.Fields{"exercise": name, "category": category}).Debug("exercise added")
	return t.saveProgress()
}

// DeleteExercise removes an exercise together with its record.
func (t *Tracker) DeleteExercise(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.exercise(name); err != nil {
		return err
	}
	delete(t.state.Exercises, name)
	delete(t.state.PRs, name)

	t.log.WithField("exercise", name).Debug("exercise deleted")
	return t.saveProgress()
}

// AddSet appends a set to an exercise. An empty date means today.
// Dates may be timestamps; they are stored as their YYYY-MM-DD component.
func (t *Tracker) AddSet(name string, weight float64, reps int, date string) (AddSetResult, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return AddSetResult{}, fmt.Errorf("%w: weight must be a positive number, got %v", ErrInvalidInput, weight)
	}
	if reps <= 0 {
		return AddSetResult{}, fmt.Errorf("%w: reps must be a positive integer, got %d", ErrInvalidInput, reps)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if strings.TrimSpace(date) == "" {
		date = t.Today()
	}
	day, err := calendar.NormalizeDate(date)
	if err != nil {
		return AddSetResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	ex, err := t.exercise(name)
	if err != nil {
		return AddSetResult{}, err
	}

	set := models.NewSet(weight, reps, day)
	ex.Sets = append(ex.Sets, set)
	refreshVolume(ex)

	result := AddSetResult{Set: set}
	var current *models.PersonalRecord
	if pr, ok := t.state.PRs[name]; ok {
		current = &pr
	}
	if next, ok := stats.EvaluateRecord(weight, day, current); ok {
		t.state.PRs[name] = next
		result.NewRecord = true
		result.Record = &next
	} else {
		result.Record = current
	}

	t.log.WithFields(logrus.Fields{
		"exercise":  name,
		"date":      day,
		"weight":    weight,
		"reps":      reps,
		"newRecord": result.NewRecord,
	}).Debug("set added")
	return result, t.saveProgress()
}

// DeleteSet removes the set at index, which must be dated today.
// The record is left as is; RecomputePR rebuilds it on request.
func (t *Tracker) DeleteSet(name string, index int) (models.Set, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ex, err := t.exercise(name)
	if err != nil {
		return models.Set{}, err
	}
	if index < 0 || index >= len(ex.Sets) {
		return models.Set{}, fmt.Errorf("%w: set index %d out of range (0-%d)", ErrInvalidInput, index, len(ex.Sets)-1)
	}
	return t.removeSet(ex, index)
}

// DeleteSetByID removes the set with the given id, which must be dated today.
func (t *Tracker) DeleteSetByID(name string, id uuid.UUID) (models.Set, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ex, err := t.exercise(name)
	if err != nil {
		return models.Set{}, err
	}
	index := ex.SetIndex(id)
	if index < 0 {
		return models.Set{}, fmt.Errorf("%w: %s", ErrUnknownSet, id)
	}
	return t.removeSet(ex, index)
}

// removeSet enforces the today-only rule and rebuilds volume. Callers hold mu.
func (t *Tracker) removeSet(ex *models.Exercise, index int) (models.Set, error) {
	set := ex.Sets[index]
	today := t.Today()
	if calendar.Key(set.Date) != today {
		return models.Set{}, fmt.Errorf("%w: set is dated %s, today is %s", ErrSetNotDeletable, set.Date, today)
	}

	sets := make([]models.Set, 0, len(ex.Sets)-1)
	sets = append(sets, ex.Sets[:index]...)
	sets = append(sets, ex.Sets[index+1:]...)
	ex.Sets = sets
	refreshVolume(ex)

	t.log.WithFields(logrus.Fields{"exercise": ex.Name, "date": set.Date, "set": set.ID}).Debug("set deleted")
	return set, t.saveProgress()
}

// RecomputePR rebuilds an exercise's record chain from its remaining sets.
// It returns nil when the exercise has no sets, in which case the record is removed.
func (t *Tracker) RecomputePR(name string) (*models.PersonalRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ex, err := t.exercise(name)
	if err != nil {
		return nil, err
	}

	rebuilt := stats.RebuildRecord(ex.Sets)
	if rebuilt == nil {
		delete(t.state.PRs, name)
	} else {
		t.state.PRs[name] = *rebuilt
	}

	t.log.WithField("exercise", name).Debug("record rebuilt")
	return rebuilt, t.saveProgress()
}
