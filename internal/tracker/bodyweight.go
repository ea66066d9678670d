// ABOUTME: Body weight log operations on the tracker.
// ABOUTME: One entry per date, stored separately from the exercise ledger.
package tracker

import (
	"fmt"
	"math"
	"strings"

	"github.com/DLAppStuff/GymAppTest/internal/calendar"
	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/sirupsen/logrus"
)

// AddBodyWeight records a body weight for date, replacing any entry for the
// same date. An empty date means today.
func (t *Tracker) AddBodyWeight(date string, weight float64) (models.BodyWeightEntry, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return models.BodyWeightEntry{}, fmt.Errorf("%w: body weight must be a positive number, got %v", ErrInvalidInput, weight)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if strings.TrimSpace(date) == "" {
		date = t.Today()
	}
	day, err := calendar.NormalizeDate(date)
	if err != nil {
		return models.BodyWeightEntry{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	entry := models.BodyWeightEntry{Date: day, Weight: weight}
	t.bodyWeight = models.UpsertBodyWeight(t.bodyWeight, entry)

	t.log.WithFields(logrus.Fields{"date": day, "weight": weight}).Debug("body weight recorded")
	return entry, t.saveBodyWeight()
}

// DeleteBodyWeight removes the entry for date.
func (t *Tracker) DeleteBodyWeight(date string) error {
	day, err := calendar.NormalizeDate(date)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	kept := make([]models.BodyWeightEntry, 0, len(t.bodyWeight))
	for _, e := range t.bodyWeight {
		if e.Date != day {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(t.bodyWeight) {
		return fmt.Errorf("%w: no body weight entry for %s", ErrInvalidInput, day)
	}
	t.bodyWeight = kept

	t.log.WithField("date", day).Debug("body weight deleted")
	return t.saveBodyWeight()
}

// BodyWeightLog returns the body weight entries sorted by date ascending.
func (t *Tracker) BodyWeightLog() []models.BodyWeightEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]models.BodyWeightEntry{}, t.bodyWeight...)
}
