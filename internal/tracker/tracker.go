// ABOUTME: Tracker owns the exercise ledger, personal records, and body weight log.
// ABOUTME: Every mutation validates first, applies in memory, then writes a full snapshot.
package tracker

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/DLAppStuff/GymAppTest/internal/calendar"
	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/DLAppStuff/GymAppTest/internal/storage"
	"github.com/sirupsen/logrus"
)

// Tracker is the single controller over TrackerState.
// It is safe for concurrent use; the MCP server shares one across requests.
type Tracker struct {
	mu         sync.RWMutex
	state      *TrackerState
	bodyWeight []models.BodyWeightEntry
	store      storage.Store
	clock      func() time.Time
	log        logrus.FieldLogger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the source of "now". Today is taken in the clock's location.
func WithClock(clock func() time.Time) Option {
	return func(t *Tracker) {
		t.clock = clock
	}
}

// WithLogger sets the logger used for mutation and persistence events.
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Tracker) {
		t.log = log
	}
}

// Open loads state from store. Missing documents start empty.
func Open(store storage.Store, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		state:      newState(),
		bodyWeight: []models.BodyWeightEntry{},
		store:      store,
		clock:      time.Now,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}

	data, err := store.Get(storage.ProgressKey)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if data != nil {
		st, err := decodeState(data)
		if err != nil {
			return nil, fmt.Errorf("load progress: %w", err)
		}
		t.state = st
	}

	data, err = store.Get(storage.BodyWeightKey)
	if err != nil {
		return nil, fmt.Errorf("load body weight: %w", err)
	}
	if data != nil {
		var entries []models.BodyWeightEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("load body weight: %w: %w", ErrImportFormat, err)
		}
		if entries != nil {
			t.bodyWeight = entries
		}
	}

	t.log.WithFields(logrus.Fields{
		"exercises":  len(t.state.Exercises),
		"bodyWeight": len(t.bodyWeight),
	}).Debug("tracker loaded")
	return t, nil
}

// Now returns the tracker clock's current time.
func (t *Tracker) Now() time.Time {
	return t.clock()
}

// Today returns the current date key in the clock's location.
func (t *Tracker) Today() string {
	return t.clock().Format(calendar.DateLayout)
}

// saveProgress writes the exercise/record document. Callers hold mu.
func (t *Tracker) saveProgress() error {
	data, err := t.state.encode()
	if err == nil {
		err = t.store.Put(storage.ProgressKey, data)
	}
	if err != nil {
		t.log.WithError(err).WithField("key", storage.ProgressKey).Warn("persist failed; keeping in-memory state")
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}
	return nil
}

// saveBodyWeight writes the body weight document. Callers hold mu.
func (t *Tracker) saveBodyWeight() error {
	data, err := json.Marshal(t.bodyWeight)
	if err == nil {
		err = t.store.Put(storage.BodyWeightKey, data)
	}
	if err != nil {
		t.log.WithError(err).WithField("key", storage.BodyWeightKey).Warn("persist failed; keeping in-memory state")
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}
	return nil
}

func (t *Tracker) exercise(name string) (*models.Exercise, error) {
	ex, ok := t.state.Exercises[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, name)
	}
	return ex, nil
}
