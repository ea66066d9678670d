// ABOUTME: Exercise and Set models for strength training logs.
// ABOUTME: Exercises are keyed by name and hold an ordered set log plus a daily volume cache.
package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Category groups exercises by movement pattern.
type Category string

const (
	CategoryPush Category = "Push"
	CategoryPull Category = "Pull"
	CategoryLegs Category = "Legs"
)

// AllCategories returns every valid category in display order.
var AllCategories = []Category{CategoryPush, CategoryPull, CategoryLegs}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q (use Push, Pull, or Legs)", s)
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Set is one logged performance of an exercise.
// ID is assigned at creation and survives reordering; Date is YYYY-MM-DD.
type Set struct {
	ID     uuid.UUID `json:"id"`
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
	Date   string    `json:"date"`
}

// NewSet creates a Set with a generated ID.
func NewSet(weight float64, reps int, date string) Set {
	return Set{
		ID:     uuid.New(),
		Weight: weight,
		Reps:   reps,
		Date:   date,
	}
}

// Volume returns weight × reps.
func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// VolumePoint is the total volume logged on one date.
type VolumePoint struct {
	Date   string  `json:"date"`
	Volume float64 `json:"volume"`
}

// WeightPoint is the heaviest weight logged on one date.
type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// Exercise is a named movement with its set log.
// DailyVolume is derived from Sets and must be rebuilt after every change to Sets.
type Exercise struct {
	Name        string        `json:"-"`
	Category    Category      `json:"category"`
	Sets        []Set         `json:"sets"`
	DailyVolume []VolumePoint `json:"dailyVolume"`
}

// NewExercise creates an empty Exercise.
func NewExercise(name string, category Category) *Exercise {
	return &Exercise{
		Name:        name,
		Category:    category,
		Sets:        []Set{},
		DailyVolume: []VolumePoint{},
	}
}

// VolumeByDate returns the cached daily volume as a date-keyed map.
func (e *Exercise) VolumeByDate() map[string]float64 {
	out := make(map[string]float64, len(e.DailyVolume))
	for _, p := range e.DailyVolume {
		out[p.Date] = p.Volume
	}
	return out
}

// SetIndex returns the position of the set with the given ID, or -1.
func (e *Exercise) SetIndex(id uuid.UUID) int {
	for i, s := range e.Sets {
		if s.ID == id {
			return i
		}
	}
	return -1
}
