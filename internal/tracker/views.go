// ABOUTME: Read-only projections of tracker state for presentation layers.
// ABOUTME: Everything returned here is a copy; callers may keep or modify it freely.
package tracker

import (
	"sort"
	"time"

	"github.com/DLAppStuff/GymAppTest/internal/calendar"
	"github.com/DLAppStuff/GymAppTest/internal/models"
	"github.com/DLAppStuff/GymAppTest/internal/stats"
)

// IndexedSet is a set with its current position in the exercise log.
type IndexedSet struct {
	Index int `json:"index"`
	models.Set
}

// ExerciseView is everything a client needs to render one exercise.
type ExerciseView struct {
	Name            string                 `json:"name"`
	Category        models.Category        `json:"category"`
	PR              *models.PersonalRecord `json:"pr,omitempty"`
	TodaySets       []IndexedSet           `json:"todaySets"`
	MaxWeightSeries []models.WeightPoint   `json:"maxWeightSeries"`
	VolumeSeries    []models.VolumePoint   `json:"volumeSeries"`
	DailyVolume     map[string]float64     `json:"dailyVolume"`
	TotalSets       int                    `json:"totalSets"`
}

// ExerciseSummary is one row of the exercise list.
type ExerciseSummary struct {
	Name     string                 `json:"name"`
	Category models.Category        `json:"category"`
	Sets     int                    `json:"sets"`
	PR       *models.PersonalRecord `json:"pr,omitempty"`
}

// HeatmapView is a month grid plus the month it covers.
type HeatmapView struct {
	Month string           `json:"month"`
	Cells []models.DayCell `json:"cells"`
}

// Exercise returns the view for one exercise.
func (t *Tracker) Exercise(name string) (*ExerciseView, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ex, err := t.exercise(name)
	if err != nil {
		return nil, err
	}

	today := t.Today()
	view := &ExerciseView{
		Name:            name,
		Category:        ex.Category,
		PR:              t.record(name),
		TodaySets:       []IndexedSet{},
		MaxWeightSeries: stats.MaxWeightSeries(ex.Sets),
		VolumeSeries:    stats.VolumeSeries(ex.Sets),
		DailyVolume:     ex.VolumeByDate(),
		TotalSets:       len(ex.Sets),
	}
	for i, s := range ex.Sets {
		if calendar.Key(s.Date) == today {
			view.TodaySets = append(view.TodaySets, IndexedSet{Index: i, Set: s})
		}
	}
	return view, nil
}

// Sets returns a copy of an exercise's full set log in logging order.
func (t *Tracker) Sets(name string) ([]models.Set, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ex, err := t.exercise(name)
	if err != nil {
		return nil, err
	}
	return append([]models.Set{}, ex.Sets...), nil
}

// Exercises lists every exercise sorted by name.
func (t *Tracker) Exercises() []ExerciseSummary {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.summaries(func(*models.Exercise) bool { return true })
}

// ExercisesByCategory lists the exercises in one category sorted by name.
func (t *Tracker) ExercisesByCategory(category models.Category) []ExerciseSummary {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.summaries(func(ex *models.Exercise) bool { return ex.Category == category })
}

func (t *Tracker) summaries(keep func(*models.Exercise) bool) []ExerciseSummary {
	out := []ExerciseSummary{}
	for name, ex := range t.state.Exercises {
		if !keep(ex) {
			continue
		}
		out = append(out, ExerciseSummary{
			Name:     name,
			Category: ex.Category,
			Sets:     len(ex.Sets),
			PR:       t.record(name),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Record returns the exercise's personal record, or nil when it has none.
func (t *Tracker) Record(name string) (*models.PersonalRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, err := t.exercise(name); err != nil {
		return nil, err
	}
	return t.record(name), nil
}

func (t *Tracker) record(name string) *models.PersonalRecord {
	pr, ok := t.state.PRs[name]
	if !ok {
		return nil
	}
	return &pr
}

// LastSet returns the most recent set logged today, or the last set
// logged overall when there is none today. It returns nil for an empty log.
func (t *Tracker) LastSet(name string) (*models.Set, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ex, err := t.exercise(name)
	if err != nil {
		return nil, err
	}
	if len(ex.Sets) == 0 {
		return nil, nil
	}

	today := t.Today()
	for i := len(ex.Sets) - 1; i >= 0; i-- {
		if calendar.Key(ex.Sets[i].Date) == today {
			s := ex.Sets[i]
			return &s, nil
		}
	}
	s := ex.Sets[len(ex.Sets)-1]
	return &s, nil
}

// WorkoutDates returns every set date across all exercises, duplicates included.
func (t *Tracker) WorkoutDates() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.workoutDates()
}

func (t *Tracker) workoutDates() []string {
	dates := []string{}
	for _, ex := range t.state.Exercises {
		for _, s := range ex.Sets {
			dates = append(dates, s.Date)
		}
	}
	return dates
}

// Dashboard computes summary counts relative to the tracker clock.
func (t *Tracker) Dashboard() stats.Dashboard {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return stats.ComputeDashboard(t.state.Exercises, t.state.PRs, t.clock())
}

// Heatmap builds the presence grid for the current month, or the
// previous month when current is false. Today is flagged in the current month.
func (t *Tracker) Heatmap(current bool) HeatmapView {
	t.mu.RLock()
	defer t.mu.RUnlock()

	w := calendar.NewWindows(t.clock())
	month := w.StartOfCurrentMonth()
	if !current {
		month = w.StartOfPreviousMonth()
	}
	return t.heatmapFor(month)
}

// HeatmapFor builds the presence grid for the month containing monthStart.
func (t *Tracker) HeatmapFor(monthStart time.Time) HeatmapView {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.heatmapFor(monthStart)
}

func (t *Tracker) heatmapFor(monthStart time.Time) HeatmapView {
	cells := stats.BuildMonthGrid(t.workoutDates(), monthStart)
	stats.MarkToday(cells, t.Today())
	return HeatmapView{
		Month: monthStart.Format("2006-01"),
		Cells: cells,
	}
}
