// ABOUTME: Daily volume aggregation and progress series for one exercise.
// ABOUTME: Always derived from the full set list; nothing is patched in place.
package stats

import (
	"sort"

	"github.com/DLAppStuff/GymAppTest/internal/calendar"
	"github.com/DLAppStuff/GymAppTest/internal/models"
)

// DailyVolume groups sets by date and sums weight × reps per date.
func DailyVolume(sets []models.Set) map[string]float64 {
	volume := make(map[string]float64)
	for _, s := range sets {
		volume[calendar.Key(s.Date)] += s.Volume()
	}
	return volume
}

// VolumeSeries returns DailyVolume as a slice sorted by date ascending.
func VolumeSeries(sets []models.Set) []models.VolumePoint {
	volume := DailyVolume(sets)
	series := make([]models.VolumePoint, 0, len(volume))
	for date, v := range volume {
		series = append(series, models.VolumePoint{Date: date, Volume: v})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

// MaxWeightSeries returns the heaviest weight per date, sorted by date ascending.
func MaxWeightSeries(sets []models.Set) []models.WeightPoint {
	maxes := make(map[string]float64)
	for _, s := range sets {
		date := calendar.Key(s.Date)
		if w, ok := maxes[date]; !ok || s.Weight > w {
			maxes[date] = s.Weight
		}
	}

	series := make([]models.WeightPoint, 0, len(maxes))
	for date, w := range maxes {
		series = append(series, models.WeightPoint{Date: date, Weight: w})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}
