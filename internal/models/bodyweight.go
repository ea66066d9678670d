// ABOUTME: BodyWeightEntry model for the body weight log.
// ABOUTME: One entry per calendar date; kept sorted by date for charting.
package models

import "sort"

// BodyWeightEntry is a body weight reading in kilograms for one date.
type BodyWeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// UpsertBodyWeight replaces the entry for e.Date (or appends it) and
// returns the log sorted by date ascending.
func UpsertBodyWeight(log []BodyWeightEntry, e BodyWeightEntry) []BodyWeightEntry {
	out := make([]BodyWeightEntry, 0, len(log)+1)
	for _, existing := range log {
		if existing.Date != e.Date {
			out = append(out, existing)
		}
	}
	out = append(out, e)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
