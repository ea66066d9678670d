// ABOUTME: PersonalRecord model for heaviest-weight tracking.
// ABOUTME: Keeps the replaced record's weight so the surplus can be shown.
package models

// PersonalRecord is the heaviest weight ever logged for an exercise.
type PersonalRecord struct {
	Weight         float64 `json:"weight"`
	Date           string  `json:"date"`
	PreviousWeight float64 `json:"previousWeight"`
}

// Surplus is the gain over the replaced record, or 0 when there was none.
func (r PersonalRecord) Surplus() float64 {
	if r.PreviousWeight == 0 {
		return 0
	}
	return r.Weight - r.PreviousWeight
}
