// ABOUTME: Personal record evaluation for newly logged sets.
// ABOUTME: A record only moves on a strictly heavier weight; ties never touch it.
package stats

import "github.com/DLAppStuff/GymAppTest/internal/models"

// EvaluateRecord decides whether a set of the given weight sets a new record.
// It returns the replacement record and true, or the zero record and false.
func EvaluateRecord(weight float64, date string, current *models.PersonalRecord) (models.PersonalRecord, bool) {
	if current != nil && weight <= current.Weight {
		return models.PersonalRecord{}, false
	}

	var previous float64
	if current != nil {
		previous = current.Weight
	}
	return models.PersonalRecord{
		Weight:         weight,
		Date:           date,
		PreviousWeight: previous,
	}, true
}

// RebuildRecord replays sets in logging order and returns the record the
// chain ends on, or nil for an empty log.
func RebuildRecord(sets []models.Set) *models.PersonalRecord {
	var current *models.PersonalRecord
	for _, s := range sets {
		if next, ok := EvaluateRecord(s.Weight, s.Date, current); ok {
			current = &next
		}
	}
	return current
}
