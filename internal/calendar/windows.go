// ABOUTME: Calendar window boundaries relative to an injected "now".
// ABOUTME: Monday-start weeks and calendar months, inclusive on both ends.
package calendar

import "time"

// Range is an inclusive time window.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t is within [Start, End].
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Windows computes week and month boundaries around a fixed instant.
type Windows struct {
	now time.Time
}

// NewWindows returns the windows for now, in now's location.
func NewWindows(now time.Time) Windows {
	return Windows{now: now}
}

// lastNano is 23:59:59.999 on the given day.
func lastNano(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
}

// MondayOfCurrentWeek is the most recent Monday at 00:00.
func (w Windows) MondayOfCurrentWeek() time.Time {
	diff := int(w.now.Weekday()) - 1
	if w.now.Weekday() == time.Sunday {
		diff = 6
	}
	y, m, d := w.now.Date()
	return time.Date(y, m, d-diff, 0, 0, 0, 0, w.now.Location())
}

// SundayOfCurrentWeek is six days after MondayOfCurrentWeek at 23:59:59.999.
func (w Windows) SundayOfCurrentWeek() time.Time {
	y, m, d := w.MondayOfCurrentWeek().Date()
	return lastNano(y, m, d+6, w.now.Location())
}

// StartOfCurrentMonth is the first instant of now's month.
func (w Windows) StartOfCurrentMonth() time.Time {
	y, m, _ := w.now.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, w.now.Location())
}

// EndOfCurrentMonth is the last millisecond of now's month.
func (w Windows) EndOfCurrentMonth() time.Time {
	y, m, _ := w.now.Date()
	return lastNano(y, m+1, 0, w.now.Location())
}

// StartOfPreviousMonth is the first instant of the month before now's.
func (w Windows) StartOfPreviousMonth() time.Time {
	y, m, _ := w.now.Date()
	return time.Date(y, m-1, 1, 0, 0, 0, 0, w.now.Location())
}

// EndOfPreviousMonth is the last millisecond of the month before now's.
func (w Windows) EndOfPreviousMonth() time.Time {
	y, m, _ := w.now.Date()
	return lastNano(y, m, 0, w.now.Location())
}

func (w Windows) CurrentWeek() Range {
	return Range{Start: w.MondayOfCurrentWeek(), End: w.SundayOfCurrentWeek()}
}

func (w Windows) CurrentMonth() Range {
	return Range{Start: w.StartOfCurrentMonth(), End: w.EndOfCurrentMonth()}
}

func (w Windows) PreviousMonth() Range {
	return Range{Start: w.StartOfPreviousMonth(), End: w.EndOfPreviousMonth()}
}
