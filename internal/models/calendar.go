// ABOUTME: DayCell model for the monthly workout heatmap.
// ABOUTME: Blank cells pad the first week so day 1 lands on its weekday column.
package models

// DayCell is one square of a Monday-first month grid.
type DayCell struct {
	Blank   bool   `json:"blank"`
	Day     int    `json:"day,omitempty"`
	Date    string `json:"date,omitempty"`
	Present bool   `json:"present"`
	IsToday bool   `json:"isToday,omitempty"`
}
