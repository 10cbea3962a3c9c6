package models

import "time"

// StaffScheduleEntry is one staff member's lunch cover for a calendar day.
// A day holds at most one entry per staff member; saving again replaces
// the times. Either lunch block may be absent.
type StaffScheduleEntry struct {
	ID          int64     `json:"id"`
	StaffName   string    `json:"staffName"`
	Month       string    `json:"month"`
	Day         int       `json:"day"`
	Lunch1Start *string   `json:"lunch1Start"`
	Lunch1End   *string   `json:"lunch1End"`
	Lunch2Start *string   `json:"lunch2Start"`
	Lunch2End   *string   `json:"lunch2End"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
