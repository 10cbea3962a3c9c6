package dto

// SaveScheduleRequest creates or replaces one staff member's lunch cover
// for a calendar day. Times use 24 hour HH:MM strings from the picker.
type SaveScheduleRequest struct {
	StaffName   string `json:"staffName" binding:"required"`
	Month       string `json:"month" binding:"required"`
	Day         int    `json:"day" binding:"required"`
	Lunch1Start string `json:"lunch1Start"`
	Lunch1End   string `json:"lunch1End"`
	Lunch2Start string `json:"lunch2Start"`
	Lunch2End   string `json:"lunch2End"`
	Notes       string `json:"notes"`
}

// ScheduleEntryResponse is one staff member's cover on the daily board.
// LunchTimes is the preformatted display string, for example
// "12:00 PM - 12:30 PM / 03:00 PM - 03:30 PM".
type ScheduleEntryResponse struct {
	StaffName   string  `json:"staffName"`
	Lunch1Start *string `json:"lunch1Start"`
	Lunch1End   *string `json:"lunch1End"`
	Lunch2Start *string `json:"lunch2Start"`
	Lunch2End   *string `json:"lunch2End"`
	Notes       string  `json:"notes"`
	LunchTimes  string  `json:"lunchTimes"`
}

// TodayScheduleResponse is the daily lunch board.
type TodayScheduleResponse struct {
	Schedule []*ScheduleEntryResponse `json:"schedule"`
	Date     string                   `json:"date"`
	Count    int                      `json:"count"`
}
