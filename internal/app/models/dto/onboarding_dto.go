package dto

// OnboardingSummaryItem is one row of the staff intake overview.
type OnboardingSummaryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Date string `json:"date"`
}

// OnboardingDataResponse lists completed intake forms, newest first.
type OnboardingDataResponse struct {
	Records []*OnboardingSummaryItem `json:"records"`
	Count   int                      `json:"count"`
}
