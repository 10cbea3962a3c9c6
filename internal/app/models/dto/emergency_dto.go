package dto

import "github.com/chwc/clinicops/internal/app/models"

// EmergencyListResponse wraps incident report summaries with their count
type EmergencyListResponse struct {
	Emergencies []*models.EmergencySummary `json:"emergencies"`
	Count       int                        `json:"count"`
}

// EmergencyResponse wraps one full incident report. Reports are sparse,
// only the fields the responder filled in are present.
type EmergencyResponse struct {
	Emergency map[string]interface{} `json:"emergency"`
}
