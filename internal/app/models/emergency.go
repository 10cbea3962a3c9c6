package models

import "time"

// EmergencySummary is the listing shape for incident reports. The full
// report round-trips as a sparse field map, see the emergency repository.
type EmergencySummary struct {
	ID             int64     `json:"id"`
	Date           *string   `json:"date"`
	TimeOfCall     *string   `json:"timeOfCall"`
	CallerName     *string   `json:"callerName"`
	Department     *string   `json:"department"`
	PatientName    *string   `json:"patientName"`
	PatientSurname *string   `json:"patientSurname"`
	StudentNumber  *string   `json:"studentNumber"`
	CreatedAt      time.Time `json:"createdAt"`
}
