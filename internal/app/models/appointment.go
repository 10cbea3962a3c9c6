package models

import "time"

// Appointment statuses
const (
	AppointmentScheduled = "scheduled"
	AppointmentCancelled = "cancelled"
)

// Appointment is a clinic booking made by or for a student.
// AppointmentDate may be null for walk-in slots booked by time only.
type Appointment struct {
	ID                     int64     `json:"id"`
	ReferenceNumber        string    `json:"referenceNumber"`
	StudentNumber          string    `json:"studentNumber"`
	AppointmentType        string    `json:"appointmentType"`
	AppointmentFor         string    `json:"appointmentFor"`
	AppointmentDate        *string   `json:"appointmentDate"`
	AppointmentTime        string    `json:"appointmentTime"`
	PreviousAppointmentRef *string   `json:"previousAppointmentRef"`
	Status                 string    `json:"status"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}
