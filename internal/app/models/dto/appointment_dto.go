package dto

import "github.com/chwc/clinicops/internal/app/models"

// CreateAppointmentRequest represents a new booking.
// AppointmentDate is optional, walk-in slots are booked by time only.
type CreateAppointmentRequest struct {
	ReferenceNumber        string  `json:"referenceNumber"`
	StudentNumber          string  `json:"studentNumber"`
	AppointmentType        string  `json:"appointmentType"`
	AppointmentFor         string  `json:"appointmentFor"`
	AppointmentDate        *string `json:"appointmentDate"`
	AppointmentTime        string  `json:"appointmentTime"`
	PreviousAppointmentRef *string `json:"previousAppointmentRef"`
}

// UpdateAppointmentRequest reschedules an existing booking
type UpdateAppointmentRequest struct {
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	AppointmentFor  string `json:"appointmentFor"`
	Status          string `json:"status"`
}

// AppointmentListResponse wraps a list of appointments with its count
type AppointmentListResponse struct {
	Appointments []*models.Appointment `json:"appointments"`
	Count        int                   `json:"count"`
}

// AppointmentCreatedResponse is returned after a successful booking
type AppointmentCreatedResponse struct {
	Message       string `json:"message"`
	AppointmentID int64  `json:"appointmentId"`
}
