package dto

// EligibilityResponse reports the booking gate state for one student.
// Eligible follows document approval; onboarded and documentUploaded are
// informational flags for client messaging.
type EligibilityResponse struct {
	StudentNumber    string `json:"studentNumber"`
	Onboarded        bool   `json:"onboarded"`
	DocumentUploaded bool   `json:"documentUploaded"`
	DocumentApproved bool   `json:"documentApproved"`
	Eligible         bool   `json:"eligible"`
}

// ExistsResponse answers a single presence check.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// DocumentStatusResponse answers the upload presence and approval check.
type DocumentStatusResponse struct {
	Exists   bool `json:"exists"`
	Approved bool `json:"approved"`
}
